package mongodb

import (
	"context"
	"errors"

	"github.com/fossclubsrm/forms-backend/db"
	"github.com/fossclubsrm/forms-backend/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const formsCollection = "forms"

// ErrFormNotFound is returned when no form exists for the requested ID.
var ErrFormNotFound = errors.New("form not found")

// FormStore persists form definitions in the forms collection.
type FormStore struct {
	manager *db.Manager
}

// NewFormStore creates a FormStore backed by the shared connection manager.
func NewFormStore(manager *db.Manager) *FormStore {
	return &FormStore{manager: manager}
}

// Create writes a new form definition. The ID is assigned by the handler
// before the write.
func (s *FormStore) Create(ctx context.Context, form *types.Form) error {
	database, err := s.manager.Database(ctx)
	if err != nil {
		return err
	}
	_, err = database.Collection(formsCollection).InsertOne(ctx, form)
	return err
}

// GetByID fetches one form definition, returning ErrFormNotFound when the ID
// is unknown.
func (s *FormStore) GetByID(ctx context.Context, id string) (*types.Form, error) {
	database, err := s.manager.Database(ctx)
	if err != nil {
		return nil, err
	}

	var form types.Form
	err = database.Collection(formsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

// List returns form definitions, newest first.
func (s *FormStore) List(ctx context.Context, activeOnly bool) ([]types.Form, error) {
	database, err := s.manager.Database(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := database.Collection(formsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	forms := make([]types.Form, 0)
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}
