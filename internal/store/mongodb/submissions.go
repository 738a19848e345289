package mongodb

import (
	"context"
	"fmt"

	"github.com/fossclubsrm/forms-backend/db"
	"github.com/fossclubsrm/forms-backend/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const submissionsCollection = "form_submissions"

// SubmissionStore persists form submissions in the form_submissions
// collection.
type SubmissionStore struct {
	manager *db.Manager
}

// NewSubmissionStore creates a SubmissionStore backed by the shared
// connection manager.
func NewSubmissionStore(manager *db.Manager) *SubmissionStore {
	return &SubmissionStore{manager: manager}
}

// Insert writes one submission document and returns the generated ObjectID
// as a hex string. The _id is always server-assigned here; handlers reject
// client-supplied identifiers before this point.
func (s *SubmissionStore) Insert(ctx context.Context, submission *types.FormSubmission) (string, error) {
	database, err := s.manager.Database(ctx)
	if err != nil {
		return "", err
	}

	result, err := database.Collection(submissionsCollection).InsertOne(ctx, submission)
	if err != nil {
		return "", err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id.Hex(), nil
}

// List returns submissions sorted most-recent-first. Order among documents
// with equal submittedAt is storage order.
func (s *SubmissionStore) List(ctx context.Context, formID string) ([]types.FormSubmission, error) {
	database, err := s.manager.Database(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if formID != "" {
		filter["formId"] = formID
	}

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := database.Collection(submissionsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := make([]types.FormSubmission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// CountByForm counts submissions owned by the given form.
func (s *SubmissionStore) CountByForm(ctx context.Context, formID string) (int64, error) {
	database, err := s.manager.Database(ctx)
	if err != nil {
		return 0, err
	}
	return database.Collection(submissionsCollection).CountDocuments(ctx, bson.M{"formId": formID})
}
