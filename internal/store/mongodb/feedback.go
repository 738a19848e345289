package mongodb

import (
	"context"
	"fmt"

	"github.com/fossclubsrm/forms-backend/db"
	"github.com/fossclubsrm/forms-backend/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const feedbackCollection = "feedback"

// FeedbackStore persists raw feedback entries in the feedback collection.
type FeedbackStore struct {
	manager *db.Manager
}

// NewFeedbackStore creates a FeedbackStore backed by the shared connection
// manager.
func NewFeedbackStore(manager *db.Manager) *FeedbackStore {
	return &FeedbackStore{manager: manager}
}

// Insert writes one feedback entry and returns the generated ObjectID as a
// hex string.
func (s *FeedbackStore) Insert(ctx context.Context, entry *types.FeedbackEntry) (string, error) {
	database, err := s.manager.Database(ctx)
	if err != nil {
		return "", err
	}

	result, err := database.Collection(feedbackCollection).InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id.Hex(), nil
}
