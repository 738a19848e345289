// Package store defines the data access interfaces used by handlers.
// Concrete implementations live in subpackages; tests use mocks.
package store

import (
	"context"

	"github.com/fossclubsrm/forms-backend/types"
)

// SubmissionStore handles generic form submission persistence.
type SubmissionStore interface {
	// Insert writes one immutable submission and returns the server-assigned
	// identifier. Submissions are never updated or deleted.
	Insert(ctx context.Context, submission *types.FormSubmission) (string, error)
	// List returns submissions sorted by submittedAt descending. An empty
	// formID returns all submissions; otherwise only those owned by formID.
	List(ctx context.Context, formID string) ([]types.FormSubmission, error)
	// CountByForm returns the number of submissions owned by formID.
	CountByForm(ctx context.Context, formID string) (int64, error)
}

// FeedbackStore handles the simplified feedback submission path.
type FeedbackStore interface {
	Insert(ctx context.Context, entry *types.FeedbackEntry) (string, error)
}

// FormStore handles form definition persistence. Note that submissions
// reference forms by ID without referential integrity: a submission may name
// a formId no Form record exists for.
type FormStore interface {
	Create(ctx context.Context, form *types.Form) error
	GetByID(ctx context.Context, id string) (*types.Form, error)
	// List returns forms, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]types.Form, error)
}
