package handlers

import (
	"context"

	"github.com/fossclubsrm/forms-backend/types"
	"github.com/stretchr/testify/mock"
)

// MockSubmissionStore implements store.SubmissionStore for handler tests.
type MockSubmissionStore struct {
	mock.Mock
}

func (m *MockSubmissionStore) Insert(ctx context.Context, submission *types.FormSubmission) (string, error) {
	args := m.Called(ctx, submission)
	return args.String(0), args.Error(1)
}

func (m *MockSubmissionStore) List(ctx context.Context, formID string) ([]types.FormSubmission, error) {
	args := m.Called(ctx, formID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.FormSubmission), args.Error(1)
}

func (m *MockSubmissionStore) CountByForm(ctx context.Context, formID string) (int64, error) {
	args := m.Called(ctx, formID)
	return args.Get(0).(int64), args.Error(1)
}

// MockFeedbackStore implements store.FeedbackStore for handler tests.
type MockFeedbackStore struct {
	mock.Mock
}

func (m *MockFeedbackStore) Insert(ctx context.Context, entry *types.FeedbackEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}

// MockFormStore implements store.FormStore for handler tests.
type MockFormStore struct {
	mock.Mock
}

func (m *MockFormStore) Create(ctx context.Context, form *types.Form) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockFormStore) GetByID(ctx context.Context, id string) (*types.Form, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Form), args.Error(1)
}

func (m *MockFormStore) List(ctx context.Context, activeOnly bool) ([]types.Form, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Form), args.Error(1)
}
