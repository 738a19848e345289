package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fossclubsrm/forms-backend/config"
	"github.com/fossclubsrm/forms-backend/middleware"
	"github.com/fossclubsrm/forms-backend/types"
	"github.com/fossclubsrm/forms-backend/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func feedbackConfig(schema config.FeedbackSchema, uriConfigured bool) *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			URI:        config.DefaultMongoURI,
			Name:       "fossclubsrm",
			URIFromEnv: uriConfigured,
		},
		Feedback: config.FeedbackConfig{Schema: schema},
	}
}

func newFeedbackRouter(h *FeedbackHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/forms/feedback", h.SubmitFeedback)
	return r
}

func TestSubmitFeedbackSuccess(t *testing.T) {
	store := new(MockFeedbackStore)

	var captured *types.FeedbackEntry
	store.On("Insert", mock.Anything, mock.AnythingOfType("*types.FeedbackEntry")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*types.FeedbackEntry)
		}).
		Return("66f0aa11bb22cc33dd44ee55", nil)

	h := NewFeedbackHandler(store, validation.New(), feedbackConfig(config.SchemaSimple, true))
	r := newFeedbackRouter(h)

	body := map[string]interface{}{
		"feedback": "Great sessions, learned a lot",
		"docker":   4,
		"linux":    5,
	}
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/forms/feedback", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "feedback-test/1.0")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp types.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.SubmissionID)

	// The raw body plus server-observed metadata is what gets stored.
	require.NotNil(t, captured)
	assert.Equal(t, "feedback-test/1.0", captured.UserAgent)
	assert.Equal(t, "Great sessions, learned a lot", captured.SubmittedData["feedback"])
	assert.WithinDuration(t, time.Now().UTC(), captured.SubmittedAt, 5*time.Second)

	store.AssertExpectations(t)
}

func TestSubmitFeedbackConfigurationMissing(t *testing.T) {
	store := new(MockFeedbackStore)

	h := NewFeedbackHandler(store, validation.New(), feedbackConfig(config.SchemaSimple, false))
	r := newFeedbackRouter(h)

	w := postJSON(r, "/forms/feedback", map[string]interface{}{
		"feedback": "Great sessions, learned a lot",
		"docker":   4,
		"linux":    5,
	})

	// Fails fast before any connection or insert is attempted.
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Database configuration missing", resp.Message)
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSubmitFeedbackValidationFailure(t *testing.T) {
	store := new(MockFeedbackStore)

	h := NewFeedbackHandler(store, validation.New(), feedbackConfig(config.SchemaSimple, true))
	r := newFeedbackRouter(h)

	w := postJSON(r, "/forms/feedback", map[string]interface{}{
		"feedback": "abc",
		"docker":   0,
		"linux":    6,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp types.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Len(t, resp.Errors, 3)
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSubmitFeedbackExtendedSchema(t *testing.T) {
	store := new(MockFeedbackStore)
	store.On("Insert", mock.Anything, mock.Anything).
		Return("66f0aa11bb22cc33dd44ee57", nil)

	h := NewFeedbackHandler(store, validation.New(), feedbackConfig(config.SchemaExtended, true))
	r := newFeedbackRouter(h)

	// Valid under the simple schema, invalid under the extended one: the
	// variants are distinct configurations, never merged.
	w := postJSON(r, "/forms/feedback", map[string]interface{}{
		"feedback": "Great sessions, learned a lot",
		"docker":   4,
		"linux":    5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/forms/feedback", map[string]interface{}{
		"name":           "Asha",
		"email":          "as1234@srmist.edu.in",
		"registerNumber": "RA2211003010123",
		"feedback":       "Both sessions were really well paced",
		"session1Rating": 4,
		"session2Rating": 5,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	store.AssertExpectations(t)
}

func TestSubmitFeedbackStorageFailure(t *testing.T) {
	store := new(MockFeedbackStore)
	store.On("Insert", mock.Anything, mock.Anything).Return("", assert.AnError)

	h := NewFeedbackHandler(store, validation.New(), feedbackConfig(config.SchemaSimple, true))
	r := newFeedbackRouter(h)

	w := postJSON(r, "/forms/feedback", map[string]interface{}{
		"feedback": "Great sessions, learned a lot",
		"docker":   4,
		"linux":    5,
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, assert.AnError.Error(), resp.Error)
}
