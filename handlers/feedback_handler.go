package handlers

import (
	"net/http"
	"time"

	"github.com/fossclubsrm/forms-backend/config"
	"github.com/fossclubsrm/forms-backend/internal/metrics"
	"github.com/fossclubsrm/forms-backend/internal/store"
	"github.com/fossclubsrm/forms-backend/logger"
	"github.com/fossclubsrm/forms-backend/types"
	"github.com/fossclubsrm/forms-backend/validation"
	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles the simplified feedback submission path. Unlike
// the generic form path it validates the body against the configured schema
// variant and checks up front that a connection string was configured.
type FeedbackHandler struct {
	feedbackStore store.FeedbackStore
	validator     *validation.FeedbackValidator
	schema        config.FeedbackSchema
	uriConfigured bool
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackStore store.FeedbackStore, validator *validation.FeedbackValidator, cfg *config.Config) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackStore: feedbackStore,
		validator:     validator,
		schema:        cfg.Feedback.Schema,
		uriConfigured: cfg.Database.URIFromEnv,
	}
}

// SubmitFeedback godoc
// @Summary      Submit feedback
// @Description  Validates and stores a feedback submission
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Success      201  {object}  types.SubmitResponse
// @Failure      400  {object}  types.ValidationErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /forms/feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	// Fail fast when no connection string was configured, before any
	// connection attempt. This check is distinct from the storage error path.
	if !h.uriConfigured {
		logger.GetLogger().Errorw("Feedback submission with no database configured",
			"method", c.Request.Method, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Message: "Database configuration missing",
		})
		return
	}

	var body map[string]interface{}
	if !bindJSONOrError(c, &body) {
		return
	}

	if _, fieldErrs := h.validator.Validate(h.schema, body); len(fieldErrs) > 0 {
		logger.GetLogger().Warnw("Feedback validation failed",
			"method", c.Request.Method, "path", c.Request.URL.Path,
			"email", logger.MaskEmail(stringField(body, "email")),
			"violations", len(fieldErrs))
		c.JSON(http.StatusBadRequest, types.ValidationErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  fieldErrs,
		})
		return
	}

	entry := &types.FeedbackEntry{
		SubmittedData: body,
		SubmittedAt:   time.Now().UTC(),
		UserAgent:     c.GetHeader("User-Agent"),
	}

	id, err := h.feedbackStore.Insert(c.Request.Context(), entry)
	if err != nil {
		logger.GetLogger().Errorw("Failed to submit feedback",
			"method", c.Request.Method, "path", c.Request.URL.Path,
			"email", logger.MaskEmail(stringField(body, "email")), "error", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Message: "Failed to submit form",
			Error:   err.Error(),
		})
		return
	}

	metrics.FeedbackSubmissionsTotal.Inc()
	c.JSON(http.StatusCreated, types.SubmitResponse{
		Success:      true,
		SubmissionID: id,
		Message:      "Form submitted successfully",
	})
}
