package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	apperrors "github.com/fossclubsrm/forms-backend/errors"
	"github.com/fossclubsrm/forms-backend/internal/metrics"
	"github.com/fossclubsrm/forms-backend/internal/store"
	"github.com/fossclubsrm/forms-backend/internal/store/mongodb"
	"github.com/fossclubsrm/forms-backend/logger"
	"github.com/fossclubsrm/forms-backend/types"
	"github.com/gin-gonic/gin"
)

// FormHandler handles generic form submission and query endpoints.
type FormHandler struct {
	submissionStore store.SubmissionStore
	formStore       store.FormStore
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(submissionStore store.SubmissionStore, formStore store.FormStore) *FormHandler {
	return &FormHandler{submissionStore: submissionStore, formStore: formStore}
}

// SubmitForm godoc
// @Summary      Submit a form
// @Description  Persists a submission against a dynamically defined form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Success      201  {object}  types.SubmitResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /forms/submit [post]
func (h *FormHandler) SubmitForm(c *gin.Context) {
	// A malformed body is a submission failure, not a schema violation: this
	// path has no declared schema, so parse errors take the same 500 envelope
	// as a storage failure.
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.GetLogger().Errorw("Failed to parse submission body",
			"method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Message: "Failed to submit form",
			Error:   err.Error(),
		})
		return
	}

	// The submission identifier is server-assigned, never client-supplied.
	if _, present := body["_id"]; present {
		_ = c.Error(apperrors.ValidationFailed("invalid_request_payload",
			"_id must not be supplied; submission identifiers are server-assigned"))
		return
	}

	submission := &types.FormSubmission{
		FormID:        stringField(body, "formId"),
		FormTitle:     stringField(body, "formTitle"),
		Fields:        decodeFields(body["fields"]),
		SubmittedData: submittedData(body),
		SubmittedAt:   time.Now().UTC(),
		IPAddress:     c.ClientIP(),
	}

	// A known but deactivated form no longer accepts submissions. An unknown
	// formId is accepted: submissions reference forms without referential
	// integrity.
	if submission.FormID != "" {
		form, err := h.formStore.GetByID(c.Request.Context(), submission.FormID)
		switch {
		case err == nil && !form.IsActive:
			_ = c.Error(apperrors.ValidationFailed("form_inactive",
				"this form is no longer accepting submissions"))
			return
		case err != nil && !errors.Is(err, mongodb.ErrFormNotFound):
			logger.GetLogger().Warnw("Form lookup failed, accepting submission anyway",
				"formId", submission.FormID, "error", err)
		}
	}

	id, err := h.submissionStore.Insert(c.Request.Context(), submission)
	if err != nil {
		metrics.SubmissionFailuresTotal.Inc()
		logger.GetLogger().Errorw("Failed to submit form",
			"method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Message: "Failed to submit form",
			Error:   err.Error(),
		})
		return
	}

	metrics.FormSubmissionsTotal.WithLabelValues(submission.FormID).Inc()
	c.JSON(http.StatusCreated, types.SubmitResponse{
		Success:      true,
		SubmissionID: id,
		Message:      "Form submitted successfully",
	})
}

// ListSubmissions godoc
// @Summary      List form submissions
// @Description  Returns submissions, optionally filtered by form, newest first
// @Tags         forms
// @Produce      json
// @Param        formId  query     string  false  "Form ID filter"
// @Success      200     {object}  types.SubmissionsResponse
// @Failure      500     {object}  types.ErrorResponse
// @Router       /forms/submissions [get]
func (h *FormHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.submissionStore.List(c.Request.Context(), c.Query("formId"))
	if err != nil {
		logger.GetLogger().Errorw("Failed to fetch submissions",
			"method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Message: "Failed to fetch submissions",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.SubmissionsResponse{
		Success:     true,
		Submissions: submissions,
	})
}

// decodeFields converts the untyped fields value into the field definition
// copy stored alongside the submission.
func decodeFields(raw interface{}) []types.FormField {
	if raw == nil {
		return nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var fields []types.FormField
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

func submittedData(body map[string]interface{}) map[string]interface{} {
	if data, ok := body["submittedData"].(map[string]interface{}); ok {
		return data
	}
	return map[string]interface{}{}
}
