package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/fossclubsrm/forms-backend/errors"
	"github.com/fossclubsrm/forms-backend/internal/store"
	"github.com/fossclubsrm/forms-backend/internal/store/mongodb"
	"github.com/fossclubsrm/forms-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FormAdminHandler handles form definition management.
type FormAdminHandler struct {
	formStore       store.FormStore
	submissionStore store.SubmissionStore
}

// NewFormAdminHandler creates a new FormAdminHandler.
func NewFormAdminHandler(formStore store.FormStore, submissionStore store.SubmissionStore) *FormAdminHandler {
	return &FormAdminHandler{formStore: formStore, submissionStore: submissionStore}
}

// CreateForm godoc
// @Summary      Create a form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body      types.FormCreate  true  "Form definition"
// @Success      201   {object}  types.Form
// @Failure      400   {object}  types.ErrorResponse
// @Router       /forms [post]
func (h *FormAdminHandler) CreateForm(c *gin.Context) {
	var req types.FormCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	if err := validateFields(req.Fields); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_form_definition", err.Error()))
		return
	}

	now := time.Now().UTC()
	form := &types.Form{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Fields:      req.Fields,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.formStore.Create(c.Request.Context(), form); err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "form": form})
}

// GetForm godoc
// @Summary      Get a form with metrics
// @Tags         forms
// @Produce      json
// @Param        id   path      string  true  "Form ID"
// @Success      200  {object}  types.FormWithMetrics
// @Failure      404  {object}  types.ErrorResponse
// @Router       /forms/{id} [get]
func (h *FormAdminHandler) GetForm(c *gin.Context) {
	id := c.Param("id")

	form, err := h.formStore.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongodb.ErrFormNotFound) {
			_ = c.Error(apperrors.NotFound("Form", id))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	count, err := h.submissionStore.CountByForm(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, types.FormWithMetrics{
		Form: *form,
		Metrics: types.FormMetrics{
			FormID:          id,
			SubmissionCount: count,
		},
	})
}

// ListForms godoc
// @Summary      List forms
// @Tags         forms
// @Produce      json
// @Param        active  query     string  false  "Restrict to active forms (default true)"
// @Success      200     {object}  map[string]interface{}
// @Router       /forms [get]
func (h *FormAdminHandler) ListForms(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "true") != "false"

	forms, err := h.formStore.List(c.Request.Context(), activeOnly)
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "forms": forms})
}

// validateFields enforces the form definition invariants: known type tags,
// field identifiers unique within the form, and order values forming a total
// order.
func validateFields(fields []types.FormField) error {
	seenIDs := make(map[string]bool, len(fields))
	seenOrders := make(map[int]bool, len(fields))

	for _, f := range fields {
		if f.ID == "" {
			return fmt.Errorf("field %q is missing an identifier", f.Label)
		}
		if !f.Type.Valid() {
			return fmt.Errorf("field %q has unknown type %q", f.ID, f.Type)
		}
		if seenIDs[f.ID] {
			return fmt.Errorf("duplicate field identifier %q", f.ID)
		}
		if seenOrders[f.Order] {
			return fmt.Errorf("duplicate field order %d", f.Order)
		}
		seenIDs[f.ID] = true
		seenOrders[f.Order] = true
	}
	return nil
}
