package handlers

import (
	apperrors "github.com/fossclubsrm/forms-backend/errors"
	"github.com/gin-gonic/gin"
)

// bindJSONOrError binds the request body to obj, attaching a validation
// error to the context on failure.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_request_payload", err.Error()))
		return false
	}
	return true
}

// stringField extracts a string-typed value from an untyped body, returning
// "" when the key is absent or has another type.
func stringField(body map[string]interface{}, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}
