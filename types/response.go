package types

// SubmitResponse is returned on a successful submission.
type SubmitResponse struct {
	Success      bool   `json:"success"`
	SubmissionID string `json:"submissionId"`
	Message      string `json:"message"`
}

// SubmissionsResponse wraps the list returned by the query handler.
type SubmissionsResponse struct {
	Success     bool             `json:"success"`
	Submissions []FormSubmission `json:"submissions"`
}

// ErrorResponse is the failure envelope for submission and query endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// FieldError attributes a single validation message to the field that
// violated the rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries one message per violated rule.
type ValidationErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// NotFoundResponse is the structured body returned for unmatched routes.
type NotFoundResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
