package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldType enumerates the input kinds a form field can take. The builder UI
// produces the first four; the remaining values are the legacy set still
// present in stored submissions.
type FieldType string

const (
	FieldText         FieldType = "text"
	FieldMCQ          FieldType = "mcq"
	FieldSingleChoice FieldType = "single_choice"
	FieldFileUpload   FieldType = "file_upload"

	// Legacy field types.
	FieldEmail    FieldType = "email"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldRadio    FieldType = "radio"
)

// Valid reports whether the type tag is one of the known values.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldMCQ, FieldSingleChoice, FieldFileUpload,
		FieldEmail, FieldTextarea, FieldSelect, FieldCheckbox, FieldRadio:
		return true
	}
	return false
}

// FieldValidation holds the optional bounds a field may declare.
type FieldValidation struct {
	MinLength *int   `bson:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int   `bson:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string `bson:"pattern,omitempty" json:"pattern,omitempty"`
}

// FormField describes one input in a dynamically defined form. Order values
// are unique within a form and define the render sequence.
type FormField struct {
	ID          string           `bson:"id" json:"id"`
	Type        FieldType        `bson:"type" json:"type"`
	Label       string           `bson:"label" json:"label"`
	Required    bool             `bson:"required" json:"required"`
	Placeholder string           `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	Options     []string         `bson:"options,omitempty" json:"options,omitempty"`
	Validation  *FieldValidation `bson:"validation,omitempty" json:"validation,omitempty"`
	Order       int              `bson:"order" json:"order"`
}

// Form is a user-defined set of input fields with metadata. Field IDs are
// unique within a form; the active flag gates whether new submissions are
// accepted.
type Form struct {
	ID          string      `bson:"_id" json:"id"`
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Fields      []FormField `bson:"fields" json:"fields"`
	IsActive    bool        `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at"`
}

// FormCreate is the request body for creating a form.
type FormCreate struct {
	Title       string      `json:"title" binding:"required,min=1,max=200"`
	Description string      `json:"description,omitempty"`
	Fields      []FormField `json:"fields" binding:"required,min=1"`
}

// FormSubmission is one immutable record of data entered against a Form.
// It denormalizes the form title and a copy of the field definitions at
// submission time. The formId reference is deliberately unchecked against
// the forms collection.
type FormSubmission struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	FormID        string                 `bson:"formId" json:"formId"`
	FormTitle     string                 `bson:"formTitle" json:"formTitle"`
	Fields        []FormField            `bson:"fields,omitempty" json:"fields,omitempty"`
	SubmittedData map[string]interface{} `bson:"submittedData" json:"submittedData"`
	SubmittedAt   time.Time              `bson:"submittedAt" json:"submittedAt"`
	IPAddress     string                 `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
}

// FormMetrics holds derived counters associated 1:1 with a Form. Only the
// submission count is computed today; view and click counts have no update
// path yet and stay zero.
type FormMetrics struct {
	FormID          string     `bson:"form_id" json:"form_id"`
	ViewCount       int64      `bson:"view_count" json:"view_count"`
	ClickCount      int64      `bson:"click_count" json:"click_count"`
	SubmissionCount int64      `bson:"submission_count" json:"submission_count"`
	LastViewedAt    *time.Time `bson:"last_viewed_at,omitempty" json:"last_viewed_at,omitempty"`
}

// FormWithMetrics bundles a form with its derived metrics for detail views.
type FormWithMetrics struct {
	Form    Form        `json:"form"`
	Metrics FormMetrics `json:"metrics"`
}
