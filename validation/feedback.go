// Package validation implements the two feedback schema variants as
// server-side checks. The variants are alternative configurations selected
// at startup and are never merged: the simple schema covers the workshop
// feedback form, the extended schema the event feedback form.
package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/fossclubsrm/forms-backend/config"
	"github.com/fossclubsrm/forms-backend/types"
	"github.com/go-playground/validator/v10"
)

const instituteEmailSuffix = "@srmist.edu.in"

var registerNumberPattern = regexp.MustCompile(`^RA\d{13}$`)

// messages maps "<json field>.<rule>" to the human-readable text surfaced to
// clients. One message per violated rule, attributable to a specific field.
var messages = map[string]string{
	"feedback.min": "Feedback must be at least %d characters long",
	"feedback.max": "Feedback must be no more than 1000 characters",

	"docker.min": "Please rate the Docker session",
	"docker.max": "Rating must be between 1 and 5",
	"linux.min":  "Please rate the Linux session",
	"linux.max":  "Rating must be between 1 and 5",

	"name.min": "Name must be at least 2 characters long",
	"name.max": "Name must be no more than 50 characters",

	"email.required": "Email is required",
	"email.email":    "Email must be a valid email address",
	"email.srmemail": "Email must end with " + instituteEmailSuffix,

	"registerNumber.required":       "Register number is required",
	"registerNumber.registernumber": "Register number must be RA followed by 13 digits",

	"session1Rating.min": "Please rate session 1",
	"session1Rating.max": "Rating must be between 1 and 5",
	"session2Rating.min": "Please rate session 2",
	"session2Rating.max": "Rating must be between 1 and 5",
}

// FeedbackValidator validates candidate feedback payloads against one of the
// schema variants. Validation is all-or-nothing per submission attempt.
type FeedbackValidator struct {
	validate *validator.Validate
}

// New builds a FeedbackValidator with the custom institute rules registered.
func New() *FeedbackValidator {
	v := validator.New()

	// Report violations under the json field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Errors from RegisterValidation only occur for empty tag names.
	_ = v.RegisterValidation("srmemail", func(fl validator.FieldLevel) bool {
		return strings.HasSuffix(fl.Field().String(), instituteEmailSuffix)
	})
	_ = v.RegisterValidation("registernumber", func(fl validator.FieldLevel) bool {
		return registerNumberPattern.MatchString(fl.Field().String())
	})

	return &FeedbackValidator{validate: v}
}

// Validate checks the candidate object against the selected schema variant.
// On success it returns the normalized payload with exactly the declared
// fields; on failure it returns one message per violated rule.
func (fv *FeedbackValidator) Validate(variant config.FeedbackSchema, body map[string]interface{}) (interface{}, []types.FieldError) {
	switch variant {
	case config.SchemaExtended:
		var payload types.ExtendedFeedback
		return fv.run(&payload, body)
	default:
		var payload types.SimpleFeedback
		return fv.run(&payload, body)
	}
}

func (fv *FeedbackValidator) run(target interface{}, body map[string]interface{}) (interface{}, []types.FieldError) {
	if fieldErr := decodeInto(target, body); fieldErr != nil {
		return nil, []types.FieldError{*fieldErr}
	}

	if err := fv.validate.Struct(target); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, []types.FieldError{{Field: "", Message: err.Error()}}
		}

		fieldErrs := make([]types.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrs = append(fieldErrs, types.FieldError{
				Field:   fe.Field(),
				Message: messageFor(fe),
			})
		}
		return nil, fieldErrs
	}

	return target, nil
}

// decodeInto converts the untyped body into the schema struct via a JSON
// round trip, so type mismatches surface as field-level errors instead of
// panics.
func decodeInto(target interface{}, body map[string]interface{}) *types.FieldError {
	raw, err := json.Marshal(body)
	if err != nil {
		return &types.FieldError{Field: "", Message: "invalid request body"}
	}
	if err := json.Unmarshal(raw, target); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
			return &types.FieldError{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("%s has the wrong type", typeErr.Field),
			}
		}
		return &types.FieldError{Field: "", Message: "invalid request body"}
	}
	return nil
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		if strings.Contains(msg, "%d") {
			// The feedback length minimum differs between the two variants.
			return fmt.Sprintf(msg, atoiOr(fe.Param(), 0))
		}
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

func atoiOr(s string, fallback int) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return fallback
		}
		n = n*10 + int(r-'0')
	}
	return n
}
