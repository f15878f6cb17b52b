// Package schemas validates durable candidate and job records against
// embedded JSON Schemas before the core consumes them.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed candidate_record.schema.json
var candidateRecordSchema string

//go:embed job_posting.schema.json
var jobPostingSchema string

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the schema violations found in one document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

// ValidateCandidateRecord checks a serialized candidate record against its
// schema.
func ValidateCandidateRecord(document []byte) error {
	return validate(candidateRecordSchema, document)
}

// ValidateJobPosting checks a serialized job posting against its schema.
func ValidateJobPosting(document []byte) error {
	return validate(jobPostingSchema, document)
}

func validate(schema string, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
