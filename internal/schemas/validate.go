// Package schemas provides JSON Schema validation for the job posting wire
// payload. The schema document is embedded at compile time and mirrors the
// structural constraints the remote API enforces, so malformed payloads are
// caught before a request is issued.
package schemas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	_ "embed"
)

//go:embed job_posting.schema.json
var jobPostingSchema string

// compiled caches the parsed schema after first use.
var (
	compiled     *gojsonschema.Schema
	compileErr   error
	compiledOnce sync.Once
)

// JobPostingSchema returns the embedded schema document.
func JobPostingSchema() string {
	return jobPostingSchema
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("payload validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents a problem parsing the schema itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load job posting schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load job posting schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidatePayload validates a serialized posting against the embedded schema.
// Returns nil when the payload is structurally valid, a *ValidationError
// listing every violation otherwise.
func ValidatePayload(payload []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return &SchemaLoadError{Message: "payload could not be evaluated", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// loadSchema compiles the embedded schema once and caches the result.
func loadSchema() (*gojsonschema.Schema, error) {
	compiledOnce.Do(func() {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(jobPostingSchema))
		if err != nil {
			compileErr = &SchemaLoadError{Message: "schema does not parse", Cause: err}
			return
		}
		compiled = schema
	})
	return compiled, compileErr
}
