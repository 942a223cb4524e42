// Package validation checks job postings and their automation configuration
// before submission. Violations are collected exhaustively and returned as
// data so the form layer can display every problem at once; nothing in this
// package panics, logs, or fails fast.
package validation

import "fmt"

// Kind classifies a violation.
type Kind string

const (
	// KindSchema marks a structural violation: a missing required field, an
	// out-of-range number, or an unknown enum value.
	KindSchema Kind = "schema"
	// KindCrossField marks a rule spanning two or more fields, such as date
	// ordering or a weight-sum overrun.
	KindCrossField Kind = "cross_field"
)

// FieldError is a single violation attached to a field path. Paths use wire
// field names with dot and index notation, e.g. "customQuestions[1].options".
type FieldError struct {
	Path    string `json:"path"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Result is the outcome of a validation pass.
type Result struct {
	Errors []FieldError `json:"errors"`
}

// Valid reports whether the pass found no violations. The value receiver
// lets callers test a returned Result directly without binding it first.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// ByPath groups the violation messages by field path, for form layers that
// render errors next to their inputs.
func (r Result) ByPath() map[string][]string {
	if len(r.Errors) == 0 {
		return nil
	}
	grouped := make(map[string][]string)
	for _, err := range r.Errors {
		grouped[err.Path] = append(grouped[err.Path], err.Message)
	}
	return grouped
}

// add appends a violation to the result.
func (r *Result) add(path string, kind Kind, format string, args ...any) {
	r.Errors = append(r.Errors, FieldError{
		Path:    path,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

// append merges another result's violations into r.
func (r *Result) append(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
}

// indexedPath builds a path for a slice element, e.g. "jobRules[2]".
func indexedPath(path string, index int) string {
	return fmt.Sprintf("%s[%d]", path, index)
}
