package types

import "github.com/google/uuid"

// QuestionType identifies the answer shape of a pre-screening question.
type QuestionType string

// Supported question types.
const (
	QuestionBoolean QuestionType = "boolean"
	QuestionString  QuestionType = "string"
	QuestionSelect  QuestionType = "select"
)

// ValidQuestionType reports whether t is one of the supported question types.
func ValidQuestionType(t QuestionType) bool {
	switch t {
	case QuestionBoolean, QuestionString, QuestionSelect:
		return true
	}
	return false
}

// CustomQuestion is a pre-screening question attached to a posting.
// Select questions carry their answer options; string questions may carry a
// placeholder hint for the applicant-facing input.
type CustomQuestion struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type" validate:"required"`
	Question    string       `json:"question" validate:"required"`
	Required    bool         `json:"required"`
	Options     []string     `json:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// NewCustomQuestion builds a question with a fresh identifier. Scoring and
// auto-fail configuration in the automation block reference this ID.
func NewCustomQuestion(questionType QuestionType, question string) CustomQuestion {
	return CustomQuestion{
		ID:       uuid.NewString(),
		Type:     questionType,
		Question: question,
	}
}

// Qualification is a single required or preferred qualification with an
// optional per-item score used by preferred-qualification weighting.
type Qualification struct {
	Text  string `json:"text" validate:"required"`
	Score int    `json:"score" validate:"min=0,max=100"`
}
