package types

// SectionKey identifies one of the four candidate-scoring buckets.
type SectionKey string

// The fixed set of scoring sections.
const (
	SectionRequiredQualifications  SectionKey = "requiredQualifications"
	SectionPreferredQualifications SectionKey = "preferredQualifications"
	SectionPreScreeningQuestions   SectionKey = "preScreeningQuestions"
	SectionResume                  SectionKey = "resume"
)

// SectionKeys returns the scoring sections in their canonical order.
func SectionKeys() []SectionKey {
	return []SectionKey{
		SectionRequiredQualifications,
		SectionPreferredQualifications,
		SectionPreScreeningQuestions,
		SectionResume,
	}
}

// ValidSectionKey reports whether k names one of the four scoring sections.
func ValidSectionKey(k SectionKey) bool {
	switch k {
	case SectionRequiredQualifications, SectionPreferredQualifications,
		SectionPreScreeningQuestions, SectionResume:
		return true
	}
	return false
}

// Default per-section disposition thresholds.
const (
	DefaultAutoReject   = 40
	DefaultManualReview = 75
)

// SectionThreshold holds the score cutoffs that dispose a candidate within a
// single section. Candidates below AutoReject are rejected automatically;
// candidates between AutoReject and ManualReview are queued for review.
type SectionThreshold struct {
	AutoReject   int `json:"autoReject" validate:"min=0,max=100"`
	ManualReview int `json:"manualReview" validate:"min=0,max=100"`
}

// DefaultSectionThreshold returns the threshold pair applied when a section
// has no explicit configuration.
func DefaultSectionThreshold() SectionThreshold {
	return SectionThreshold{AutoReject: DefaultAutoReject, ManualReview: DefaultManualReview}
}

// RuleStatus is the candidate disposition a job rule matches on.
type RuleStatus string

// Supported rule statuses.
const (
	StatusPass         RuleStatus = "Pass"
	StatusManualReview RuleStatus = "Manual Review"
	StatusFail         RuleStatus = "Fail"
)

// ValidRuleStatus reports whether s is a supported rule status.
func ValidRuleStatus(s RuleStatus) bool {
	switch s {
	case StatusPass, StatusManualReview, StatusFail:
		return true
	}
	return false
}

// RuleAction is the automated action a job rule triggers.
type RuleAction string

// Supported rule actions.
const (
	ActionScheduleInterview RuleAction = "schedule-interview"
	ActionSendTemplate      RuleAction = "send-template"
	ActionRejectCandidate   RuleAction = "reject-candidate"
)

// ValidRuleAction reports whether a is a supported rule action.
func ValidRuleAction(a RuleAction) bool {
	switch a {
	case ActionScheduleInterview, ActionSendTemplate, ActionRejectCandidate:
		return true
	}
	return false
}

// JobRule triggers an automated action when at least SectionCount sections
// resolve to Status. Template references an email template and is only
// meaningful for the send-template action.
type JobRule struct {
	SectionCount int        `json:"sectionCount" validate:"min=0"`
	Status       RuleStatus `json:"status"`
	Action       RuleAction `json:"action"`
	Template     string     `json:"template,omitempty"`
}

// QuestionCriteria configures how a pre-screening answer is scored.
type QuestionCriteria struct {
	CorrectAnswer   string `json:"correctAnswer,omitempty"`
	IncorrectAnswer string `json:"incorrectAnswer,omitempty"`
	Instructions    string `json:"instructions,omitempty"`
}

// Automation is the candidate-scoring configuration of a posting.
//
// Weights are integers in [0, 100]. Section weights may under-allocate while
// a posting is being drafted but may never exceed 100 in total; the per-item
// scoring maps must sum to exactly 100 whenever they are non-empty. The three
// scalar thresholds predate the per-section map and are kept for postings
// that have not been migrated.
type Automation struct {
	SectionWeights       map[SectionKey]int              `json:"sectionWeights,omitempty"`
	SectionThresholds    map[SectionKey]SectionThreshold `json:"sectionThresholds,omitempty"`
	PreferredQualScoring map[string]int                  `json:"preferredQualScoring,omitempty"`
	ResumeItemScoring    map[string]int                  `json:"resumeItemScoring,omitempty"`
	QuestionAutoFail     map[string]bool                 `json:"questionAutoFail,omitempty"`
	QuestionCriteria     map[string]QuestionCriteria     `json:"questionCriteria,omitempty"`
	JobRules             []JobRule                       `json:"jobRules,omitempty"`
	TemplateID           string                          `json:"templateId,omitempty"`

	// Legacy whole-posting thresholds. Pointers distinguish an absent value
	// from an explicit zero; zero is legal and means the cutoff never fires.
	AcceptanceThreshold   *int `json:"acceptanceThreshold,omitempty" validate:"omitempty,min=0,max=100"`
	ManualReviewThreshold *int `json:"manualReviewThreshold,omitempty" validate:"omitempty,min=0,max=100"`
	AutoRejectThreshold   *int `json:"autoRejectThreshold,omitempty" validate:"omitempty,min=0,max=100"`
}

func intPtr(v int) *int {
	return &v
}

// DefaultAutomation returns the automation configuration applied to a newly
// opened posting: default thresholds for every section and the legacy scalar
// thresholds mirroring them.
func DefaultAutomation() Automation {
	thresholds := make(map[SectionKey]SectionThreshold, len(SectionKeys()))
	for _, key := range SectionKeys() {
		thresholds[key] = DefaultSectionThreshold()
	}
	return Automation{
		SectionThresholds:     thresholds,
		AcceptanceThreshold:   intPtr(DefaultManualReview),
		ManualReviewThreshold: intPtr(DefaultManualReview),
		AutoRejectThreshold:   intPtr(DefaultAutoReject),
	}
}

// MergeDefaults returns a copy of a with missing configuration filled in from
// DefaultAutomation. The merge is explicit and field-by-field: only sections
// absent from SectionThresholds and unset legacy thresholds are filled;
// populated values, including an explicit zero threshold, are never touched.
func (a Automation) MergeDefaults() Automation {
	result := a

	merged := make(map[SectionKey]SectionThreshold, len(SectionKeys()))
	for _, key := range SectionKeys() {
		if threshold, ok := a.SectionThresholds[key]; ok {
			merged[key] = threshold
		} else {
			merged[key] = DefaultSectionThreshold()
		}
	}
	result.SectionThresholds = merged

	if result.AcceptanceThreshold == nil {
		result.AcceptanceThreshold = intPtr(DefaultManualReview)
	}
	if result.ManualReviewThreshold == nil {
		result.ManualReviewThreshold = intPtr(DefaultManualReview)
	}
	if result.AutoRejectThreshold == nil {
		result.AutoRejectThreshold = intPtr(DefaultAutoReject)
	}

	return result
}
