package types

// WorkType identifies where a job is performed.
type WorkType string

// Supported work types.
const (
	WorkInPerson    WorkType = "in-person"
	WorkFullyRemote WorkType = "fully-remote"
	WorkHybrid      WorkType = "hybrid"
	WorkOnTheRoad   WorkType = "on-the-road"
)

// ValidWorkType reports whether w is one of the supported work types.
func ValidWorkType(w WorkType) bool {
	switch w {
	case WorkInPerson, WorkFullyRemote, WorkHybrid, WorkOnTheRoad:
		return true
	}
	return false
}

// JobLocation is the physical location of an in-person, hybrid, or
// on-the-road posting. All fields are optional at the type level; the
// validator requires a zip code for non-remote work types.
type JobLocation struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// RemoteLocationRequirement restricts where remote applicants may live.
type RemoteLocationRequirement struct {
	Required bool   `json:"required"`
	Location string `json:"location,omitempty"`
}

// EmailTemplateRef references an email template managed by the remote
// template service. Only the ID participates in submission; the label is
// carried for display.
type EmailTemplateRef struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// EmailTemplates holds the lifecycle email references of a posting.
type EmailTemplates struct {
	InterviewSchedule     *EmailTemplateRef `json:"interviewSchedule,omitempty"`
	InterviewConfirmation *EmailTemplateRef `json:"interviewConfirmation,omitempty"`
	InterviewRejection    *EmailTemplateRef `json:"interviewRejection,omitempty"`
}

// JobPosting is the aggregate posting model. It exists in memory while a
// posting is authored or edited; the remote job API is the system of record.
// JSON tags define the wire shape exchanged with that API.
type JobPosting struct {
	ID string `json:"id,omitempty"`

	// Identification and description.
	InternalTitle string `json:"internalTitle" validate:"required"`
	BoardTitle    string `json:"boardTitle" validate:"required,max=60"`
	Description   string `json:"description" validate:"required,min=20,max=3500"`

	// Compensation.
	PayType PayType  `json:"payType,omitempty"`
	PayRate *PayRate `json:"payRate,omitempty"`

	// Schedule.
	HoursPerWeek    *HoursPerWeek `json:"hoursPerWeek,omitempty"`
	Schedule        []string      `json:"schedule,omitempty"`
	StartDate       *Date         `json:"startDate,omitempty"`
	EndDate         *Date         `json:"endDate,omitempty"`
	RunIndefinitely bool          `json:"runIndefinitely,omitempty"`

	// Location.
	WorkType                  WorkType                   `json:"jobLocationWorkType,omitempty"`
	Location                  *JobLocation               `json:"jobLocation,omitempty"`
	RemoteLocationRequirement *RemoteLocationRequirement `json:"remoteLocationRequirement,omitempty"`

	// Qualifications and screening.
	RequiredQualifications  []Qualification  `json:"requiredQualifications,omitempty" validate:"dive"`
	PreferredQualifications []Qualification  `json:"preferredQualifications,omitempty" validate:"dive"`
	JobRequirements         []string         `json:"jobRequirements,omitempty"`
	CustomQuestions         []CustomQuestion `json:"customQuestions,omitempty" validate:"dive"`

	// Scoring configuration.
	Automation Automation `json:"automation"`

	// External references.
	AvailabilityID string         `json:"availabilityId" validate:"required"`
	EmailTemplates EmailTemplates `json:"emailTemplates"`

	// Sponsorship budgets.
	DailyBudget        *float64 `json:"dailyBudget,omitempty" validate:"omitempty,min=0"`
	MonthlyBudget      *float64 `json:"monthlyBudget,omitempty" validate:"omitempty,min=0"`
	IndeedBudget       *float64 `json:"indeedBudget,omitempty" validate:"omitempty,min=0"`
	ZipRecruiterBudget *float64 `json:"zipRecruiterBudget,omitempty" validate:"omitempty,min=0"`
}

// NewJobPosting returns the posting a freshly opened creation form starts
// from: empty fields with default automation configuration.
func NewJobPosting() *JobPosting {
	return &JobPosting{
		Automation: DefaultAutomation(),
	}
}

// TemplateRefs returns the non-empty lifecycle email template IDs keyed by
// their field path, in a stable order.
func (p *JobPosting) TemplateRefs() map[string]string {
	refs := make(map[string]string)
	if ref := p.EmailTemplates.InterviewSchedule; ref != nil && ref.ID != "" {
		refs["emailTemplates.interviewSchedule"] = ref.ID
	}
	if ref := p.EmailTemplates.InterviewConfirmation; ref != nil && ref.ID != "" {
		refs["emailTemplates.interviewConfirmation"] = ref.ID
	}
	if ref := p.EmailTemplates.InterviewRejection; ref != nil && ref.ID != "" {
		refs["emailTemplates.interviewRejection"] = ref.ID
	}
	return refs
}
