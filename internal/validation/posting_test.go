package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireplan/hireplan/internal/types"
)

// validPosting builds a posting that passes validation; tests mutate single
// fields to isolate each rule.
func validPosting() *types.JobPosting {
	posting := types.NewJobPosting()
	posting.InternalTitle = "Line Cook - Downtown"
	posting.BoardTitle = "Line Cook"
	posting.Description = "Prepare menu items to spec during lunch and dinner service."
	posting.PayType = types.PayTypeHourly
	rate := types.NewRangePayRate(18, 24, types.PerHour)
	posting.PayRate = &rate
	hours := types.NewHoursRange(25, 40)
	posting.HoursPerWeek = &hours
	start := types.NewDate(2024, time.January, 1)
	end := types.NewDate(2024, time.February, 1)
	posting.StartDate = &start
	posting.EndDate = &end
	posting.WorkType = types.WorkInPerson
	posting.Location = &types.JobLocation{City: "Portland", State: "OR", Zip: "97201"}
	posting.AvailabilityID = "avail-123"
	return posting
}

func TestValidatePosting_ValidPostingPasses(t *testing.T) {
	res := ValidatePosting(validPosting())
	assert.True(t, res.Valid(), "expected no errors, got: %v", res.Errors)
}

func TestValidatePosting_NilPosting(t *testing.T) {
	res := ValidatePosting(nil)
	assert.False(t, res.Valid())
}

func TestValidatePosting_RequiredFields(t *testing.T) {
	posting := validPosting()
	posting.InternalTitle = ""
	posting.AvailabilityID = ""

	res := ValidatePosting(posting)

	byPath := res.ByPath()
	assert.Contains(t, byPath, "internalTitle")
	assert.Contains(t, byPath, "availabilityId")
}

func TestValidatePosting_FieldLengths(t *testing.T) {
	posting := validPosting()
	posting.BoardTitle = strings.Repeat("x", 61)
	posting.Description = "too short"

	res := ValidatePosting(posting)

	byPath := res.ByPath()
	assert.Contains(t, byPath, "boardTitle")
	assert.Contains(t, byPath, "description")
}

func TestValidatePosting_TagMessagesRenderVerbatim(t *testing.T) {
	posting := validPosting()
	posting.BoardTitle = strings.Repeat("x", 61)
	posting.Description = "too short"

	byPath := ValidatePosting(posting).ByPath()

	// Messages pass through formatting untouched, with no stray verbs.
	assert.Equal(t, []string{"must be at most 60 characters"}, byPath["boardTitle"])
	assert.Equal(t, []string{"must be at least 20 characters"}, byPath["description"])
}

func TestValidatePosting_PayRateRangeOrdering(t *testing.T) {
	tests := []struct {
		name  string
		rate  types.PayRate
		valid bool
	}{
		{"max above min", types.NewRangePayRate(50000, 70000, types.PerYear), true},
		{"max below min", types.NewRangePayRate(70000, 50000, types.PerYear), false},
		{"max equals min", types.NewRangePayRate(50000, 50000, types.PerYear), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posting := validPosting()
			posting.PayRate = &tt.rate

			res := ValidatePosting(posting)
			assert.Equal(t, tt.valid, res.Valid())
			if !tt.valid {
				assert.Contains(t, res.ByPath(), "payRate")
			}
		})
	}
}

func TestValidatePosting_PayRateNegativeAmount(t *testing.T) {
	posting := validPosting()
	rate := types.NewExactPayRate(-5, types.PerHour)
	posting.PayRate = &rate

	res := ValidatePosting(posting)
	assert.Contains(t, res.ByPath(), "payRate.amount")
}

func TestValidatePosting_PayRateUnknownType(t *testing.T) {
	posting := validPosting()
	posting.PayRate = &types.PayRate{Type: "negotiable"}

	res := ValidatePosting(posting)
	assert.Contains(t, res.ByPath(), "payRate.type")
}

func TestValidatePosting_HoursBounds(t *testing.T) {
	tests := []struct {
		name  string
		hours types.HoursPerWeek
		paths []string
	}{
		{"fixed above week length", types.NewFixedHours(169), []string{"hoursPerWeek.amount"}},
		{"fixed below one", types.NewFixedHours(0), []string{"hoursPerWeek.amount"}},
		{"range inverted", types.NewHoursRange(40, 25), []string{"hoursPerWeek"}},
		{"range out of bounds", types.NewHoursRange(0, 200), []string{"hoursPerWeek.min", "hoursPerWeek.max"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posting := validPosting()
			posting.HoursPerWeek = &tt.hours

			res := ValidatePosting(posting)
			byPath := res.ByPath()
			for _, path := range tt.paths {
				assert.Contains(t, byPath, path)
			}
		})
	}
}

func TestValidatePosting_DateOrdering(t *testing.T) {
	start := types.NewDate(2024, time.January, 1)

	tests := []struct {
		name  string
		end   types.Date
		valid bool
	}{
		{"end after start", types.NewDate(2024, time.February, 1), true},
		{"end equals start", start, false},
		{"end before start", types.NewDate(2023, time.December, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posting := validPosting()
			posting.StartDate = &start
			posting.EndDate = &tt.end

			res := ValidatePosting(posting)
			assert.Equal(t, tt.valid, res.Valid())
			if !tt.valid {
				assert.Contains(t, res.ByPath(), "endDate")
			}
		})
	}
}

func TestValidatePosting_DateOrderingSkippedWhenIndefinite(t *testing.T) {
	posting := validPosting()
	start := types.NewDate(2024, time.February, 1)
	end := types.NewDate(2024, time.January, 1)
	posting.StartDate = &start
	posting.EndDate = &end
	posting.RunIndefinitely = true

	res := ValidatePosting(posting)
	assert.True(t, res.Valid(), "indefinite postings skip date ordering: %v", res.Errors)
}

func TestValidatePosting_DateOrderingSkippedWhenAbsent(t *testing.T) {
	posting := validPosting()
	posting.EndDate = nil

	res := ValidatePosting(posting)
	assert.True(t, res.Valid())
}

func TestValidatePosting_ZipRequiredForPhysicalWork(t *testing.T) {
	tests := []struct {
		name     string
		workType types.WorkType
		needsZip bool
	}{
		{"in-person", types.WorkInPerson, true},
		{"hybrid", types.WorkHybrid, true},
		{"on-the-road", types.WorkOnTheRoad, true},
		{"fully-remote", types.WorkFullyRemote, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posting := validPosting()
			posting.WorkType = tt.workType
			posting.Location = nil

			res := ValidatePosting(posting)
			if tt.needsZip {
				assert.Contains(t, res.ByPath(), "jobLocation.zip")
			} else {
				assert.True(t, res.Valid(), "remote postings need no zip: %v", res.Errors)
			}
		})
	}
}

func TestValidatePosting_UnknownWorkType(t *testing.T) {
	posting := validPosting()
	posting.WorkType = "offshore"

	res := ValidatePosting(posting)
	assert.Contains(t, res.ByPath(), "jobLocationWorkType")
}

func TestValidatePosting_SelectQuestionsNeedTwoOptions(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		valid   bool
	}{
		{"no options", nil, false},
		{"one option", []string{"Lunch"}, false},
		{"two options", []string{"Lunch", "Dinner"}, true},
		{"three options", []string{"Lunch", "Dinner", "Late night"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posting := validPosting()
			question := types.NewCustomQuestion(types.QuestionSelect, "Which shifts can you work?")
			question.Options = tt.options
			posting.CustomQuestions = []types.CustomQuestion{question}

			res := ValidatePosting(posting)
			assert.Equal(t, tt.valid, res.Valid())
			if !tt.valid {
				assert.Contains(t, res.ByPath(), "customQuestions[0].options")
			}
		})
	}
}

func TestValidatePosting_BlankOptionEntries(t *testing.T) {
	posting := validPosting()
	question := types.NewCustomQuestion(types.QuestionSelect, "Which shifts can you work?")
	question.Options = []string{"Lunch", "   "}
	posting.CustomQuestions = []types.CustomQuestion{question}

	res := ValidatePosting(posting)
	assert.Contains(t, res.ByPath(), "customQuestions[0].options[1]")
}

func TestValidatePosting_QuestionMissingText(t *testing.T) {
	posting := validPosting()
	posting.CustomQuestions = []types.CustomQuestion{{ID: "q1", Type: types.QuestionBoolean}}

	res := ValidatePosting(posting)
	assert.Contains(t, res.ByPath(), "customQuestions[0].question")
}

func TestValidatePosting_QualificationScoreRange(t *testing.T) {
	posting := validPosting()
	posting.PreferredQualifications = []types.Qualification{{Text: "ServSafe certified", Score: 120}}

	res := ValidatePosting(posting)
	assert.Contains(t, res.ByPath(), "preferredQualifications[0].score")
}

func TestValidatePosting_NegativeBudget(t *testing.T) {
	posting := validPosting()
	budget := -10.0
	posting.DailyBudget = &budget

	res := ValidatePosting(posting)
	assert.Contains(t, res.ByPath(), "dailyBudget")
}

func TestValidatePosting_CollectsAllErrorsInOnePass(t *testing.T) {
	posting := validPosting()
	posting.InternalTitle = ""
	rate := types.NewRangePayRate(70000, 50000, types.PerYear)
	posting.PayRate = &rate
	end := types.NewDate(2023, time.December, 1)
	posting.EndDate = &end
	posting.Automation.SectionWeights = map[types.SectionKey]int{
		types.SectionResume:                 60,
		types.SectionRequiredQualifications: 60,
	}

	res := ValidatePosting(posting)

	byPath := res.ByPath()
	assert.Contains(t, byPath, "internalTitle")
	assert.Contains(t, byPath, "payRate")
	assert.Contains(t, byPath, "endDate")
	assert.Contains(t, byPath, "automation.sectionWeights")
	require.GreaterOrEqual(t, len(res.Errors), 4)
}

func TestValidatePosting_Idempotent(t *testing.T) {
	posting := validPosting()
	posting.Automation.PreferredQualScoring = map[string]int{"a": 60, "b": 30}

	before := *posting
	first := ValidatePosting(posting)
	second := ValidatePosting(posting)

	assert.Equal(t, first, second)
	// The validator performs no hidden mutation.
	assert.Equal(t, before, *posting)
}

func TestResult_ByPath(t *testing.T) {
	var res Result
	assert.Nil(t, res.ByPath())

	res.add("boardTitle", KindSchema, "is required")
	res.add("boardTitle", KindSchema, "must be at most 60 characters")

	assert.Equal(t, map[string][]string{
		"boardTitle": {"is required", "must be at most 60 characters"},
	}, res.ByPath())
}
