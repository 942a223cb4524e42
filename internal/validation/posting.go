package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hireplan/hireplan/internal/types"
)

// Weekly hours bounds.
const (
	minWeeklyHours = 1
	maxWeeklyHours = 168
)

// structValidator evaluates the tag-level constraints declared on the model.
// It is configured once; validator instances cache struct metadata and are
// safe for concurrent use.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	// Report wire field names in error paths rather than Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidatePosting checks a complete posting before submission. It is total:
// every field is checked and every violation reported in a single pass, so
// the form layer can render the full error list. The posting is not mutated;
// re-validating an unchanged posting yields an identical result.
//
// Referential checks (does availabilityId or a template ID exist remotely)
// are deliberately absent; the remote API owns those at submission time.
func ValidatePosting(posting *types.JobPosting) Result {
	var res Result
	if posting == nil {
		res.add("", KindSchema, "posting is required")
		return res
	}

	res.append(structErrors(posting))

	if posting.PayType != "" && !types.ValidPayType(posting.PayType) {
		res.add("payType", KindSchema, "unknown pay type %q", string(posting.PayType))
	}
	if posting.PayRate != nil {
		res.append(validatePayRate("payRate", *posting.PayRate))
	}
	if posting.HoursPerWeek != nil {
		res.append(validateHoursPerWeek("hoursPerWeek", *posting.HoursPerWeek))
	}

	res.append(validateDates(posting))
	res.append(validateLocation(posting))
	res.append(validateQuestions("customQuestions", posting.CustomQuestions))
	res.append(ValidateAutomation(&posting.Automation))

	return res
}

// structErrors runs the tag-level validator and converts its findings into
// field errors keyed by wire path.
func structErrors(posting *types.JobPosting) Result {
	var res Result
	err := structValidator.Struct(posting)
	if err == nil {
		return res
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError only occurs for non-struct input, which
		// cannot happen here; report it rather than swallow it.
		res.add("", KindSchema, "invalid posting value: %v", err)
		return res
	}

	for _, fe := range fieldErrs {
		res.add(trimNamespace(fe.Namespace()), KindSchema, "%s", tagMessage(fe))
	}
	return res
}

// trimNamespace strips the root struct name from a validator namespace,
// turning "JobPosting.customQuestions[0].question" into
// "customQuestions[0].question".
func trimNamespace(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

// tagMessage renders a human-readable message for a tag violation.
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// validatePayRate checks the variant invariants of a pay rate.
func validatePayRate(path string, rate types.PayRate) Result {
	var res Result
	switch rate.Type {
	case types.PayRateRange:
		if rate.Min < 0 {
			res.add(path+".min", KindSchema, "must be non-negative, got %g", rate.Min)
		}
		if rate.Max < 0 {
			res.add(path+".max", KindSchema, "must be non-negative, got %g", rate.Max)
		}
		if rate.Min >= 0 && rate.Max >= 0 && rate.Max <= rate.Min {
			res.add(path, KindCrossField, "max (%g) must be greater than min (%g)", rate.Max, rate.Min)
		}
	case types.PayRateStarting, types.PayRateMaximum, types.PayRateExact:
		if rate.Amount < 0 {
			res.add(path+".amount", KindSchema, "must be non-negative, got %g", rate.Amount)
		}
	default:
		res.add(path+".type", KindSchema, "unknown pay rate type %q", string(rate.Type))
	}

	if rate.Period != "" && !types.ValidPayPeriod(rate.Period) {
		res.add(path+".period", KindSchema, "unknown pay period %q", string(rate.Period))
	}
	return res
}

// validateHoursPerWeek checks the variant invariants of a weekly-hours value.
func validateHoursPerWeek(path string, hours types.HoursPerWeek) Result {
	var res Result
	inRange := func(v float64) bool { return v >= minWeeklyHours && v <= maxWeeklyHours }

	switch hours.Type {
	case types.HoursRange:
		ok := true
		if !inRange(hours.Min) {
			res.add(path+".min", KindSchema, "must be between %d and %d, got %g", minWeeklyHours, maxWeeklyHours, hours.Min)
			ok = false
		}
		if !inRange(hours.Max) {
			res.add(path+".max", KindSchema, "must be between %d and %d, got %g", minWeeklyHours, maxWeeklyHours, hours.Max)
			ok = false
		}
		if ok && hours.Max <= hours.Min {
			res.add(path, KindCrossField, "max (%g) must be greater than min (%g)", hours.Max, hours.Min)
		}
	case types.HoursFixed, types.HoursMinimum, types.HoursMaximum:
		if !inRange(hours.Amount) {
			res.add(path+".amount", KindSchema, "must be between %d and %d, got %g", minWeeklyHours, maxWeeklyHours, hours.Amount)
		}
	default:
		res.add(path+".type", KindSchema, "unknown hours type %q", string(hours.Type))
	}
	return res
}

// validateDates enforces posting date ordering. The check is skipped when
// either date is absent or the posting runs indefinitely; in the indefinite
// case the end date is ignored by the scheduler entirely.
func validateDates(posting *types.JobPosting) Result {
	var res Result
	if posting.RunIndefinitely || posting.StartDate == nil || posting.EndDate == nil {
		return res
	}
	if !posting.EndDate.After(*posting.StartDate) {
		res.add("endDate", KindCrossField, "endDate must be after startDate")
	}
	return res
}

// validateLocation enforces the work type enum and the zip requirement for
// postings that have a physical presence.
func validateLocation(posting *types.JobPosting) Result {
	var res Result
	if posting.WorkType == "" {
		return res
	}
	if !types.ValidWorkType(posting.WorkType) {
		res.add("jobLocationWorkType", KindSchema, "unknown work type %q", string(posting.WorkType))
		return res
	}
	if posting.WorkType == types.WorkFullyRemote {
		return res
	}
	if posting.Location == nil || posting.Location.Zip == "" {
		res.add("jobLocation.zip", KindSchema, "zip code is required for %s postings", string(posting.WorkType))
	}
	return res
}

// validateQuestions enforces per-question rules beyond the tag constraints:
// a valid type enum, at least two options on select questions, and no blank
// option entries.
func validateQuestions(path string, questions []types.CustomQuestion) Result {
	var res Result
	for i, question := range questions {
		questionPath := indexedPath(path, i)
		if question.Type != "" && !types.ValidQuestionType(question.Type) {
			res.add(questionPath+".type", KindSchema, "unknown question type %q", string(question.Type))
			continue
		}
		if question.Type == types.QuestionSelect && len(question.Options) < 2 {
			res.add(questionPath+".options", KindSchema, "select questions need at least 2 options, got %d", len(question.Options))
		}
		for j, option := range question.Options {
			if strings.TrimSpace(option) == "" {
				res.add(indexedPath(questionPath+".options", j), KindSchema, "option text cannot be empty")
			}
		}
	}
	return res
}
