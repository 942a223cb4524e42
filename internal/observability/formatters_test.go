package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hireplan/hireplan/internal/client"
	"github.com/hireplan/hireplan/internal/types"
	"github.com/hireplan/hireplan/internal/validation"
)

func TestPrintValidationReport_Valid(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintValidationReport(&validation.Result{})

	assert.Contains(t, buf.String(), "POSTING IS VALID")
}

func TestPrintValidationReport_ListsErrors(t *testing.T) {
	result := &validation.Result{Errors: []validation.FieldError{
		{Path: "boardTitle", Kind: validation.KindSchema, Message: "is required"},
		{Path: "endDate", Kind: validation.KindCrossField, Message: "endDate must be after startDate"},
	}}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintValidationReport(result)

	out := buf.String()
	assert.Contains(t, out, "Found 2 problems")
	assert.Contains(t, out, "boardTitle")
	assert.Contains(t, out, "endDate")
}

func TestPrintPostingSummary(t *testing.T) {
	posting := types.NewJobPosting()
	posting.ID = "job-42"
	posting.BoardTitle = "Line Cook"
	posting.InternalTitle = "Line Cook - Downtown"
	rate := types.NewRangePayRate(18, 24, types.PerHour)
	posting.PayRate = &rate
	posting.Automation.SectionWeights = map[types.SectionKey]int{
		types.SectionResume: 40,
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintPostingSummary(posting)

	out := buf.String()
	assert.Contains(t, out, "job-42")
	assert.Contains(t, out, "Line Cook")
	assert.Contains(t, out, "18-24 per-hour")
	assert.Contains(t, out, "allocated: 40%")
}

func TestPrintPostingSummary_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPostingSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintJobPage(t *testing.T) {
	page := &client.JobPage{
		Jobs: []types.JobPosting{
			{ID: "job-1", BoardTitle: "Line Cook"},
			{ID: "job-2", BoardTitle: "Sous Chef"},
		},
		Page:       1,
		TotalPages: 1,
		Total:      2,
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobPage(page)

	out := buf.String()
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, "Sous Chef")
}

func TestPrintMissingReferences(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMissingReferences(nil)
	assert.Empty(t, buf.String())

	printer.PrintMissingReferences([]client.MissingReference{
		{Path: "availabilityId", ID: "avail-404"},
	})
	assert.Contains(t, buf.String(), "avail-404")
}
