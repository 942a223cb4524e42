// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/hireplan/hireplan/internal/client"
	"github.com/hireplan/hireplan/internal/types"
	"github.com/hireplan/hireplan/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintValidationReport outputs every violation found in a validation pass,
// or a confirmation box when the posting is clean.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationReport(result *validation.Result) {
	if result == nil || result.Valid() {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ POSTING IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(result.Errors)))

	for i, err := range result.Errors {
		message := err.Message
		if len(message) > 50 {
			message = message[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", err.Path))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(result.Errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("VALIDATION ERRORS", sb.String())
}

// PrintPostingSummary outputs a human-readable summary of a posting.
func (p *Printer) PrintPostingSummary(posting *types.JobPosting) {
	if posting == nil {
		return
	}

	var sb strings.Builder

	if posting.ID != "" {
		sb.WriteString(fmt.Sprintf("ID:       %s\n", posting.ID))
	}
	sb.WriteString(fmt.Sprintf("Title:    %s\n", posting.BoardTitle))
	sb.WriteString(fmt.Sprintf("Internal: %s\n", posting.InternalTitle))
	if posting.WorkType != "" {
		sb.WriteString(fmt.Sprintf("Work:     %s\n", posting.WorkType))
	}
	if posting.PayRate != nil {
		sb.WriteString(fmt.Sprintf("Pay:      %s\n", formatPayRate(*posting.PayRate)))
	}
	sb.WriteString("\n")

	if len(posting.RequiredQualifications) > 0 {
		sb.WriteString("Required Qualifications:\n")
		count := min(len(posting.RequiredQualifications), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", posting.RequiredQualifications[i].Text))
		}
		if len(posting.RequiredQualifications) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(posting.RequiredQualifications)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(posting.CustomQuestions) > 0 {
		sb.WriteString(fmt.Sprintf("Pre-screening questions: %d\n", len(posting.CustomQuestions)))
	}

	if len(posting.Automation.SectionWeights) > 0 {
		sb.WriteString("Section Weights:\n")
		total := 0
		for _, key := range types.SectionKeys() {
			if weight, ok := posting.Automation.SectionWeights[key]; ok {
				sb.WriteString(fmt.Sprintf("  %s: %d%%\n", key, weight))
				total += weight
			}
		}
		sb.WriteString(fmt.Sprintf("  allocated: %d%%\n", total))
	}

	p.printBox("JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobPage outputs one page of a job listing.
func (p *Printer) PrintJobPage(page *client.JobPage) {
	if page == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Page %d of %d (%d total)\n\n", page.Page, page.TotalPages, page.Total))

	count := min(len(page.Jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := page.Jobs[i]
		sb.WriteString(fmt.Sprintf("#%s  %s\n", job.ID, job.BoardTitle))
	}
	if len(page.Jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more on this page", len(page.Jobs)-maxItemsToShow))
	}

	p.printBox("JOBS", sb.String())
}

// PrintMissingReferences outputs the unresolved references a preflight found.
func (p *Printer) PrintMissingReferences(missing []client.MissingReference) {
	if len(missing) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d unresolved references:\n\n", len(missing)))
	for _, ref := range missing {
		sb.WriteString(fmt.Sprintf("⚠ %s → %s\n", ref.Path, ref.ID))
	}

	p.printBox("MISSING REFERENCES", strings.TrimSuffix(sb.String(), "\n"))
}

// formatPayRate renders a pay rate for display.
func formatPayRate(rate types.PayRate) string {
	var base string
	switch rate.Type {
	case types.PayRateRange:
		base = fmt.Sprintf("%g-%g", rate.Min, rate.Max)
	case types.PayRateStarting:
		base = fmt.Sprintf("from %g", rate.Amount)
	case types.PayRateMaximum:
		base = fmt.Sprintf("up to %g", rate.Amount)
	case types.PayRateExact:
		base = fmt.Sprintf("%g", rate.Amount)
	default:
		return string(rate.Type)
	}
	if rate.Period != "" {
		return base + " " + string(rate.Period)
	}
	return base
}
