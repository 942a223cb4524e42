// Package templates renders the lifecycle email templates referenced by a
// posting. Templates use {{variable}} placeholders filled from candidate and
// posting data at send time; this package substitutes values and reports
// placeholders a caller failed to provide.
package templates

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {{variable}} with optional inner whitespace.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// StandardVariables lists the placeholders the HirePlan backend populates
// for lifecycle emails. Custom templates may reference any subset.
var StandardVariables = []string{
	"candidateFirstName",
	"candidateLastName",
	"jobTitle",
	"companyName",
	"interviewDate",
	"interviewTime",
	"schedulingLink",
}

// Render substitutes placeholders in template with values from vars.
// Placeholders without a matching entry are left in place so Missing can
// report them.
func Render(template string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderName(match)
		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}

// Variables returns the distinct placeholder names in template, in order of
// first appearance.
func Variables(template string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, match := range placeholderPattern.FindAllString(template, -1) {
		name := placeholderName(match)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// Missing returns the placeholders in template that vars does not cover.
func Missing(template string, vars map[string]string) []string {
	var missing []string
	for _, name := range Variables(template) {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// placeholderName extracts the variable name from a matched placeholder.
func placeholderName(match string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(match, "{{"), "}}")
	return strings.TrimSpace(inner)
}
