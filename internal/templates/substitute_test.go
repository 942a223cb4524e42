package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const scheduleTemplate = `Hi {{candidateFirstName}},

Thanks for applying to the {{jobTitle}} role at {{companyName}}.
Pick an interview slot here: {{ schedulingLink }}.

Best,
{{companyName}} Hiring`

func TestRender_SubstitutesAllVariables(t *testing.T) {
	rendered := Render(scheduleTemplate, map[string]string{
		"candidateFirstName": "Sam",
		"jobTitle":           "Line Cook",
		"companyName":        "Cedar Kitchen",
		"schedulingLink":     "https://hireplan.example/s/abc",
	})

	assert.Contains(t, rendered, "Hi Sam,")
	assert.Contains(t, rendered, "the Line Cook role at Cedar Kitchen")
	assert.Contains(t, rendered, "https://hireplan.example/s/abc")
	assert.NotContains(t, rendered, "{{")
}

func TestRender_LeavesUnknownPlaceholders(t *testing.T) {
	rendered := Render("Hello {{candidateFirstName}}", nil)
	assert.Equal(t, "Hello {{candidateFirstName}}", rendered)
}

func TestRender_WhitespaceInsidePlaceholder(t *testing.T) {
	rendered := Render("See you {{ interviewDate }} at {{interviewTime}}", map[string]string{
		"interviewDate": "March 5",
		"interviewTime": "2pm",
	})
	assert.Equal(t, "See you March 5 at 2pm", rendered)
}

func TestVariables_DistinctInOrder(t *testing.T) {
	assert.Equal(t, []string{"candidateFirstName", "jobTitle", "companyName", "schedulingLink"},
		Variables(scheduleTemplate))
}

func TestVariables_NoPlaceholders(t *testing.T) {
	assert.Empty(t, Variables("plain text email"))
}

func TestMissing(t *testing.T) {
	missing := Missing(scheduleTemplate, map[string]string{
		"candidateFirstName": "Sam",
		"companyName":        "Cedar Kitchen",
	})
	assert.Equal(t, []string{"jobTitle", "schedulingLink"}, missing)
}
