package validation

import (
	"sort"

	"github.com/hireplan/hireplan/internal/types"
)

// WeightReport is the outcome of validating section weights, including the
// computed total so callers can display remaining allocation.
type WeightReport struct {
	Result
	TotalWeight int
}

// ValidateSectionWeights checks the per-section weight allocation. The four
// weights may total less than 100 while a posting is being drafted; only
// over-allocation is rejected. Weights are integers, so a total of 101 fails
// outright with no epsilon tolerance.
func ValidateSectionWeights(weights map[types.SectionKey]int) WeightReport {
	var report WeightReport
	report.append(validateSectionWeights("sectionWeights", weights, &report.TotalWeight))
	return report
}

// ValidateAcceptanceThreshold checks a legacy whole-posting threshold.
func ValidateAcceptanceThreshold(value int) Result {
	var res Result
	if value < 0 || value > 100 {
		res.add("acceptanceThreshold", KindSchema, "must be between 0 and 100, got %d", value)
	}
	return res
}

// ValidateAutomation checks a complete automation configuration in isolation,
// with error paths rooted at "automation". The creation and edit flows both
// run it as part of full posting validation.
func ValidateAutomation(automation *types.Automation) Result {
	var res Result
	if automation == nil {
		return res
	}

	var total int
	res.append(validateSectionWeights("automation.sectionWeights", automation.SectionWeights, &total))

	res.append(validateSectionThresholds("automation.sectionThresholds", automation.SectionThresholds))

	res.append(validateExactScoring("automation.preferredQualScoring", automation.PreferredQualScoring))
	res.append(validateExactScoring("automation.resumeItemScoring", automation.ResumeItemScoring))

	res.append(validateLegacyThreshold("automation.acceptanceThreshold", automation.AcceptanceThreshold))
	res.append(validateLegacyThreshold("automation.manualReviewThreshold", automation.ManualReviewThreshold))
	res.append(validateLegacyThreshold("automation.autoRejectThreshold", automation.AutoRejectThreshold))

	res.append(validateJobRules("automation.jobRules", automation.JobRules))

	return res
}

// validateSectionWeights sums the section weights into total and reports
// unknown sections, out-of-range weights, and over-allocation.
func validateSectionWeights(path string, weights map[types.SectionKey]int, total *int) Result {
	var res Result
	for _, key := range sortedSectionKeys(weights) {
		weight := weights[key]
		if !types.ValidSectionKey(key) {
			res.add(path+"."+string(key), KindSchema, "unknown scoring section %q", string(key))
			continue
		}
		if weight < 0 || weight > 100 {
			res.add(path+"."+string(key), KindSchema, "weight must be between 0 and 100, got %d", weight)
			continue
		}
		*total += weight
	}
	if *total > 100 {
		res.add(path, KindCrossField, "section weights total %d%%, the combined weight cannot exceed 100%%", *total)
	}
	return res
}

// validateSectionThresholds checks ranges and the autoReject < manualReview
// ordering for every configured section.
func validateSectionThresholds(path string, thresholds map[types.SectionKey]types.SectionThreshold) Result {
	var res Result
	for _, key := range sortedSectionKeys(thresholds) {
		threshold := thresholds[key]
		sectionPath := path + "." + string(key)
		if !types.ValidSectionKey(key) {
			res.add(sectionPath, KindSchema, "unknown scoring section %q", string(key))
			continue
		}
		inRange := true
		if threshold.AutoReject < 0 || threshold.AutoReject > 100 {
			res.add(sectionPath+".autoReject", KindSchema, "must be between 0 and 100, got %d", threshold.AutoReject)
			inRange = false
		}
		if threshold.ManualReview < 0 || threshold.ManualReview > 100 {
			res.add(sectionPath+".manualReview", KindSchema, "must be between 0 and 100, got %d", threshold.ManualReview)
			inRange = false
		}
		if inRange && threshold.AutoReject >= threshold.ManualReview {
			res.add(sectionPath, KindCrossField,
				"autoReject (%d) must be less than manualReview (%d)", threshold.AutoReject, threshold.ManualReview)
		}
	}
	return res
}

// validateExactScoring checks a per-item scoring map. An empty map is valid;
// a non-empty map must allocate exactly 100 across its items.
func validateExactScoring(path string, scoring map[string]int) Result {
	var res Result
	if len(scoring) == 0 {
		return res
	}

	total := 0
	for _, id := range sortedKeys(scoring) {
		weight := scoring[id]
		if weight < 0 || weight > 100 {
			res.add(path+"."+id, KindSchema, "weight must be between 0 and 100, got %d", weight)
			continue
		}
		total += weight
	}
	if total != 100 {
		res.add(path, KindCrossField, "item weights total %d%%, must total exactly 100%%", total)
	}
	return res
}

// validateLegacyThreshold checks an optional scalar threshold; nil means the
// posting predates the field and is left alone.
func validateLegacyThreshold(path string, value *int) Result {
	var res Result
	if value == nil {
		return res
	}
	if *value < 0 || *value > 100 {
		res.add(path, KindSchema, "must be between 0 and 100, got %d", *value)
	}
	return res
}

// validateJobRules checks rule enums and the template requirement of the
// send-template action.
func validateJobRules(path string, rules []types.JobRule) Result {
	var res Result
	sectionCount := len(types.SectionKeys())
	for i, rule := range rules {
		rulePath := indexedPath(path, i)
		if rule.SectionCount < 0 || rule.SectionCount > sectionCount {
			res.add(rulePath+".sectionCount", KindSchema, "must be between 0 and %d, got %d", sectionCount, rule.SectionCount)
		}
		if !types.ValidRuleStatus(rule.Status) {
			res.add(rulePath+".status", KindSchema, "unknown rule status %q", string(rule.Status))
		}
		if !types.ValidRuleAction(rule.Action) {
			res.add(rulePath+".action", KindSchema, "unknown rule action %q", string(rule.Action))
		}
		if rule.Action == types.ActionSendTemplate && rule.Template == "" {
			res.add(rulePath+".template", KindCrossField, "template is required for the send-template action")
		}
	}
	return res
}

// sortedSectionKeys returns map keys in a deterministic order so repeated
// validation of the same input yields identically ordered errors.
func sortedSectionKeys[V any](m map[types.SectionKey]V) []types.SectionKey {
	keys := make([]types.SectionKey, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
