package plate

import "strings"

// CorrectionRule replaces every non-overlapping occurrence of Pattern with
// Replacement. Matching is literal; there are no regex semantics.
type CorrectionRule struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
}

// DefaultCorrections returns the built-in misread fixes in application order.
func DefaultCorrections() []CorrectionRule {
	return []CorrectionRule{
		{Pattern: "ICL", Replacement: "1CL"},
		{Pattern: "ZG", Replacement: "26"},
		{Pattern: "AG", Replacement: "46"},
		{Pattern: "I2", Replacement: "12"},
		{Pattern: "cQ", Replacement: "CQ"},
	}
}

// Corrector applies an ordered list of correction rules.
type Corrector struct {
	rules []CorrectionRule
}

// NewCorrector copies rules so later changes to the caller's slice do not
// leak into the corrector.
func NewCorrector(rules []CorrectionRule) Corrector {
	return Corrector{rules: append([]CorrectionRule(nil), rules...)}
}

// Correct runs every rule once, in order, over the progressively rewritten
// text. A later rule sees text introduced by earlier rules. Rules with an
// empty pattern are ignored.
func (c Corrector) Correct(text string) string {
	for _, r := range c.rules {
		if r.Pattern == "" {
			continue
		}
		text = strings.ReplaceAll(text, r.Pattern, r.Replacement)
	}
	return text
}

// Rules returns a copy of the rules in application order.
func (c Corrector) Rules() []CorrectionRule {
	return append([]CorrectionRule(nil), c.rules...)
}
