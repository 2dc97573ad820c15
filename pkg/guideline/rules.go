package guideline

import "strings"

// RuleKind identifies the behaviour behind a rule label.
type RuleKind int

const (
	// RuleOpaque is a descriptive label with no processing behaviour.
	// Opaque labels round-trip verbatim and never alter output.
	RuleOpaque RuleKind = iota

	// RuleRemoveEmptyLines filters blank lines out of the cleaned output.
	// The normalizer already drops blank lines, so applying it there is a
	// no-op in practice; the label stays independently toggleable.
	RuleRemoveEmptyLines
)

// Rule is a parsed rule label.
type Rule struct {
	Kind  RuleKind
	Label string
}

// ParseRule maps a free-text label to its behaviour. Matching is by
// containment, mirroring the source system: any label mentioning
// "Remove empty lines" triggers the filter.
func ParseRule(label string) Rule {
	if strings.Contains(label, "Remove empty lines") {
		return Rule{Kind: RuleRemoveEmptyLines, Label: label}
	}
	return Rule{Kind: RuleOpaque, Label: label}
}

// ParseRules parses every label in order.
func ParseRules(labels []string) []Rule {
	rules := make([]Rule, len(labels))
	for i, label := range labels {
		rules[i] = ParseRule(label)
	}
	return rules
}

// Apply runs the guideline's rules over already-cleaned lines and returns
// the filtered lines along with the labels that actually did something.
func (g Guideline) Apply(lines []string) ([]string, []string) {
	var applied []string
	for _, rule := range ParseRules(g.Rules) {
		switch rule.Kind {
		case RuleRemoveEmptyLines:
			lines = removeEmptyLines(lines)
			applied = append(applied, rule.Label)
		case RuleOpaque:
			// Descriptive only.
		}
	}
	return lines, applied
}

func removeEmptyLines(lines []string) []string {
	kept := lines[:0:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}
