package guideline

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	g := Default()

	if g.Name != "기본" {
		t.Errorf("Default().Name = %q, want %q", g.Name, "기본")
	}
	if len(g.Rules) != 9 {
		t.Fatalf("Default() has %d rules, want 9", len(g.Rules))
	}
	if g.Rules[0] != "Remove empty lines" {
		t.Errorf("first rule = %q, want %q", g.Rules[0], "Remove empty lines")
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		g       Guideline
		wantErr bool
	}{
		{"valid", Guideline{Name: "x", Description: "d", Rules: []string{"r1"}}, false},
		{"missing_name", Guideline{Rules: []string{"r1"}}, true},
		{"no_rules", Guideline{Name: "x"}, true},
		{"empty_rule_label", Guideline{Name: "x", Rules: []string{""}}, true},
		{"empty_description_ok", Guideline{Name: "x", Rules: []string{"r1"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		label    string
		wantKind RuleKind
	}{
		{"Remove empty lines", RuleRemoveEmptyLines},
		{"Remove empty lines (strict)", RuleRemoveEmptyLines},
		{"Remove YouTube links", RuleOpaque},
		{"내가 만든 규칙", RuleOpaque},
		{"", RuleOpaque},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			rule := ParseRule(tt.label)
			if rule.Kind != tt.wantKind {
				t.Errorf("ParseRule(%q).Kind = %v, want %v", tt.label, rule.Kind, tt.wantKind)
			}
			if rule.Label != tt.label {
				t.Errorf("ParseRule(%q).Label = %q, labels must round-trip verbatim", tt.label, rule.Label)
			}
		})
	}
}

func TestApply_RemoveEmptyLines(t *testing.T) {
	g := Guideline{
		Name:  "x",
		Rules: []string{"Remove empty lines", "Some opaque label"},
	}

	lines := []string{"a", "", "  ", "b"}
	got, applied := g.Apply(lines)

	want := []string{"a", "b"}
	if len(got) != len(want) {
		t.Fatalf("Apply() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	if len(applied) != 1 || applied[0] != "Remove empty lines" {
		t.Errorf("applied = %q, want [\"Remove empty lines\"]", applied)
	}
}

func TestApply_OpaqueRulesNeverAlterLines(t *testing.T) {
	g := Guideline{
		Name:  "x",
		Rules: []string{"Unify date formats", "Convert weekdays", "뭔가 다른 것"},
	}

	lines := []string{"a", "", "b"}
	got, applied := g.Apply(lines)

	if strings.Join(got, "|") != strings.Join(lines, "|") {
		t.Errorf("Apply() = %q, want unchanged %q", got, lines)
	}
	if len(applied) != 0 {
		t.Errorf("applied = %q, want none", applied)
	}
}

// The normalizer already drops blank lines, so applying the filter to its
// output must be a no-op.
func TestApply_RedundantOnBlankFreeInput(t *testing.T) {
	g := Default()
	lines := []string{"a", "b", "c"}

	got, _ := g.Apply(lines)
	if strings.Join(got, "|") != "a|b|c" {
		t.Errorf("Apply() = %q, want unchanged", got)
	}
}
