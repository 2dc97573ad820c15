// Package guideline models named cleaning presets: ordered lists of rule
// labels a user attaches to normalized output, plus the in-memory registry
// that stores them.
package guideline

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultName is the name of the guideline seeded into an empty registry.
const DefaultName = "기본"

// Guideline is a named cleaning preset.
type Guideline struct {
	Name        string   `json:"-" yaml:"-" validate:"required"`
	Description string   `json:"description" yaml:"description"`
	Rules       []string `json:"rules" yaml:"rules" validate:"required,min=1,dive,required"`
}

var validate = validator.New()

// Validate checks that the guideline is well-formed: a non-empty name and at
// least one non-empty rule label. Library callers may skip this; the CLI
// validates before upsert.
func (g Guideline) Validate() error {
	if err := validate.Struct(g); err != nil {
		return fmt.Errorf("invalid guideline %q: %w", g.Name, err)
	}
	return nil
}

// Default returns the seed guideline. Its rule labels mirror the fixed
// normalizer pipeline; only "Remove empty lines" carries separate behaviour.
func Default() Guideline {
	return Guideline{
		Name:        DefaultName,
		Description: "기본 텍스트 정리 규칙",
		Rules: []string{
			"Remove empty lines",
			"Remove YouTube links",
			"Trim whitespace",
			"Remove name emojis",
			"Unify date formats",
			"Unify time formats",
			"Convert weekdays",
			"Clean message format",
			"Clean special characters",
		},
	}
}
