// Package normalizer implements the chat-log cleaning pipeline.
// It applies an ordered chain of deterministic text transformations to each
// line of pasted messenger output: bracket stripping, Korean date/time
// unification, weekday reordering, YouTube link removal, and phrase cleanup.
package normalizer

import (
	"strings"
	"time"
)

// Result holds the cleaned lines and the metrics collected while cleaning.
type Result struct {
	// Lines contains every line that survived cleaning, in input order.
	// Blank lines (before or after transformation) are dropped.
	Lines []string `json:"lines" yaml:"lines"`

	// LinksRemoved counts YouTube links removed across all lines.
	LinksRemoved int `json:"links_removed" yaml:"links_removed"`
}

// Text joins the cleaned lines back into a single block.
func (r Result) Text() string {
	return strings.Join(r.Lines, "\n")
}

// Normalizer runs the fixed cleaning pipeline. The zero value is not usable;
// construct with New.
type Normalizer struct {
	now func() time.Time
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithNow overrides the clock used for today-date injection.
// Intended for tests that need a stable date.
func WithNow(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name returns the normalizer name for logging.
func (n *Normalizer) Name() string {
	return "chatclean"
}

// Steps returns the names of the pipeline steps in execution order.
func (n *Normalizer) Steps() []string {
	names := make([]string, len(pipeline))
	for i, s := range pipeline {
		names[i] = s.name
	}
	return names
}

// Process cleans a multi-line block of raw text. It is a total function:
// any input produces a Result, never an error. Lines that are blank on
// input, or collapse to blank during cleaning, are discarded.
func (n *Normalizer) Process(text string) Result {
	var result Result
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cleaned, links := n.CleanLine(line)
		result.LinksRemoved += links
		if strings.TrimSpace(cleaned) == "" {
			continue
		}
		result.Lines = append(result.Lines, cleaned)
	}
	return result
}

// CleanLine runs a single line through the full step chain and reports the
// number of links removed from it. A blank line comes back empty untouched.
func (n *Normalizer) CleanLine(line string) (string, int) {
	if strings.TrimSpace(line) == "" {
		return "", 0
	}
	var links int
	for _, s := range pipeline {
		var removed int
		line, removed = s.apply(n, line)
		links += removed
	}
	return line, links
}
