// Package ocr extracts text from chat screenshots by shelling out to the
// tesseract binary. Several engine/segmentation configurations are tried
// and the longest non-empty result wins; messenger screenshots vary enough
// that no single page-segmentation mode is reliable on its own.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hyunjae-lee/chatclean/internal/logger"
)

// Config configures the tesseract invocation.
type Config struct {
	// Binary is the tesseract executable name or path.
	Binary string

	// Languages is the tesseract -l argument.
	Languages string
}

// DefaultConfig returns the configuration tuned for Korean chat
// screenshots: Korean plus English, default binary from PATH.
func DefaultConfig() *Config {
	return &Config{
		Binary:    "tesseract",
		Languages: "kor+eng",
	}
}

// Processor runs tesseract over image files.
type Processor struct {
	config *Config
}

// New creates a Processor. A nil config uses DefaultConfig.
func New(config *Config) *Processor {
	if config == nil {
		config = DefaultConfig()
	}
	return &Processor{config: config}
}

// Available reports whether the tesseract binary can be found.
func (p *Processor) Available() bool {
	_, err := exec.LookPath(p.config.Binary)
	return err == nil
}

// mode is one engine/segmentation combination to try.
type mode struct {
	oem int
	psm int
}

// modes is the fixed configuration ladder, in trial order.
var modes = []mode{
	{1, 6},
	{1, 3},
	{1, 11},
	{3, 6},
	{3, 3},
}

// ExtractFile runs the configuration ladder over the image at path and
// returns the longest non-empty result. An empty string with nil error
// means tesseract ran but recognized nothing.
func (p *Processor) ExtractFile(ctx context.Context, path string) (string, error) {
	if _, err := exec.LookPath(p.config.Binary); err != nil {
		return "", fmt.Errorf("tesseract not available: %w", err)
	}

	var best string
	var lastErr error
	for _, m := range modes {
		text, err := p.runOnce(ctx, path, m)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			logger.Debug("ocr pass failed", "oem", m.oem, "psm", m.psm, "error", err)
			lastErr = err
			continue
		}
		if len(text) > len(best) {
			best = text
		}
	}
	if best == "" && lastErr != nil {
		return "", fmt.Errorf("ocr failed: %w", lastErr)
	}
	return best, nil
}

func (p *Processor) runOnce(ctx context.Context, path string, m mode) (string, error) {
	args := []string{
		path, "stdout",
		"-l", p.config.Languages,
		"--oem", fmt.Sprintf("%d", m.oem),
		"--psm", fmt.Sprintf("%d", m.psm),
		"-c", "tessedit_char_whitelist=" + charWhitelist(),
		"-c", "preserve_interword_spaces=1",
	}
	cmd := exec.CommandContext(ctx, p.config.Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// charWhitelist builds the recognition whitelist: Hangul, jamo, ASCII, and
// the emoji blocks that show up in chat logs.
func charWhitelist() string {
	var sb strings.Builder
	sb.WriteString("가-힣ㄱ-ㅎㅏ-ㅣ")
	sb.WriteString("a-zA-Z0-9")
	sb.WriteString("!@#$%^&*()_+-=[]{}|;':\",./<>?`~ ")
	for _, r := range emojiRanges {
		for c := r.lo; c <= r.hi; c++ {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// emojiRanges are the emoji blocks included in the whitelist.
var emojiRanges = []struct {
	lo, hi rune
}{
	{0x1F600, 0x1F64F}, // emoticons
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x1F300, 0x1F3FF}, // symbols and pictographs
}
