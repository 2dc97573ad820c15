package ocr

import (
	"context"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Binary != "tesseract" {
		t.Errorf("Binary = %q, want %q", cfg.Binary, "tesseract")
	}
	if cfg.Languages != "kor+eng" {
		t.Errorf("Languages = %q, want %q", cfg.Languages, "kor+eng")
	}
}

func TestNew_NilConfigUsesDefault(t *testing.T) {
	p := New(nil)
	if p.config == nil {
		t.Fatal("nil config not replaced with default")
	}
	if p.config.Binary != "tesseract" {
		t.Errorf("Binary = %q, want %q", p.config.Binary, "tesseract")
	}
}

func TestAvailable_MissingBinary(t *testing.T) {
	p := New(&Config{Binary: "no-such-binary-anywhere", Languages: "kor+eng"})
	if p.Available() {
		t.Error("Available() = true for nonexistent binary")
	}
}

func TestExtractFile_MissingBinary(t *testing.T) {
	p := New(&Config{Binary: "no-such-binary-anywhere", Languages: "kor+eng"})
	if _, err := p.ExtractFile(context.Background(), "img.png"); err == nil {
		t.Error("ExtractFile() error = nil with missing binary, want error")
	}
}

func TestModes_Ladder(t *testing.T) {
	want := []mode{{1, 6}, {1, 3}, {1, 11}, {3, 6}, {3, 3}}
	if len(modes) != len(want) {
		t.Fatalf("len(modes) = %d, want %d", len(modes), len(want))
	}
	for i := range want {
		if modes[i] != want[i] {
			t.Errorf("modes[%d] = %+v, want %+v", i, modes[i], want[i])
		}
	}
}

func TestCharWhitelist(t *testing.T) {
	wl := charWhitelist()

	for _, want := range []string{"가-힣", "a-zA-Z0-9", "😀", "☀", "🌀"} {
		if !strings.Contains(wl, want) {
			t.Errorf("whitelist missing %q", want)
		}
	}
}
