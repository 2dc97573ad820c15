package input

import (
	"strings"
	"testing"
)

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"full_document", "<!DOCTYPE html><html><body>hi</body></html>", true},
		{"fragment", "<div>안녕</div>", true},
		{"paragraphs", "  <p>hello</p>", true},
		{"plain_text", "그냥 채팅 텍스트", false},
		{"angle_bracket_text", "<3 사랑해", false},
		{"empty", "", false},
		{"time_expression", "3 < 5 인가요", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeHTML(tt.input); got != tt.want {
				t.Errorf("LooksLikeHTML(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		contains []string
		excludes []string
	}{
		{
			name:     "paragraphs_become_lines",
			html:     "<html><body><p>첫 줄</p><p>둘째 줄</p></body></html>",
			contains: []string{"첫 줄", "둘째 줄"},
			excludes: []string{"<p>", "</p>"},
		},
		{
			name:     "script_and_style_dropped",
			html:     "<html><body><script>alert(1)</script><style>.x{}</style><p>내용</p></body></html>",
			contains: []string{"내용"},
			excludes: []string{"alert", ".x{}"},
		},
		{
			name:     "br_breaks_line",
			html:     "<div>위<br>아래</div>",
			contains: []string{"위", "아래"},
		},
		{
			name:     "list_items_separate",
			html:     "<ul><li>하나</li><li>둘</li></ul>",
			contains: []string{"하나", "둘"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Flatten(tt.html)
			if err != nil {
				t.Fatalf("Flatten() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Flatten() = %q, want it to contain %q", got, want)
				}
			}
			for _, not := range tt.excludes {
				if strings.Contains(got, not) {
					t.Errorf("Flatten() = %q, must not contain %q", got, not)
				}
			}
		})
	}
}

// Elements on separate lines must not merge into one line.
func TestFlatten_LineSeparation(t *testing.T) {
	got, err := Flatten("<div>위</div><div>아래</div>")
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}

	var lines []string
	for _, line := range strings.Split(got, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	if len(lines) != 2 || lines[0] != "위" || lines[1] != "아래" {
		t.Errorf("Flatten() lines = %q, want [위 아래]", lines)
	}
}
