package layout

import (
	"strings"
	"testing"

	"github.com/kk-code-lab/mdview/internal/textutil"
)

func plainSpans(text string) []Span {
	return []Span{{Text: text, Style: StylePlain}}
}

func lineText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestWrapSpansBreaksAtWordBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected []string
	}{
		{
			name:     "simple wrap",
			input:    "one two three four",
			width:    10,
			expected: []string{"one two", "three four"},
		},
		{
			name:     "fits on one line",
			input:    "short text",
			width:    20,
			expected: []string{"short text"},
		},
		{
			name:     "exact width",
			input:    "abcde fghij",
			width:    5,
			expected: []string{"abcde", "fghij"},
		},
		{
			name:     "single word",
			input:    "word",
			width:    10,
			expected: []string{"word"},
		},
		{
			name:     "collapses break spaces",
			input:    "aa bb cc",
			width:    2,
			expected: []string{"aa", "bb", "cc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := wrapSpans(plainSpans(tt.input), tt.width)
			if len(lines) != len(tt.expected) {
				t.Fatalf("expected %d lines, got %d: %v", len(tt.expected), len(lines), lines)
			}
			for i, want := range tt.expected {
				if got := lineText(lines[i]); got != want {
					t.Errorf("line %d: expected %q, got %q", i, want, got)
				}
			}
		})
	}
}

func TestWrapSpansLongWordSplitsAtWidth(t *testing.T) {
	token := strings.Repeat("x", 25)
	lines := wrapSpans(plainSpans(token), 10)

	widths := make([]int, 0, len(lines))
	for _, line := range lines {
		widths = append(widths, textutil.DisplayWidth(lineText(line)))
	}

	expected := []int{10, 10, 5}
	if len(widths) != len(expected) {
		t.Fatalf("expected %d lines, got %d (%v)", len(expected), len(widths), widths)
	}
	for i, want := range expected {
		if widths[i] != want {
			t.Errorf("line %d: expected width %d, got %d", i, want, widths[i])
		}
	}
}

func TestWrapSpansNeverExceedsWidth(t *testing.T) {
	inputs := []string{
		"one two three four five six seven eight nine ten",
		strings.Repeat("verylongword", 5),
		"short " + strings.Repeat("y", 40) + " tail",
		"wide 世界 characters 混ざった text",
	}

	for _, input := range inputs {
		for _, width := range []int{1, 2, 5, 10, 37} {
			for _, line := range wrapSpans(plainSpans(input), width) {
				got := textutil.DisplayWidth(lineText(line))
				// A single grapheme wider than the line is the only
				// permitted overflow.
				if got > width && width > 1 {
					t.Errorf("width %d: line %q has width %d", width, lineText(line), got)
				}
			}
		}
	}
}

func TestWrapSpansPreservesContent(t *testing.T) {
	input := "the quick brown fox jumps over the lazy dog"
	lines := wrapSpans(plainSpans(input), 8)

	var words []string
	for _, line := range lines {
		words = append(words, strings.Fields(lineText(line))...)
	}
	joined := strings.Join(words, " ")
	if joined != input {
		t.Errorf("expected content %q, got %q", input, joined)
	}
}

func TestWrapSpansWordAcrossStyleBoundary(t *testing.T) {
	// "foobar" is one word split across two styles; it must wrap as a unit.
	spans := []Span{
		{Text: "aaa foo", Style: StylePlain},
		{Text: "bar", Style: StyleStrong},
	}
	lines := wrapSpans(spans, 7)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if got := lineText(lines[0]); got != "aaa" {
		t.Errorf("expected first line %q, got %q", "aaa", got)
	}
	if got := lineText(lines[1]); got != "foobar" {
		t.Errorf("expected second line %q, got %q", "foobar", got)
	}
	if lines[1][1].Style != StyleStrong {
		t.Errorf("expected strong style preserved on wrapped word")
	}
}

func TestWrapSpansHardBreak(t *testing.T) {
	spans := []Span{
		{Text: "first", Style: StylePlain},
		{Text: hardBreak, Style: StylePlain},
		{Text: "second", Style: StylePlain},
	}
	lines := wrapSpans(spans, 40)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if got := lineText(lines[0]); got != "first" {
		t.Errorf("expected %q, got %q", "first", got)
	}
	if got := lineText(lines[1]); got != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}
}

func TestTruncateSpansCutsAtGraphemeBoundary(t *testing.T) {
	tests := []struct {
		name     string
		input    []Span
		width    int
		expected string
		used     int
	}{
		{
			name:     "fits entirely",
			input:    plainSpans("abc"),
			width:    5,
			expected: "abc",
			used:     3,
		},
		{
			name:     "cut mid span",
			input:    plainSpans("abcdef"),
			width:    4,
			expected: "abcd",
			used:     4,
		},
		{
			name: "cut across spans",
			input: []Span{
				{Text: "• ", Style: StyleMarker},
				{Text: "[x] ", Style: StyleMarker},
			},
			width:    5,
			expected: "• [x]",
			used:     5,
		},
		{
			name:     "wide rune does not straddle",
			input:    plainSpans("a世b"),
			width:    2,
			expected: "a",
			used:     1,
		},
		{
			name:     "zero width keeps nothing",
			input:    plainSpans("abc"),
			width:    0,
			expected: "",
			used:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, used := truncateSpans(tt.input, tt.width)
			if got := lineText(spans); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
			if used != tt.used {
				t.Errorf("expected used width %d, got %d", tt.used, used)
			}
		})
	}
}

func TestWrapSpansWidthOne(t *testing.T) {
	lines := wrapSpans(plainSpans("ab cd"), 1)
	if len(lines) == 0 {
		t.Fatal("expected output lines")
	}
	for _, line := range lines {
		if w := textutil.DisplayWidth(lineText(line)); w > 1 {
			t.Errorf("width 1: line %q has width %d", lineText(line), w)
		}
	}
}
