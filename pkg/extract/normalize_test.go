package extract

import (
	"strings"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	n := NewNormalizer()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "CRLF to LF",
			input:    "line one\r\nline two\r\n",
			expected: "line one\nline two\n",
		},
		{
			name:     "bare CR to LF",
			input:    "line one\rline two",
			expected: "line one\nline two",
		},
		{
			name:     "mixed endings",
			input:    "a\r\nb\rc\nd",
			expected: "a\nb\nc\nd",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.input); got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeMojibake(t *testing.T) {
	n := NewNormalizer()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "en dash artifact",
			input:    "05:30 ‚Äì insight",
			expected: "05:30 – insight",
		},
		{
			name:     "arrow artifact",
			input:    "assumption ‚Üí reality",
			expected: "assumption → reality",
		},
		{
			name:     "bullet artifact",
			input:    "‚Ä¢ first point",
			expected: "• first point",
		},
		{
			name:     "clean text untouched",
			input:    "no artifacts here",
			expected: "no artifacts here",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.input); got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeHeadingSpacing(t *testing.T) {
	n := NewNormalizer()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "missing space after hashes",
			input:    "##Key Moments",
			expected: "## Key Moments",
		},
		{
			name:     "tab after hashes",
			input:    "##\tKey Moments",
			expected: "## Key Moments",
		},
		{
			name:     "already spaced",
			input:    "## Key Moments",
			expected: "## Key Moments",
		},
		{
			name:     "multiline",
			input:    "##First\nbody\n###Second",
			expected: "## First\nbody\n### Second",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.input); got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer()
	input := "##Title\r\n‚Äì dash ‚Ä¢ bullet\r\ntext"

	once := n.Normalize(input)
	twice := n.Normalize(once)
	if once != twice {
		t.Errorf("Normalize is not idempotent: %q != %q", once, twice)
	}
}

func TestStripWrapperFence(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "markdown fence",
			input:    "```markdown\n## Body\ncontent\n```",
			expected: "## Body\ncontent",
		},
		{
			name:     "md fence",
			input:    "```md\n## Body\n```",
			expected: "## Body",
		},
		{
			name:     "fence without closer left alone",
			input:    "```markdown\n## Body",
			expected: "```markdown\n## Body",
		},
		{
			name:     "no wrapper",
			input:    "## Body\ncontent",
			expected: "## Body\ncontent",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripWrapper(tc.input); got != tc.expected {
				t.Errorf("StripWrapper(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestStripWrapperBanner(t *testing.T) {
	input := "Some preamble from the model.\nMARKDOWN BLOCK\n## Video Context\ncontent"
	got := StripWrapper(input)
	if !strings.HasPrefix(got, "## Video Context") {
		t.Errorf("StripWrapper banner: got %q, want body starting at heading", got)
	}
}

func TestStripWrapperEdgeRules(t *testing.T) {
	input := "\n---\n\n## Body\ncontent\n\n---\n"
	expected := "## Body\ncontent"
	if got := StripWrapper(input); got != expected {
		t.Errorf("StripWrapper(%q) = %q, want %q", input, got, expected)
	}
}

func TestStripWrapperIdempotent(t *testing.T) {
	input := "```markdown\n---\n## Body\ncontent\n---\n```"
	once := StripWrapper(input)
	twice := StripWrapper(once)
	if once != twice {
		t.Errorf("StripWrapper is not idempotent: %q != %q", once, twice)
	}
}

func TestMojibakeTableMerge(t *testing.T) {
	base := DefaultMojibakeTable()
	merged := base.Merge(MojibakeTable{"√©": "é"})

	if merged["√©"] != "é" {
		t.Errorf("Merge did not add override")
	}
	if merged["‚Äì"] != "–" {
		t.Errorf("Merge lost base entry")
	}
	if _, ok := base["√©"]; ok {
		t.Errorf("Merge mutated the base table")
	}
}
