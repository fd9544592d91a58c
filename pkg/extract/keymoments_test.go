package extract

import (
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{"5:30", 330},
		{"05:30", 330},
		{"1:05:45", 3945},
		{"0:00", 0},
		{"10:00", 600},
		{"bogus", 0},
		{"5", 0},
		{"1:2:3:4", 0},
		{"-1:30", 0},
		{"", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseTimestamp(tc.input); got != tc.expected {
				t.Errorf("ParseTimestamp(%q) = %d, want %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestExtractKeyMoments(t *testing.T) {
	body := "- 05:30 – Compounding beats intensity\n" +
		"- **12:45** → Start before you feel ready\n" +
		"- 1:02:10 - Closing argument\n" +
		"not a moment line\n"

	moments := ExtractKeyMoments(body)
	if len(moments) != 3 {
		t.Fatalf("got %d moments, want 3", len(moments))
	}

	if moments[0].Timestamp != "05:30" || moments[0].Seconds != 330 {
		t.Errorf("first moment = %+v, want 05:30 / 330", moments[0])
	}
	if moments[0].Insight != "Compounding beats intensity" {
		t.Errorf("first insight = %q", moments[0].Insight)
	}
	if moments[1].Timestamp != "12:45" || moments[1].Seconds != 765 {
		t.Errorf("bold timestamp = %+v, want 12:45 / 765", moments[1])
	}
	if moments[2].Seconds != 3730 {
		t.Errorf("HH:MM:SS seconds = %d, want 3730", moments[2].Seconds)
	}
}

func TestExtractKeyMomentsEscapedBold(t *testing.T) {
	// Shape observed in production output: "**\*00:05** – text"
	moments := ExtractKeyMoments(`- **\*00:05** – Opening hook`)
	if len(moments) != 1 {
		t.Fatalf("got %d moments, want 1", len(moments))
	}
	if moments[0].Timestamp != "00:05" {
		t.Errorf("timestamp = %q, want 00:05", moments[0].Timestamp)
	}
}

func TestExtractKeyMomentsWhitespaceCollapsed(t *testing.T) {
	moments := ExtractKeyMoments("- 03:00 –  spaced   out\ttext")
	if len(moments) != 1 {
		t.Fatalf("got %d moments, want 1", len(moments))
	}
	if moments[0].Insight != "spaced out text" {
		t.Errorf("insight = %q, want collapsed whitespace", moments[0].Insight)
	}
}

func TestExtractKeyMomentsEmptyBody(t *testing.T) {
	if got := ExtractKeyMoments(""); len(got) != 0 {
		t.Errorf("empty body produced %d moments", len(got))
	}
}
