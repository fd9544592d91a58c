package extract

import (
	"strings"
	"testing"
)

func TestIsSummary(t *testing.T) {
	summary := "## Video Context\n**Title**: Demo\n**Speakers**: {A}\n\n" +
		"## TL;DR\nShort.\n\n## Key Moments\n- 01:00 – point\n\n" +
		"## Playbooks & Heuristics\n- IF x, THEN y\n"

	if !IsSummary(summary) {
		t.Errorf("structured summary not detected")
	}
}

func TestIsSummaryRejectsFreeText(t *testing.T) {
	prose := strings.Repeat("Ordinary transcript text without any structure. ", 10)
	if IsSummary(prose) {
		t.Errorf("free text detected as summary")
	}
}

func TestIsSummaryRejectsShortContent(t *testing.T) {
	// Markers present but under the length floor
	short := "## Video Context\n## TL;DR\n## Key Moments"
	if IsSummary(short) {
		t.Errorf("short content detected as summary")
	}
}

func TestIsSummaryBelowMarkerThreshold(t *testing.T) {
	twoMarkers := "## Video Context\n## TL;DR\n" + strings.Repeat("filler text ", 20)
	if IsSummary(twoMarkers) {
		t.Errorf("content with too few markers detected as summary")
	}
}
