package extract

import (
	"strings"
)

// summaryMarkers are headings and fields characteristic of a
// pipeline-formatted summary document.
var summaryMarkers = []string{
	"## Video Context",
	"**Title**",
	"**Speakers**:",
	"**Synopsis**:",
	"## TL;DR",
	"## Key Moments",
	"## Strategic Frameworks",
	"## Frameworks",
	"## Debunked Assumptions",
	"## In Practice",
	"## Playbooks & Heuristics",
	"## Insight Enrichment",
	"## Accelerated Learning Pack",
	"### Feynman Flashcards",
	"### Glossary",
	"### Quick Quiz",
	"### Novel-Idea Meter",
}

// detectionThreshold is the number of markers that must be present before
// content is treated as a structured summary rather than free text.
const detectionThreshold = 4

// IsSummary reports whether content looks like a pipeline-formatted summary.
// Very short content never qualifies.
func IsSummary(content string) bool {
	if len(content) < 100 {
		return false
	}

	count := 0
	for _, marker := range summaryMarkers {
		if strings.Contains(content, marker) {
			count++
			if count >= detectionThreshold {
				return true
			}
		}
	}
	return false
}
