package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tubedigest/tubedigest/pkg/types"
)

// novelIdeaRegex matches "- <insight>: <score>" and "- <insight> → <score>"
// with an optional "/5" suffix. The score may be out of range; it is clamped.
var novelIdeaRegex = regexp.MustCompile(`^[-–•*]\s*(.+?)\s*(?:→|->|[:–—-])\s*(-?\d+)(?:\s*/\s*5)?\s*$`)

// ExtractNovelIdeas parses novelty-scored insights from a section body.
// Scores are clamped into [0,5]; out-of-range values are kept, not rejected.
func ExtractNovelIdeas(body string) []types.NovelIdea {
	var ideas []types.NovelIdea

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matches := novelIdeaRegex.FindStringSubmatch(line)
		if matches == nil {
			continue
		}

		insight := strings.TrimSpace(strings.Trim(matches[1], "*"))
		if insight == "" {
			continue
		}

		score, err := strconv.Atoi(matches[2])
		if err != nil {
			score = 0
		}
		ideas = append(ideas, types.NovelIdea{Insight: insight, Score: clampScore(score)})
	}

	return ideas
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 5 {
		return 5
	}
	return score
}
