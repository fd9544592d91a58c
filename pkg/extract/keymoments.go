package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tubedigest/tubedigest/pkg/types"
)

// keyMomentRegex matches one key-moment line: an optional bullet, a
// timestamp token that may be wrapped in bold markers or escaped asterisks
// ("**\*00:05**" has been observed in production), a delimiter, free text.
var keyMomentRegex = regexp.MustCompile(
	`^[-–•*]?\s*\**\\?\*?(\d{1,2}:\d{2}(?::\d{2})?)\**\s*(?:→|->|[–—:-])\s*(.+)$`)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// ParseTimestamp converts "MM:SS" or "HH:MM:SS" into seconds. Any other
// shape yields 0: the record keeps its raw timestamp text, losing only the
// derived seek position.
func ParseTimestamp(timestamp string) int {
	parts := strings.Split(strings.TrimSpace(timestamp), ":")

	switch len(parts) {
	case 2:
		m, errM := strconv.Atoi(parts[0])
		s, errS := strconv.Atoi(parts[1])
		if errM != nil || errS != nil || m < 0 || s < 0 {
			return 0
		}
		return m*60 + s
	case 3:
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		s, errS := strconv.Atoi(parts[2])
		if errH != nil || errM != nil || errS != nil || h < 0 || m < 0 || s < 0 {
			return 0
		}
		return h*3600 + m*60 + s
	default:
		return 0
	}
}

// ExtractKeyMoments parses timestamped insights from a section body.
// Lines that do not match contribute nothing; no line can fail the pass.
func ExtractKeyMoments(body string) []types.KeyMoment {
	var moments []types.KeyMoment

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matches := keyMomentRegex.FindStringSubmatch(line)
		if matches == nil {
			continue
		}

		insight := strings.TrimSpace(whitespaceRegex.ReplaceAllString(matches[2], " "))
		if insight == "" {
			continue
		}

		moments = append(moments, types.KeyMoment{
			Timestamp: matches[1],
			Seconds:   ParseTimestamp(matches[1]),
			Insight:   insight,
		})
	}

	return moments
}
