package extract

import (
	"regexp"
	"strings"
)

var listMarkerRegex = regexp.MustCompile(`^(?:[-–•*]|\d+\.)\s+(.+)$`)

// ExtractListItems parses bullet or numbered list items from a section body.
// Arrow lines ("assumption → reality") are kept whole; the caller decides
// whether to split them further.
func ExtractListItems(body string) []string {
	var items []string

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if matches := listMarkerRegex.FindStringSubmatch(line); matches != nil {
			if item := strings.TrimSpace(matches[1]); item != "" {
				items = append(items, item)
			}
		}
	}

	return items
}
