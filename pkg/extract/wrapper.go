package extract

import (
	"strings"
)

// Wrapper markers the upstream pipeline is known to emit around the real
// document. Fence markers require a matching closing fence; banner markers
// consume everything to the end of the string.
var (
	fenceMarkers  = []string{"```markdown", "```md"}
	bannerMarkers = []string{"MARKDOWN BLOCK", "MARKDOWN OUTPUT"}
)

// StripWrapper removes an optional code-fence or banner wrapper surrounding
// the document, then trims leading/trailing blank lines and horizontal-rule
// lines. Input without a wrapper passes through (minus the edge trim).
// The function is idempotent.
func StripWrapper(text string) string {
	if text == "" {
		return ""
	}

	for _, marker := range fenceMarkers {
		start := strings.Index(text, marker)
		if start == -1 {
			continue
		}
		body := text[start+len(marker):]
		end := strings.Index(body, "```")
		if end == -1 {
			// Unterminated fence is not a wrapper
			continue
		}
		return trimEdges(body[:end])
	}

	for _, marker := range bannerMarkers {
		if start := strings.Index(text, marker); start != -1 {
			rest := text[start+len(marker):]
			// Banner text occupies its own line; skip to the next line
			if nl := strings.IndexByte(rest, '\n'); nl != -1 {
				rest = rest[nl+1:]
			} else {
				rest = ""
			}
			return trimEdges(rest)
		}
	}

	return trimEdges(text)
}

// trimEdges strips leading/trailing blank lines and horizontal rules.
func trimEdges(text string) string {
	lines := strings.Split(text, "\n")

	start := 0
	for start < len(lines) && isEdgeLine(lines[start]) {
		start++
	}

	end := len(lines)
	for end > start && isEdgeLine(lines[end-1]) {
		end--
	}

	return strings.Join(lines[start:end], "\n")
}

func isEdgeLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || trimmed == "---"
}
