package extract

import (
	"regexp"
	"strings"

	"github.com/tubedigest/tubedigest/pkg/types"
)

var (
	// **Term:** Definition
	glossaryBoldColonRegex = regexp.MustCompile(`^[-–•*]?\s*\*\*([^*]+?):\*\*\s*(.+)$`)
	// **Term** - Definition (or **Term**: Definition)
	glossaryBoldDelimRegex = regexp.MustCompile(`^[-–•*]?\s*\*\*([^*]+?)\*\*\s*[:–—-]\s*(.+)$`)
	// - Term: Definition
	glossaryPlainRegex = regexp.MustCompile(`^[-–•*]\s*([^:]+?):\s*(.+)$`)
)

// placeholderDefinition backs glossary entries recovered from a bare term
// list, where the source provides no definition text.
const placeholderDefinition = "Key term mentioned in the video content"

// ExtractGlossary parses term/definition pairs from a section body.
// Both the colon-after-bold and dash-after-bold variants are accepted, as is
// the plain "- Term: Definition" bullet shape.
func ExtractGlossary(body string) []types.GlossaryItem {
	var items []types.GlossaryItem

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var term, definition string
		if matches := glossaryBoldColonRegex.FindStringSubmatch(line); matches != nil {
			term, definition = matches[1], matches[2]
		} else if matches := glossaryBoldDelimRegex.FindStringSubmatch(line); matches != nil {
			term, definition = matches[1], matches[2]
		} else if matches := glossaryPlainRegex.FindStringSubmatch(line); matches != nil {
			term, definition = matches[1], matches[2]
		} else {
			continue
		}

		term = strings.TrimSpace(term)
		definition = strings.TrimSpace(definition)
		if term == "" || definition == "" || strings.HasPrefix(strings.ToLower(term), "glossary") {
			continue
		}
		items = append(items, types.GlossaryItem{Term: term, Definition: definition})
	}

	if len(items) > 0 {
		return items
	}
	return glossaryFromTermList(body)
}

var termListPrefixRegex = regexp.MustCompile(`(?i)^(e\.g\.?,?\s*|\*\*[^:]*:\s*|\(\d+\):\s*)`)

var termSeparatorRegex = regexp.MustCompile(`[,;]`)

// glossaryFromTermList recovers entries from a bare comma-separated term
// list ("GMB, EEAT, Call-Tracking, etc.") with a placeholder definition.
// Lines that read like prose rather than an enumeration are skipped.
func glossaryFromTermList(body string) []types.GlossaryItem {
	var items []types.GlossaryItem

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-–•* ")
		line = termListPrefixRegex.ReplaceAllString(line, "")
		if line == "" {
			continue
		}

		segments := termSeparatorRegex.Split(line, -1)
		if !looksLikeTermList(segments) {
			continue
		}

		for _, raw := range segments {
			term := strings.TrimSpace(raw)
			term = strings.Trim(term, "*")
			term = strings.TrimSuffix(term, ".")
			lower := strings.ToLower(term)
			if len(term) <= 1 || lower == "etc" || lower == "e.g" || lower == "and more" {
				continue
			}
			items = append(items, types.GlossaryItem{Term: term, Definition: placeholderDefinition})
		}
	}

	return items
}

// looksLikeTermList requires at least two short segments, which separates an
// enumeration of terms from ordinary prose that happens to contain commas.
func looksLikeTermList(segments []string) bool {
	if len(segments) < 2 {
		return false
	}
	for _, seg := range segments {
		if len(strings.Fields(seg)) > 5 {
			return false
		}
	}
	return true
}
