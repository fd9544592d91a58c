package extract

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// SectionMap is an ordered mapping of canonical section key to raw body.
// Keys are lower-cased and trimmed. Duplicate headings keep the first
// non-empty body; sections with empty bodies are never stored.
type SectionMap struct {
	keys   []string
	bodies map[string]string
}

// NewSectionMap creates an empty section map.
func NewSectionMap() *SectionMap {
	return &SectionMap{bodies: make(map[string]string)}
}

// Set stores body under key unless the key is already present or the body is
// empty after trimming. This implements the duplicate-heading policy: the
// first non-empty occurrence wins, later ones are ignored.
func (m *SectionMap) Set(key, body string) {
	key = strings.ToLower(strings.TrimSpace(key))
	body = strings.TrimSpace(body)
	if key == "" || body == "" {
		return
	}
	if _, exists := m.bodies[key]; exists {
		return
	}
	m.keys = append(m.keys, key)
	m.bodies[key] = body
}

// Get returns the body stored under key.
func (m *SectionMap) Get(key string) (string, bool) {
	body, ok := m.bodies[key]
	return body, ok
}

// Body returns the body stored under key, or "" when absent.
func (m *SectionMap) Body(key string) string {
	return m.bodies[key]
}

// Has reports whether key is present.
func (m *SectionMap) Has(key string) bool {
	_, ok := m.bodies[key]
	return ok
}

// Keys returns the canonical keys in first-seen order.
func (m *SectionMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of sections.
func (m *SectionMap) Len() int {
	return len(m.keys)
}

// Clone returns an independent copy of the map.
func (m *SectionMap) Clone() *SectionMap {
	clone := NewSectionMap()
	for _, key := range m.keys {
		clone.keys = append(clone.keys, key)
		clone.bodies[key] = m.bodies[key]
	}
	return clone
}

// ToMap returns the plain key/body mapping.
func (m *SectionMap) ToMap() map[string]string {
	out := make(map[string]string, len(m.bodies))
	for k, v := range m.bodies {
		out[k] = v
	}
	return out
}

// Sectionize splits normalized text into named sections. Any heading line
// opens a new section keyed by its lower-cased, trimmed text; body lines
// accumulate until the next heading or end of input.
func Sectionize(text string) *SectionMap {
	return splitSections(text, 1)
}

// Subsectionize splits a section body on deeper headings only: level is the
// minimum heading level treated as a boundary, typically one below whatever
// produced the body. Shallower headings are kept as body text.
func Subsectionize(body string, level int) *SectionMap {
	if level < 1 {
		level = 1
	}
	return splitSections(body, level)
}

// splitSections walks the goldmark AST for heading boundaries and falls back
// to a line scan when the parse yields nothing usable.
func splitSections(text string, minLevel int) *SectionMap {
	sections := NewSectionMap()
	if strings.TrimSpace(text) == "" {
		return sections
	}

	if ok := splitSectionsGoldmark(text, minLevel, sections); ok {
		return sections
	}
	return splitSectionsFallback(text, minLevel, sections)
}

type headingMark struct {
	key       string
	lineStart int
	bodyStart int
}

func splitSectionsGoldmark(text string, minLevel int, sections *SectionMap) bool {
	source := []byte(text)
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(source))
	if doc == nil {
		return false
	}

	var marks []headingMark
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok || heading.Level < minLevel || heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		seg := heading.Lines().At(0)
		key := strings.ToLower(strings.TrimSpace(string(seg.Value(source))))
		if key == "" {
			return ast.WalkContinue, nil
		}

		lineStart := seg.Start
		for lineStart > 0 && source[lineStart-1] != '\n' {
			lineStart--
		}
		// ATX headings only: a setext underline would otherwise promote the
		// last paragraph line before a "---" delimiter into a section key
		if source[lineStart] != '#' {
			return ast.WalkContinue, nil
		}

		bodyStart := len(source)
		if nl := bytes.IndexByte(source[seg.Stop:], '\n'); nl != -1 {
			bodyStart = seg.Stop + nl + 1
		}

		marks = append(marks, headingMark{key: key, lineStart: lineStart, bodyStart: bodyStart})
		return ast.WalkContinue, nil
	})

	if len(marks) == 0 {
		return false
	}

	for i, mark := range marks {
		end := len(source)
		if i+1 < len(marks) {
			end = marks[i+1].lineStart
		}
		if mark.bodyStart < end {
			sections.Set(mark.key, string(source[mark.bodyStart:end]))
		} else {
			sections.Set(mark.key, "")
		}
	}
	return true
}

var headingLineRegex = regexp.MustCompile(`^(#+)\s*(.+)$`)

func splitSectionsFallback(text string, minLevel int, sections *SectionMap) *SectionMap {
	lines := strings.Split(text, "\n")

	currentKey := ""
	var currentBody []string

	flush := func() {
		if currentKey != "" {
			sections.Set(currentKey, strings.Join(currentBody, "\n"))
		}
		currentBody = nil
	}

	for _, line := range lines {
		if matches := headingLineRegex.FindStringSubmatch(line); matches != nil && len(matches[1]) >= minLevel {
			flush()
			currentKey = strings.ToLower(strings.TrimSpace(matches[2]))
			continue
		}
		if currentKey != "" {
			currentBody = append(currentBody, line)
		}
	}
	flush()

	return sections
}
