package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MojibakeTable maps known mis-decoded byte sequences to their intended
// characters. The upstream pipeline has historically emitted UTF-8 text that
// was re-read as Latin-1 somewhere along the way; these are the artifacts
// observed in production documents. Unknown artifacts pass through unchanged.
type MojibakeTable map[string]string

// DefaultMojibakeTable returns the built-in correction table.
func DefaultMojibakeTable() MojibakeTable {
	return MojibakeTable{
		"‚Äì": "–", // en dash
		"‚Äî": "—", // em dash
		"‚Üí": "→", // right arrow
		"‚ÄØ": "•", // bullet
		"‚Ä¢": "•", // bullet
		"‚Äú": "“", // left double quote
		"‚Äù": "”", // right double quote
		"‚Äò": "‘", // left single quote
		"‚Äô": "’", // right single quote
	}
}

// Merge returns a copy of the table with overrides applied on top.
func (t MojibakeTable) Merge(overrides map[string]string) MojibakeTable {
	merged := make(MojibakeTable, len(t)+len(overrides))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

var headingSpacingRegex = regexp.MustCompile(`(?m)^(#+)[ \t]*(.+)$`)

// Normalizer canonicalizes raw summary text before sectionizing.
type Normalizer struct {
	mojibake MojibakeTable
}

// NewNormalizer creates a normalizer with the default correction table.
func NewNormalizer() *Normalizer {
	return &Normalizer{mojibake: DefaultMojibakeTable()}
}

// NewNormalizerWithTable creates a normalizer with a custom correction table.
func NewNormalizerWithTable(table MojibakeTable) *Normalizer {
	if table == nil {
		table = DefaultMojibakeTable()
	}
	return &Normalizer{mojibake: table}
}

// Normalize canonicalizes line endings, repairs known mojibake sequences and
// collapses heading marker spacing. It is a total function: any input yields
// a usable output and an empty input yields an empty output.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// Line endings first so every later pass sees \n only
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// Compose combining sequences before table lookup so the corrupt
	// sequences match byte-for-byte
	text = norm.NFC.String(text)

	for corrupt, intended := range n.mojibake {
		text = strings.ReplaceAll(text, corrupt, intended)
	}

	// Exactly one space between heading marker and text
	text = headingSpacingRegex.ReplaceAllString(text, "$1 $2")

	return text
}
