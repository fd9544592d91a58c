package extract

import (
	"regexp"
	"strings"

	"github.com/tubedigest/tubedigest/pkg/types"
)

// Defaults applied when the video-context block omits a field.
const (
	defaultLanguage = "en"
	defaultVersion  = "v1.0"
)

// fieldRegexes is built once at package init and read-only afterwards, so
// concurrent extractions share it safely.
var fieldRegexes = func() map[string]*regexp.Regexp {
	names := []string{
		"Title", "Speakers", "Duration", "Channel", "Synopsis",
		"Video URL", "Language", "Generated On", "Version",
	}
	regexes := make(map[string]*regexp.Regexp, len(names))
	for _, name := range names {
		regexes[name] = regexp.MustCompile(
			`(?im)^\s*[-–•*]?\s*\*\*` + regexp.QuoteMeta(name) + `\*\*\s*:\s*(.+)$`)
	}
	return regexes
}()

// extractField pulls a "**Field**: value" line out of a context block.
func extractField(body, name string) string {
	re, ok := fieldRegexes[name]
	if !ok {
		return ""
	}
	matches := re.FindStringSubmatch(body)
	if matches == nil {
		return ""
	}
	return strings.TrimSpace(matches[1])
}

// ExtractVideoContext parses the metadata block of a summary document.
// Missing fields fall back to documented defaults; speakers are brace-
// stripped, comma-split and cleaned of placeholder entries.
func ExtractVideoContext(body string) types.VideoContext {
	vc := types.VideoContext{
		Title:       extractField(body, "Title"),
		Speakers:    extractSpeakers(body),
		Duration:    extractField(body, "Duration"),
		Channel:     extractField(body, "Channel"),
		Synopsis:    extractField(body, "Synopsis"),
		VideoURL:    extractField(body, "Video URL"),
		Language:    extractField(body, "Language"),
		GeneratedOn: extractField(body, "Generated On"),
		Version:     extractField(body, "Version"),
	}

	if vc.Language == "" {
		vc.Language = defaultLanguage
	}
	if vc.Version == "" {
		vc.Version = defaultVersion
	}
	if vc.Speakers == nil {
		vc.Speakers = []string{}
	}
	return vc
}

var braceRegex = regexp.MustCompile(`[{}]`)

func extractSpeakers(body string) []string {
	raw := extractField(body, "Speakers")
	if raw == "" {
		return []string{}
	}

	raw = braceRegex.ReplaceAllString(raw, "")
	var speakers []string
	for _, part := range strings.Split(raw, ",") {
		speaker := strings.TrimSpace(part)
		// "Speaker A"/"Speaker B" are template placeholders, not names
		if speaker == "" || strings.HasPrefix(speaker, "Speaker ") {
			continue
		}
		speakers = append(speakers, speaker)
	}
	if speakers == nil {
		return []string{}
	}
	return speakers
}
