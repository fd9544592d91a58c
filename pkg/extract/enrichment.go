package extract

import (
	"regexp"
	"strings"

	"github.com/tubedigest/tubedigest/pkg/types"
)

var (
	bulletLineRegex    = regexp.MustCompile(`^[-–•*]\s+(.+)$`)
	itemSplitRegex     = regexp.MustCompile(`[;,]`)
	boldMarkerReplacer = strings.NewReplacer("**", "", "__", "")
)

// ExtractInsightEnrichment classifies the bullet lines of an enrichment
// section. A "Label: value" prefix routes the line by label; unlabeled lines
// fall back to keyword heuristics over the whole content, defaulting to the
// stats/tools/links bucket.
func ExtractInsightEnrichment(body string) *types.InsightEnrichment {
	enrichment := &types.InsightEnrichment{
		StatsToolsLinks:        []string{},
		Sentiment:              types.SentimentNeutral,
		RisksBlockersQuestions: []string{},
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		matches := bulletLineRegex.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		content := strings.TrimSpace(matches[1])

		if label, value, ok := splitLabel(content); ok {
			switch {
			case strings.Contains(label, "tool") || strings.Contains(label, "stat") || strings.Contains(label, "link"):
				enrichment.StatsToolsLinks = append(enrichment.StatsToolsLinks, splitItems(value)...)
			case strings.Contains(label, "sentiment"):
				enrichment.Sentiment = types.ParseSentiment(value)
			case strings.Contains(label, "risk") || strings.Contains(label, "blocker") || strings.Contains(label, "question"):
				enrichment.RisksBlockersQuestions = append(enrichment.RisksBlockersQuestions, splitItems(value)...)
			default:
				classifyByKeywords(enrichment, content)
			}
			continue
		}

		classifyByKeywords(enrichment, content)
	}

	return enrichment
}

// splitLabel separates a "Label: value" prefix. Bold markers around the
// label are ignored; a colon-free line is not a label.
func splitLabel(content string) (label, value string, ok bool) {
	idx := strings.Index(content, ":")
	if idx == -1 {
		return "", "", false
	}
	label = strings.ToLower(strings.TrimSpace(boldMarkerReplacer.Replace(content[:idx])))
	value = strings.TrimSpace(content[idx+1:])
	if label == "" || value == "" {
		return "", "", false
	}
	return label, value, true
}

func splitItems(value string) []string {
	var items []string
	for _, raw := range itemSplitRegex.Split(value, -1) {
		if item := strings.TrimSpace(raw); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func classifyByKeywords(enrichment *types.InsightEnrichment, content string) {
	lower := strings.ToLower(content)
	switch {
	case strings.Contains(lower, "tool") || strings.Contains(lower, "shortcut") ||
		strings.Contains(lower, "command"):
		enrichment.StatsToolsLinks = append(enrichment.StatsToolsLinks, content)
	case strings.Contains(lower, "risk") || strings.Contains(lower, "danger") ||
		strings.Contains(lower, "avoid") || strings.Contains(lower, "problem"):
		enrichment.RisksBlockersQuestions = append(enrichment.RisksBlockersQuestions, content)
	default:
		enrichment.StatsToolsLinks = append(enrichment.StatsToolsLinks, content)
	}
}
