// Package extract implements the structured content extraction engine: it
// recovers a typed document model from the free-form markdown produced by
// the upstream summarization pipeline. Every function is pure and total;
// malformed input degrades to fewer records, never to an error.
package extract

import (
	"strings"
	"time"

	"github.com/tubedigest/tubedigest/pkg/types"
)

// DefaultTLDR is the documented placeholder used when neither the caller nor
// the markdown provides a TL;DR.
const DefaultTLDR = "No summary available."

// Engine runs the full extraction pipeline. It holds only immutable
// configuration, so a single Engine may serve concurrent extractions.
type Engine struct {
	normalizer *Normalizer
	aliases    AliasTable
}

// Option configures an Engine.
type Option func(*Engine)

// WithAliasTable replaces the built-in alias table.
func WithAliasTable(table AliasTable) Option {
	return func(e *Engine) {
		if table != nil {
			e.aliases = table
		}
	}
}

// WithMojibakeTable replaces the built-in mojibake correction table.
func WithMojibakeTable(table MojibakeTable) Option {
	return func(e *Engine) {
		if table != nil {
			e.normalizer = NewNormalizerWithTable(table)
		}
	}
}

// NewEngine creates an extraction engine with default tables.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		normalizer: NewNormalizer(),
		aliases:    DefaultAliasTable(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsSummary reports whether content looks like a pipeline-formatted summary.
func (e *Engine) IsSummary(content string) bool {
	return IsSummary(content)
}

// ExtractDocument parses raw markdown into a fully populated
// ExtractionResult. fallback may be nil; when present, its non-empty fields
// win over markdown-derived values, which in turn win over defaults.
func (e *Engine) ExtractDocument(raw string, fallback *types.PartialInput) *types.ExtractionResult {
	start := time.Now()
	if fallback == nil {
		fallback = &types.PartialInput{}
	}

	text := e.normalizer.Normalize(StripWrapper(raw))
	sections := ResolveAliases(Sectionize(text), e.aliases)

	result := &types.ExtractionResult{
		Sections:     sections.ToMap(),
		SectionOrder: sections.Keys(),
		ExtractedAt:  start,
	}

	result.VideoContext = resolveContext(fallback.VideoContext, sections.Body(SectionVideoContext))
	result.TLDR = resolveScalar(fallback.TLDR, strings.TrimSpace(sections.Body(SectionTLDR)), DefaultTLDR)
	result.KeyMoments = resolveList(fallback.KeyMoments, ExtractKeyMoments(sections.Body(SectionKeyMoments)))
	result.Frameworks = resolveList(fallback.Frameworks, ExtractFrameworks(sections.Body(SectionFrameworks)))
	result.DebunkedAssumptions = resolveList(fallback.DebunkedAssumptions, ExtractListItems(sections.Body(SectionDebunked)))
	result.InPractice = resolveList(fallback.InPractice, ExtractListItems(sections.Body(SectionInPractice)))
	result.Playbooks = resolveList(fallback.Playbooks, ExtractPlaybooks(sections.Body(SectionPlaybooks)))
	result.InsightEnrichment = resolveEnrichment(fallback.InsightEnrichment, sections)
	result.LearningPack = resolveLearningPack(fallback.LearningPack, sections, e.aliases)

	result.ExtractionDuration = time.Since(start)
	return result
}

// resolveList applies the fallback chain for list-valued record types:
// structured input wins, then the markdown-derived value, then an empty list.
func resolveList[T any](structured, extracted []T) []T {
	if len(structured) > 0 {
		return structured
	}
	if extracted == nil {
		return []T{}
	}
	return extracted
}

// resolveScalar applies the fallback chain for scalar fields.
func resolveScalar(structured, extracted, fallback string) string {
	if structured != "" {
		return structured
	}
	if extracted != "" {
		return extracted
	}
	return fallback
}

func resolveContext(structured *types.VideoContext, body string) types.VideoContext {
	if structured != nil {
		vc := *structured
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
	return ExtractVideoContext(body)
}

func resolveEnrichment(structured *types.InsightEnrichment, sections *SectionMap) *types.InsightEnrichment {
	if structured != nil {
		return structured
	}
	return ExtractInsightEnrichment(sections.Body(SectionEnrichment))
}

func resolveLearningPack(structured *types.LearningPack, sections *SectionMap, aliases AliasTable) *types.LearningPack {
	if structured != nil && !structured.IsEmpty() {
		return structured
	}
	return ExtractLearningPack(sections, aliases)
}

// maxKeyPoints caps the digest used by API responses.
const maxKeyPoints = 5

// KeyPoints condenses a result into up to five headline insights: key-moment
// insights first, padded from frameworks when fewer than three were found.
func KeyPoints(result *types.ExtractionResult) []string {
	points := []string{}
	for _, moment := range result.KeyMoments {
		points = append(points, moment.Insight)
		if len(points) == maxKeyPoints {
			return points
		}
	}

	if len(points) < 3 {
		for _, fw := range result.Frameworks[:min(2, len(result.Frameworks))] {
			desc := fw.Description
			if len(desc) > 100 {
				desc = desc[:100] + "..."
			}
			points = append(points, fw.Name+": "+desc)
			if len(points) == maxKeyPoints {
				break
			}
		}
	}

	return points
}
