package extract

import (
	"strings"
)

// Canonical section keys. Every consumer queries sections by one of these
// after alias resolution.
const (
	SectionVideoContext = "video context"
	SectionTLDR         = "tl;dr"
	SectionKeyMoments   = "key moments"
	SectionFrameworks   = "frameworks"
	SectionDebunked     = "debunked assumptions"
	SectionInPractice   = "in practice"
	SectionPlaybooks    = "playbooks"
	SectionEnrichment   = "insight enrichment"
	SectionLearningPack = "accelerated learning pack"
	SectionFlashcards   = "flashcards"
	SectionGlossary     = "glossary"
	SectionQuiz         = "quiz"
	SectionNovelIdeas   = "novel-idea meter"
)

// AliasTable maps a canonical section key to the heading variants observed in
// upstream documents, in resolution priority order. The table is read-only
// after construction and safe to share across concurrent extractions.
type AliasTable map[string][]string

// DefaultAliasTable returns the built-in alias table.
func DefaultAliasTable() AliasTable {
	return AliasTable{
		SectionVideoContext: {"context", "video metadata", "video info"},
		SectionTLDR: {
			"tl;dr (≤100 words)", "tl;dr (<=100 words)", "tl;dr summary",
			"tldr", "summary",
		},
		SectionKeyMoments:   {"key moments & timestamps", "key timestamps", "timestamped highlights"},
		SectionFrameworks:   {"strategic frameworks", "mental models", "models"},
		SectionDebunked:     {"debunked", "myths debunked", "common misconceptions"},
		SectionInPractice:   {"in practice (application)", "putting it into practice", "how to apply"},
		SectionPlaybooks:    {"playbooks & heuristics", "playbooks and heuristics", "heuristics"},
		SectionEnrichment:   {"enrichment", "additional insights"},
		SectionLearningPack: {"learning pack", "accelerated learning"},
		SectionFlashcards:   {"feynman flashcards", "flash cards"},
		SectionGlossary:     {"key terms", "terminology"},
		SectionQuiz:         {"quick quiz", "quiz questions", "test yourself"},
		SectionNovelIdeas:   {"novel idea meter", "novelty meter", "novel ideas"},
	}
}

// Merge returns a copy of the table with per-key overrides prepended, so
// configured aliases win over the built-in ones without discarding them.
func (t AliasTable) Merge(overrides map[string][]string) AliasTable {
	merged := make(AliasTable, len(t)+len(overrides))
	for canonical, list := range t {
		merged[canonical] = append([]string(nil), list...)
	}
	for canonical, list := range overrides {
		canonical = strings.ToLower(strings.TrimSpace(canonical))
		merged[canonical] = append(append([]string(nil), list...), merged[canonical]...)
	}
	return merged
}

// ResolveAliases copies alias section bodies under their canonical keys.
// For every canonical key absent from sections, the first alias present has
// its body copied over. Canonical keys already present are never overwritten,
// so an explicit canonical heading always wins. The input map is not mutated
// and resolution is idempotent.
func ResolveAliases(sections *SectionMap, table AliasTable) *SectionMap {
	resolved := sections.Clone()

	for canonical, aliasList := range table {
		if resolved.Has(canonical) {
			continue
		}
		for _, alias := range aliasList {
			key := strings.ToLower(strings.TrimSpace(alias))
			if body, ok := resolved.Get(key); ok {
				resolved.Set(canonical, body)
				break
			}
		}
	}

	return resolved
}
