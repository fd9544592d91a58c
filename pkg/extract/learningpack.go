package extract

import (
	"regexp"
	"strings"

	"github.com/tubedigest/tubedigest/pkg/types"
)

// placeholderAnswer backs flashcards recovered from statement-only lines,
// where the source provides no answer text.
const placeholderAnswer = "See video content for detailed explanation"

var (
	// "1. Q: question A: answer"
	flashcardNumberedQARegex = regexp.MustCompile(`^\d+\.\s*Q\d*:\s*(.+?)\s*A\d*:\s*(.+)$`)
	// "- Q: question / A: answer"
	flashcardBulletQARegex = regexp.MustCompile(`^[-–•*]\s*Q\d*:\s*(.+?)\s*[/|]\s*A\d*:\s*(.+)$`)
	// "1. statement"
	flashcardNumberedRegex = regexp.MustCompile(`^\d+\.\s*(.+)$`)
)

// ExtractFlashcards parses flashcards from a section body. Explicit Q/A
// shapes are preferred; numbered or bulleted statements degrade to cards
// with a placeholder answer.
func ExtractFlashcards(body string) []types.Flashcard {
	lines := splitNonEmptyLines(body)

	var cards []types.Flashcard
	for _, line := range lines {
		if matches := flashcardNumberedQARegex.FindStringSubmatch(line); matches != nil {
			cards = append(cards, types.Flashcard{
				Question: strings.TrimSpace(matches[1]),
				Answer:   strings.TrimSpace(matches[2]),
			})
		}
	}
	if len(cards) > 0 {
		return cards
	}

	for _, line := range lines {
		if matches := flashcardBulletQARegex.FindStringSubmatch(line); matches != nil {
			cards = append(cards, types.Flashcard{
				Question: strings.TrimSpace(matches[1]),
				Answer:   strings.TrimSpace(matches[2]),
			})
		}
	}
	if len(cards) > 0 {
		return cards
	}

	for _, line := range lines {
		if matches := flashcardNumberedRegex.FindStringSubmatch(line); matches != nil {
			statement := strings.TrimSpace(matches[1])
			if len(statement) > 10 {
				cards = append(cards, types.Flashcard{Question: statement, Answer: placeholderAnswer})
			}
		}
	}
	if len(cards) > 0 {
		return cards
	}

	for _, line := range lines {
		if matches := listMarkerRegex.FindStringSubmatch(line); matches != nil {
			statement := strings.TrimSpace(matches[1])
			if len(statement) > 10 && !strings.HasPrefix(strings.ToLower(statement), "feynman") {
				cards = append(cards, types.Flashcard{Question: statement, Answer: placeholderAnswer})
			}
		}
	}
	return cards
}

// ExtractLearningPack assembles the accelerated-learning records from
// resolved sections. When the subsections were not split out as their own
// headings, a single "accelerated learning pack" body is subsectionized and
// resolved instead.
func ExtractLearningPack(sections *SectionMap, aliases AliasTable) *types.LearningPack {
	pack := packFromSections(sections)
	if packHasRecords(pack) {
		return pack
	}

	if body, ok := sections.Get(SectionLearningPack); ok {
		// Subsections of a ## pack section sit one level deeper
		nested := ResolveAliases(Subsectionize(body, 3), aliases)
		if nested.Len() == 0 {
			nested = ResolveAliases(Subsectionize(body, 2), aliases)
		}
		nestedPack := packFromSections(nested)
		if nestedPack.TLDR100 == "" {
			nestedPack.TLDR100 = pack.TLDR100
		}
		pack = nestedPack
	}

	return pack
}

// packHasRecords ignores TLDR100, which is shared with the top-level TL;DR
// section and says nothing about whether the pack subsections were found.
func packHasRecords(pack *types.LearningPack) bool {
	return len(pack.Flashcards) > 0 || len(pack.Glossary) > 0 ||
		len(pack.Quiz) > 0 || len(pack.NovelIdeaMeter) > 0
}

func packFromSections(sections *SectionMap) *types.LearningPack {
	pack := &types.LearningPack{
		TLDR100:        strings.TrimSpace(sections.Body(SectionTLDR)),
		Flashcards:     ExtractFlashcards(sections.Body(SectionFlashcards)),
		Glossary:       ExtractGlossary(sections.Body(SectionGlossary)),
		Quiz:           ExtractQuiz(sections.Body(SectionQuiz)),
		NovelIdeaMeter: ExtractNovelIdeas(sections.Body(SectionNovelIdeas)),
	}

	if pack.Flashcards == nil {
		pack.Flashcards = []types.Flashcard{}
	}
	if pack.Glossary == nil {
		pack.Glossary = []types.GlossaryItem{}
	}
	if pack.Quiz == nil {
		pack.Quiz = []types.QuizItem{}
	}
	if pack.NovelIdeaMeter == nil {
		pack.NovelIdeaMeter = []types.NovelIdea{}
	}
	return pack
}

func splitNonEmptyLines(body string) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
