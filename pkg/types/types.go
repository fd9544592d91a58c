// Package types defines the core types for TubeDigest
package types

import (
	"strings"
	"time"
)

// Sentiment represents the overall sentiment of a summarized video
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment maps free-form sentiment text onto a Sentiment value.
// Unknown wording defaults to neutral.
func ParseSentiment(text string) Sentiment {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "positive") || strings.Contains(lower, "admiring") || strings.Contains(lower, "optimistic"):
		return SentimentPositive
	case strings.Contains(lower, "negative") || strings.Contains(lower, "critical") || strings.Contains(lower, "pessimistic"):
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// KeyMoment represents a timestamped insight from the video
type KeyMoment struct {
	// Timestamp is the raw timestamp text as it appeared, e.g. "5:30"
	Timestamp string `json:"timestamp"`

	// Seconds is the timestamp converted to seconds; 0 when unparsable
	Seconds int `json:"seconds"`

	// Insight is the free-text takeaway attached to the timestamp
	Insight string `json:"insight"`
}

// Framework represents a named mental model or strategic framework
type Framework struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Playbook represents a trigger/action heuristic
type Playbook struct {
	Trigger string `json:"trigger"`
	Action  string `json:"action"`
}

// GlossaryItem represents a term and its definition
type GlossaryItem struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// QuizItem represents a question/answer pair
type QuizItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Flashcard represents a Feynman-style flashcard
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NovelIdea represents an insight scored by novelty on a 0-5 scale
type NovelIdea struct {
	Insight string `json:"insight"`
	Score   int    `json:"score"`
}

// InsightEnrichment groups supplementary signals extracted from a summary
type InsightEnrichment struct {
	StatsToolsLinks        []string  `json:"stats_tools_links"`
	Sentiment              Sentiment `json:"sentiment"`
	RisksBlockersQuestions []string  `json:"risks_blockers_questions"`
}

// VideoContext holds the metadata block of a summary document
type VideoContext struct {
	Title       string   `json:"title"`
	Speakers    []string `json:"speakers"`
	Duration    string   `json:"duration"`
	Channel     string   `json:"channel"`
	Synopsis    string   `json:"synopsis"`
	VideoURL    string   `json:"video_url,omitempty"`
	Language    string   `json:"language"`
	GeneratedOn string   `json:"generated_on,omitempty"`
	Version     string   `json:"version"`
}

// LearningPack groups the accelerated-learning records of a summary
type LearningPack struct {
	TLDR100        string         `json:"tldr100"`
	Flashcards     []Flashcard    `json:"flashcards"`
	Glossary       []GlossaryItem `json:"glossary"`
	Quiz           []QuizItem     `json:"quiz"`
	NovelIdeaMeter []NovelIdea    `json:"novel_idea_meter"`
}

// IsEmpty reports whether the pack carries no extracted records
func (p *LearningPack) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.TLDR100 == "" &&
		len(p.Flashcards) == 0 &&
		len(p.Glossary) == 0 &&
		len(p.Quiz) == 0 &&
		len(p.NovelIdeaMeter) == 0
}

// ExtractionResult is the complete typed output of one extraction pass.
// Every field is populated on return: lists are empty rather than missing,
// scalar fields fall back to documented defaults.
type ExtractionResult struct {
	// Sections maps canonical section key to raw section body
	Sections map[string]string `json:"sections"`

	// SectionOrder preserves first-seen heading order for Sections
	SectionOrder []string `json:"section_order"`

	VideoContext        VideoContext       `json:"video_context"`
	TLDR                string             `json:"tldr"`
	KeyMoments          []KeyMoment        `json:"key_moments"`
	Frameworks          []Framework        `json:"frameworks"`
	DebunkedAssumptions []string           `json:"debunked_assumptions"`
	InPractice          []string           `json:"in_practice"`
	Playbooks           []Playbook         `json:"playbooks"`
	InsightEnrichment   *InsightEnrichment `json:"insight_enrichment,omitempty"`
	LearningPack        *LearningPack      `json:"learning_pack,omitempty"`

	// ExtractedAt is when the extraction ran
	ExtractedAt time.Time `json:"extracted_at"`

	// ExtractionDuration is how long the extraction took
	ExtractionDuration time.Duration `json:"extraction_duration"`
}

// PartialInput carries structured data already known to the caller, for
// example values received alongside the markdown from the upstream pipeline.
// Non-empty fields take priority over anything derived from the markdown.
type PartialInput struct {
	VideoContext        *VideoContext      `json:"video_context,omitempty"`
	TLDR                string             `json:"tldr,omitempty"`
	KeyMoments          []KeyMoment        `json:"key_moments,omitempty"`
	Frameworks          []Framework        `json:"frameworks,omitempty"`
	DebunkedAssumptions []string           `json:"debunked_assumptions,omitempty"`
	InPractice          []string           `json:"in_practice,omitempty"`
	Playbooks           []Playbook         `json:"playbooks,omitempty"`
	InsightEnrichment   *InsightEnrichment `json:"insight_enrichment,omitempty"`
	LearningPack        *LearningPack      `json:"learning_pack,omitempty"`
}

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeInternal     ErrorType = "internal"
	ErrorTypeExternal     ErrorType = "external"
)

// DigestError represents a structured error payload exposed over the API
type DigestError struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DigestError) Error() string {
	return string(e.Type) + ": " + e.Message
}
