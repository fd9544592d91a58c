package extract

import (
	"testing"
)

func TestExtractNovelIdeas(t *testing.T) {
	body := "- Reverse trial pricing: 4\n" +
		"- Usage-based onboarding → 5/5\n" +
		"- **Community-led growth** – 3\n"

	ideas := ExtractNovelIdeas(body)
	if len(ideas) != 3 {
		t.Fatalf("got %d ideas, want 3: %+v", len(ideas), ideas)
	}
	if ideas[0].Insight != "Reverse trial pricing" || ideas[0].Score != 4 {
		t.Errorf("ideas[0] = %+v", ideas[0])
	}
	if ideas[1].Score != 5 {
		t.Errorf("ideas[1] = %+v, /5 suffix must be accepted", ideas[1])
	}
	if ideas[2].Insight != "Community-led growth" {
		t.Errorf("ideas[2] = %+v, bold markers must be stripped", ideas[2])
	}
}

func TestExtractNovelIdeasClamping(t *testing.T) {
	body := "- Overscored idea: 7/5\n- Underscored idea: -2\n"

	ideas := ExtractNovelIdeas(body)
	if len(ideas) != 2 {
		t.Fatalf("got %d ideas, want 2: %+v", len(ideas), ideas)
	}
	if ideas[0].Score != 5 {
		t.Errorf("score = %d, want clamp to 5", ideas[0].Score)
	}
	if ideas[1].Score != 0 {
		t.Errorf("score = %d, want clamp to 0", ideas[1].Score)
	}
}

func TestExtractNovelIdeasNoScoreSkipped(t *testing.T) {
	if ideas := ExtractNovelIdeas("- An idea without any score"); len(ideas) != 0 {
		t.Errorf("scoreless line produced %d ideas", len(ideas))
	}
}
