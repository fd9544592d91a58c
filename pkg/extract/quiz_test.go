package extract

import (
	"testing"

	"github.com/tubedigest/tubedigest/pkg/types"
)

func TestExtractQuizQuestionAnswerPairs(t *testing.T) {
	body := "Q1: What compounds faster than intensity?\n" +
		"A1: Consistency.\n" +
		"Q2: What should you check first when traffic drops?\n" +
		"A2: Indexing.\n"

	items := ExtractQuiz(body)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	want := types.QuizItem{Question: "What compounds faster than intensity?", Answer: "Consistency."}
	if items[0] != want {
		t.Errorf("items[0] = %+v, want %+v", items[0], want)
	}
	if items[1].Answer != "Indexing." {
		t.Errorf("items[1] = %+v", items[1])
	}
}

func TestExtractQuizTrailingUnansweredDropped(t *testing.T) {
	body := "Q: First question?\nA: First answer.\nQ: Dangling question?\n"

	items := ExtractQuiz(body)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1: %+v", len(items), items)
	}
	if items[0].Question != "First question?" {
		t.Errorf("items[0] = %+v", items[0])
	}
}

func TestExtractQuizNumberedQuestionsDashAnswers(t *testing.T) {
	body := "1. What is churn?\n- Customers lost in a period\n2. What is EEAT?\n- A quality signal\n"

	items := ExtractQuiz(body)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(items), items)
	}
	if items[0].Question != "What is churn?" || items[0].Answer != "Customers lost in a period" {
		t.Errorf("items[0] = %+v", items[0])
	}
}

func TestExtractQuizInlinePairs(t *testing.T) {
	body := "- Q: What is churn? / A: Customers lost in a period\n" +
		"1. Q: What is EEAT? | A: A quality signal\n"

	items := ExtractQuiz(body)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(items), items)
	}
	if items[0].Question != "What is churn?" || items[0].Answer != "Customers lost in a period" {
		t.Errorf("items[0] = %+v", items[0])
	}
}

func TestExtractQuizMultiLineAnswerJoined(t *testing.T) {
	body := "Q: Why does consistency win?\nA: It compounds.\n- Small gains stack.\n"

	items := ExtractQuiz(body)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Answer != "It compounds. Small gains stack." {
		t.Errorf("answer = %q, lines must be space-joined", items[0].Answer)
	}
}

func TestExtractQuizEmptyBody(t *testing.T) {
	if got := ExtractQuiz(""); len(got) != 0 {
		t.Errorf("empty body produced %d quiz items", len(got))
	}
}
