package extract

import (
	"regexp"
	"strings"

	"github.com/tubedigest/tubedigest/pkg/types"
)

// quizState is the state of the quiz line scanner.
type quizState int

const (
	quizIdle quizState = iota
	quizQuestionOpen
)

var (
	// "1. Q: question / A: answer" or "- Q: question | A: answer" on one line
	quizInlineRegex = regexp.MustCompile(`^(?:\d+\.\s*|[-–•*]\s*)?Q\d*:\s*(.+?)\s*[/|]\s*A\d*:\s*(.+)$`)
	// "Q1:", "Q:" or "N." opens a question
	quizQuestionRegex = regexp.MustCompile(`^(?:Q\d*:|\d+\.)\s*(.+)$`)
	// "A1:" or "A:" answers the open question
	quizAnswerRegex = regexp.MustCompile(`^A\d*:\s*(.+)$`)
	// a bare dash also answers while a question is open
	quizDashAnswerRegex = regexp.MustCompile(`^[-–•*]\s+(.+)$`)
)

// ExtractQuiz parses question/answer pairs with an explicit state machine.
// A question marker opens (or replaces) the current question and resets the
// answer buffer; answer lines fill the buffer; a complete pair is emitted on
// the next question marker or at end of input. Questions that never receive
// an answer are dropped.
func ExtractQuiz(body string) []types.QuizItem {
	var items []types.QuizItem

	state := quizIdle
	var question string
	var answer []string

	emit := func() {
		if state == quizQuestionOpen && question != "" && len(answer) > 0 {
			items = append(items, types.QuizItem{
				Question: question,
				Answer:   strings.Join(answer, " "),
			})
		}
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if matches := quizInlineRegex.FindStringSubmatch(line); matches != nil {
			emit()
			items = append(items, types.QuizItem{
				Question: strings.TrimSpace(matches[1]),
				Answer:   strings.TrimSpace(matches[2]),
			})
			state = quizIdle
			question, answer = "", nil
			continue
		}

		if matches := quizQuestionRegex.FindStringSubmatch(line); matches != nil {
			emit()
			state = quizQuestionOpen
			question = strings.TrimSpace(matches[1])
			answer = nil
			continue
		}

		if state != quizQuestionOpen {
			continue
		}

		if matches := quizAnswerRegex.FindStringSubmatch(line); matches != nil {
			answer = append(answer, strings.TrimSpace(matches[1]))
			continue
		}
		if matches := quizDashAnswerRegex.FindStringSubmatch(line); matches != nil {
			answer = append(answer, strings.TrimSpace(matches[1]))
		}
	}

	emit()
	return items
}
