package extract

import (
	"regexp"
	"strings"

	"github.com/tubedigest/tubedigest/pkg/types"
)

var (
	playbookArrowRegex  = regexp.MustCompile(`^[-–•*]\s*(.+?)\s*(?:→|➔|->)\s*(.+)$`)
	playbookIfThenRegex = regexp.MustCompile(`(?i)^[-–•*]?\s*IF\s+(.+?),?\s+THEN\s+(.+?)\.?$`)
	triggerPrefixRegex  = regexp.MustCompile(`(?i)^(When|If)\s+`)
	actionPrefixRegex   = regexp.MustCompile(`(?i)^(Do|Then)\s+`)
	playbookTableHeader = regexp.MustCompile(`(?i)\btrigger\b`)
)

// ExtractPlaybooks parses trigger/action heuristics from a section body.
// A table with a "trigger" header column is preferred; otherwise each line
// is matched as "IF x, THEN y" or "- trigger → action".
func ExtractPlaybooks(body string) []types.Playbook {
	lines := strings.Split(body, "\n")

	if playbooks := playbooksFromTable(lines); len(playbooks) > 0 {
		return playbooks
	}

	var playbooks []types.Playbook
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if matches := playbookIfThenRegex.FindStringSubmatch(line); matches != nil {
			playbooks = append(playbooks, types.Playbook{
				Trigger: strings.TrimSpace(matches[1]),
				Action:  strings.TrimSpace(matches[2]),
			})
			continue
		}

		if matches := playbookArrowRegex.FindStringSubmatch(line); matches != nil {
			trigger := triggerPrefixRegex.ReplaceAllString(strings.TrimSpace(matches[1]), "")
			action := actionPrefixRegex.ReplaceAllString(strings.TrimSpace(matches[2]), "")
			playbooks = append(playbooks, types.Playbook{Trigger: trigger, Action: action})
		}
	}

	return playbooks
}

func playbooksFromTable(lines []string) []types.Playbook {
	var playbooks []types.Playbook
	inTable := false

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") {
			continue
		}
		if isTableSeparator(line) {
			continue
		}

		if !inTable {
			if playbookTableHeader.MatchString(line) {
				inTable = true
			}
			continue
		}

		cells := splitTableRow(line)
		if len(cells) < 2 {
			continue
		}
		playbooks = append(playbooks, types.Playbook{
			Trigger: cells[0],
			Action:  strings.Join(cells[1:], " "),
		})
	}

	return playbooks
}
