package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tubedigest/tubedigest/pkg/types"
)

var (
	numberedLineRegex  = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
	indentedDescRegex  = regexp.MustCompile(`^\s*[-–•*]\s*(.+)$`)
	boldTitleRegex     = regexp.MustCompile(`^\*\*(.+)\*\*$`)
	tableHeaderKeyword = regexp.MustCompile(`(?i)\b(step|principle|framework)`)
)

// ExtractFrameworks parses named frameworks from a section body. Three
// strategies are tried in order: markdown table rows, a numbered list with
// indented description lines, and standalone bold titles.
func ExtractFrameworks(body string) []types.Framework {
	lines := strings.Split(body, "\n")

	if frameworks := frameworksFromTable(lines); len(frameworks) > 0 {
		return frameworks
	}
	if frameworks := frameworksFromNumberedList(lines); len(frameworks) > 0 {
		return frameworks
	}
	return frameworksFromBoldTitles(lines)
}

// frameworksFromTable handles the table layout: a header row carrying one of
// the recognizable keywords, a separator row, then one framework per row.
// The first non-numeric cell is the name; remaining cells joined with " - "
// form the description.
func frameworksFromTable(lines []string) []types.Framework {
	var frameworks []types.Framework
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
			if tableHeaderKeyword.MatchString(line) {
				inTable = true
			}
			continue
		}

		cells := splitTableRow(line)
		if len(cells) == 0 {
			continue
		}

		nameIdx := -1
		for i, cell := range cells {
			if !isNumericCell(cell) {
				nameIdx = i
				break
			}
		}
		if nameIdx == -1 {
			continue
		}

		name := cells[nameIdx]
		rest := cells[nameIdx+1:]
		frameworks = append(frameworks, types.Framework{
			Name:        name,
			Description: strings.Join(rest, " - "),
		})
	}

	return frameworks
}

// frameworksFromNumberedList handles "N. Title" lines, where the title may
// itself be "Name: description". Indented bullet or dash lines that follow
// extend the open framework's description, space-joined.
func frameworksFromNumberedList(lines []string) []types.Framework {
	var frameworks []types.Framework
	open := -1

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if matches := numberedLineRegex.FindStringSubmatch(trimmed); matches != nil {
			title := matches[2]
			name, description := title, ""
			if idx := strings.Index(title, ":"); idx != -1 {
				name = strings.TrimSpace(title[:idx])
				description = strings.TrimSpace(title[idx+1:])
			}
			frameworks = append(frameworks, types.Framework{Name: name, Description: description})
			open = len(frameworks) - 1
			continue
		}

		if open == -1 {
			continue
		}
		if matches := indentedDescRegex.FindStringSubmatch(line); matches != nil {
			fw := &frameworks[open]
			if fw.Description != "" {
				fw.Description += " "
			}
			fw.Description += strings.TrimSpace(matches[1])
		}
	}

	return frameworks
}

// frameworksFromBoldTitles is the last-resort strategy: a standalone
// "**Title**" line opens a name-only framework and plain lines after it
// accumulate into the description.
func frameworksFromBoldTitles(lines []string) []types.Framework {
	var frameworks []types.Framework
	open := -1

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if matches := boldTitleRegex.FindStringSubmatch(trimmed); matches != nil {
			frameworks = append(frameworks, types.Framework{Name: strings.TrimSpace(matches[1])})
			open = len(frameworks) - 1
			continue
		}

		if open != -1 {
			fw := &frameworks[open]
			if fw.Description != "" {
				fw.Description += " "
			}
			fw.Description += trimmed
		}
	}

	return frameworks
}

func splitTableRow(line string) []string {
	var cells []string
	for _, cell := range strings.Split(line, "|") {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

func isTableSeparator(line string) bool {
	cleaned := strings.NewReplacer("|", "", "-", "", ":", "", " ", "").Replace(line)
	return strings.HasPrefix(line, "|") && cleaned == ""
}

func isNumericCell(cell string) bool {
	cell = strings.TrimSuffix(strings.TrimSpace(cell), ".")
	if cell == "" {
		return false
	}
	_, err := strconv.Atoi(cell)
	return err == nil
}
