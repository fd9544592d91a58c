package extract

import (
	"reflect"
	"testing"

	"github.com/tubedigest/tubedigest/pkg/types"
)

func TestExtractFrameworksFromTable(t *testing.T) {
	body := "| Step | Name | Description |\n" +
		"|------|------|-------------|\n" +
		"| 1 | First Principles | Break problems down to basics |\n" +
		"| 2 | Inversion | Solve backwards |\n"

	frameworks := ExtractFrameworks(body)
	if len(frameworks) != 2 {
		t.Fatalf("got %d frameworks, want 2", len(frameworks))
	}
	if frameworks[0].Name != "First Principles" {
		t.Errorf("name = %q, numeric step cell must be skipped", frameworks[0].Name)
	}
	if frameworks[0].Description != "Break problems down to basics" {
		t.Errorf("description = %q", frameworks[0].Description)
	}
	if frameworks[1].Name != "Inversion" {
		t.Errorf("second name = %q", frameworks[1].Name)
	}
}

func TestExtractFrameworksFromNumberedList(t *testing.T) {
	body := "1. First Principles: Break problems down to basics\n" +
		"   - Question every assumption\n" +
		"2. Inversion: Solve backwards\n"

	frameworks := ExtractFrameworks(body)
	if len(frameworks) != 2 {
		t.Fatalf("got %d frameworks, want 2", len(frameworks))
	}
	want := types.Framework{
		Name:        "First Principles",
		Description: "Break problems down to basics Question every assumption",
	}
	if !reflect.DeepEqual(frameworks[0], want) {
		t.Errorf("frameworks[0] = %+v, want %+v", frameworks[0], want)
	}
}

func TestExtractFrameworksFromBoldTitles(t *testing.T) {
	body := "**Circle of Competence**\nKnow the edge of what you know.\nStay inside it.\n"

	frameworks := ExtractFrameworks(body)
	if len(frameworks) != 1 {
		t.Fatalf("got %d frameworks, want 1", len(frameworks))
	}
	if frameworks[0].Name != "Circle of Competence" {
		t.Errorf("name = %q", frameworks[0].Name)
	}
	if frameworks[0].Description != "Know the edge of what you know. Stay inside it." {
		t.Errorf("description = %q", frameworks[0].Description)
	}
}

func TestExtractFrameworksTableAndListEquivalent(t *testing.T) {
	table := "| Framework | Description |\n|---|---|\n| Inversion | Solve backwards |\n"
	list := "1. Inversion: Solve backwards\n"

	fromTable := ExtractFrameworks(table)
	fromList := ExtractFrameworks(list)
	if !reflect.DeepEqual(fromTable, fromList) {
		t.Errorf("table and list disagree: %+v vs %+v", fromTable, fromList)
	}
}

func TestExtractFrameworksNoMatch(t *testing.T) {
	if got := ExtractFrameworks("plain prose without structure"); len(got) != 0 {
		t.Errorf("prose produced %d frameworks", len(got))
	}
	if got := ExtractFrameworks(""); len(got) != 0 {
		t.Errorf("empty body produced %d frameworks", len(got))
	}
}
