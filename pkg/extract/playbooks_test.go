package extract

import (
	"testing"
)

func TestExtractPlaybooksIfThen(t *testing.T) {
	body := "- IF a lead goes cold, THEN send the case-study email.\n" +
		"IF traffic drops, THEN check indexing first\n"

	playbooks := ExtractPlaybooks(body)
	if len(playbooks) != 2 {
		t.Fatalf("got %d playbooks, want 2", len(playbooks))
	}
	if playbooks[0].Trigger != "a lead goes cold" {
		t.Errorf("trigger = %q", playbooks[0].Trigger)
	}
	if playbooks[0].Action != "send the case-study email" {
		t.Errorf("action = %q, trailing period must be stripped", playbooks[0].Action)
	}
	if playbooks[1].Trigger != "traffic drops" {
		t.Errorf("unbulleted trigger = %q", playbooks[1].Trigger)
	}
}

func TestExtractPlaybooksArrow(t *testing.T) {
	body := "- When the demo stalls → Do switch to the recorded version\n" +
		"- Review lands below 4 stars -> respond within a day\n"

	playbooks := ExtractPlaybooks(body)
	if len(playbooks) != 2 {
		t.Fatalf("got %d playbooks, want 2", len(playbooks))
	}
	if playbooks[0].Trigger != "the demo stalls" {
		t.Errorf("trigger = %q, When prefix must be stripped", playbooks[0].Trigger)
	}
	if playbooks[0].Action != "switch to the recorded version" {
		t.Errorf("action = %q, Do prefix must be stripped", playbooks[0].Action)
	}
	if playbooks[1].Trigger != "Review lands below 4 stars" {
		t.Errorf("ascii arrow trigger = %q", playbooks[1].Trigger)
	}
}

func TestExtractPlaybooksTable(t *testing.T) {
	body := "| Trigger | Action |\n" +
		"|---------|--------|\n" +
		"| Lead goes cold | Send the case-study email |\n"

	playbooks := ExtractPlaybooks(body)
	if len(playbooks) != 1 {
		t.Fatalf("got %d playbooks, want 1", len(playbooks))
	}
	if playbooks[0].Trigger != "Lead goes cold" || playbooks[0].Action != "Send the case-study email" {
		t.Errorf("playbook = %+v", playbooks[0])
	}
}

func TestExtractPlaybooksNoMatch(t *testing.T) {
	if got := ExtractPlaybooks("- plain bullet without any delimiter"); len(got) != 0 {
		t.Errorf("got %d playbooks from a plain bullet", len(got))
	}
}
