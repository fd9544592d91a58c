package extract

import (
	"reflect"
	"testing"
)

func TestExtractVideoContext(t *testing.T) {
	body := "- **Title**: How Local SEO Actually Works\n" +
		"- **Speakers**: {Rand Fishkin, Darren Shaw}\n" +
		"- **Duration**: 48:12\n" +
		"- **Channel**: Whiteboard Friday\n" +
		"- **Synopsis**: A practical walkthrough of map-pack ranking.\n" +
		"- **Video URL**: https://example.com/watch?v=abc123\n" +
		"- **Language**: de\n" +
		"- **Generated On**: 2026-08-01\n" +
		"- **Version**: v2.3\n"

	vc := ExtractVideoContext(body)

	if vc.Title != "How Local SEO Actually Works" {
		t.Errorf("Title = %q", vc.Title)
	}
	if want := []string{"Rand Fishkin", "Darren Shaw"}; !reflect.DeepEqual(vc.Speakers, want) {
		t.Errorf("Speakers = %v, want %v", vc.Speakers, want)
	}
	if vc.Duration != "48:12" || vc.Channel != "Whiteboard Friday" {
		t.Errorf("Duration/Channel = %q / %q", vc.Duration, vc.Channel)
	}
	if vc.VideoURL != "https://example.com/watch?v=abc123" {
		t.Errorf("VideoURL = %q", vc.VideoURL)
	}
	if vc.Language != "de" || vc.Version != "v2.3" {
		t.Errorf("Language/Version = %q / %q", vc.Language, vc.Version)
	}
	if vc.GeneratedOn != "2026-08-01" {
		t.Errorf("GeneratedOn = %q", vc.GeneratedOn)
	}
}

func TestExtractVideoContextDefaults(t *testing.T) {
	vc := ExtractVideoContext("- **Title**: Untitled Talk\n")

	if vc.Language != "en" {
		t.Errorf("Language = %q, want default en", vc.Language)
	}
	if vc.Version != "v1.0" {
		t.Errorf("Version = %q, want default v1.0", vc.Version)
	}
	if vc.Speakers == nil || len(vc.Speakers) != 0 {
		t.Errorf("Speakers = %#v, want empty non-nil slice", vc.Speakers)
	}
}

func TestExtractVideoContextPlaceholderSpeakersDropped(t *testing.T) {
	vc := ExtractVideoContext("- **Speakers**: {Speaker A, Speaker B, Jane Doe}\n")

	if want := []string{"Jane Doe"}; !reflect.DeepEqual(vc.Speakers, want) {
		t.Errorf("Speakers = %v, want %v", vc.Speakers, want)
	}
}

func TestExtractVideoContextEmptyBody(t *testing.T) {
	vc := ExtractVideoContext("")
	if vc.Title != "" || vc.Language != "en" || vc.Version != "v1.0" {
		t.Errorf("empty body context = %+v", vc)
	}
}
