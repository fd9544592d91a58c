package extract

import (
	"reflect"
	"testing"
)

func TestExtractListItems(t *testing.T) {
	body := "- First assumption → reality check\n" +
		"* Second item\n" +
		"1. Numbered item\n" +
		"not a list line\n" +
		"• Bulleted item\n"

	want := []string{
		"First assumption → reality check",
		"Second item",
		"Numbered item",
		"Bulleted item",
	}
	if got := ExtractListItems(body); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractListItems = %v, want %v", got, want)
	}
}

func TestExtractListItemsEmptyBody(t *testing.T) {
	if got := ExtractListItems(""); len(got) != 0 {
		t.Errorf("empty body produced %d items", len(got))
	}
}
