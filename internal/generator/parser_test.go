package generator

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "One sentence here. Another one! A third?", []string{"One sentence here.", "Another one!", "A third?"}},
		{"abbreviation", "Dr. Smith arrived early. He left at noon.", []string{"Dr. Smith arrived early.", "He left at noon."}},
		{"initials", "J. R. Tolkien wrote books. They sold well.", []string{"J. R. Tolkien wrote books.", "They sold well."}},
		{"e.g.", "Use fruit, e.g. apples or pears. Then rest.", []string{"Use fruit, e.g. apples or pears.", "Then rest."}},
		{"decimal", "Pi is 3.14 roughly. Done now.", []string{"Pi is 3.14 roughly.", "Done now."}},
		{"paragraphs", "First part without stop\n\nSecond part.", []string{"First part without stop", "Second part."}},
		{"newline", "A line\ncontinues here.", []string{"A line continues here."}},
	}

	for _, tt := range tests {
		if got := splitSentences(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: splitSentences = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := collapseWhitespace("  a  b\n\tc  "); got != "a b c" {
		t.Errorf("collapseWhitespace = %q", got)
	}
}

func TestProperNouns(t *testing.T) {
	got := properNouns("The theory of Charles Darwin changed biology. Evolution followed.")
	want := []string{"Charles", "Darwin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("properNouns = %v, want %v", got, want)
	}
}

func TestCapitalizeAndLower(t *testing.T) {
	if got := capitalizeFirst("élan vital"); got != "Élan vital" {
		t.Errorf("capitalizeFirst = %q", got)
	}
	if got := lowerFirst("The cell"); got != "the cell" {
		t.Errorf("lowerFirst = %q", got)
	}
	if got := lowerFirst("DNA strands"); got != "DNA strands" {
		t.Errorf("lowerFirst should keep acronyms, got %q", got)
	}
}
