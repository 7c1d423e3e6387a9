package generator

import (
	"errors"
	"testing"
)

func TestExtractFacts_Definitions(t *testing.T) {
	tuning := DefaultTuning()
	chunks, err := Segment(threeSectionDoc, tuning)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	facts, err := ExtractFacts(chunks, tuning)
	if err != nil {
		t.Fatalf("ExtractFacts: %v", err)
	}

	definitions := 0
	seen := make(map[string]bool)
	for _, f := range facts {
		if f.Kind == FactDefinition {
			definitions++
		}
		key := normalizeKey(f.Text)
		if seen[key] {
			t.Errorf("duplicate fact %q", f.Text)
		}
		seen[key] = true
	}
	if definitions < 3 {
		t.Errorf("expected at least 3 definition facts, got %d", definitions)
	}
	if len(facts) < tuning.MinFacts {
		t.Errorf("expected at least %d facts, got %d", tuning.MinFacts, len(facts))
	}
}

func TestExtractFacts_Insufficient(t *testing.T) {
	tuning := DefaultTuning()
	chunks, err := Segment(narrativeDoc, tuning)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	_, err = ExtractFacts(chunks, tuning)
	if !errors.Is(err, ErrInsufficientFacts) {
		t.Fatalf("expected ErrInsufficientFacts, got %v", err)
	}
}

func TestAcceptAssertion(t *testing.T) {
	tests := []struct {
		sentence string
		want     bool
	}{
		{"The citric acid cycle was described by Hans Krebs in 1937.", true},
		{"The process has three distinct stages in total.", true},
		{"This might be the most important system of all.", false},
		{"Why is the system so slow compared with others?", false},
		{"We walked along the river in the evening light.", false},
		{"Too short.", false},
	}

	for _, tt := range tests {
		if _, got := acceptAssertion(tt.sentence); got != tt.want {
			t.Errorf("acceptAssertion(%q) = %v, want %v", tt.sentence, got, tt.want)
		}
	}
}

func TestDropContainedFacts(t *testing.T) {
	facts := []Fact{
		{Text: "Paris is the capital of France."},
		{Text: "Paris is the capital of France and its largest city by population."},
		{Text: "Lyon is known for its cuisine."},
	}
	got := dropContainedFacts(facts, 1.3)
	if len(got) != 2 {
		t.Fatalf("expected 2 facts, got %d: %+v", len(got), got)
	}
	if got[0].Text != facts[1].Text || got[1].Text != facts[2].Text {
		t.Errorf("unexpected survivors: %+v", got)
	}

	// a near-equal superset stays
	close := []Fact{
		{Text: "Mount Everest is the highest mountain on Earth."},
		{Text: "Mount Everest is the highest mountain on Earth by elevation."},
	}
	if got := dropContainedFacts(close, 1.3); len(got) != 2 {
		t.Errorf("expected both facts to survive, got %d", len(got))
	}
}
