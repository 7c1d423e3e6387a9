package generator

import (
	"reflect"
	"testing"
)

func TestDefinitionRule(t *testing.T) {
	tests := []struct {
		sentence string
		ok       bool
		subject  string
		object   string
	}{
		{"Paris is the capital of France.", true, "Paris", "the capital of France"},
		{"Osmosis refers to the movement of water across a membrane.", true, "Osmosis", "the movement of water across a membrane"},
		{"It is a large city in northern France.", false, "", ""},
		{"Paris is big.", false, "", ""},
	}

	for _, tt := range tests {
		m, ok := DefinitionRule.Match(tt.sentence)
		if ok != tt.ok {
			t.Errorf("DefinitionRule.Match(%q) ok = %v, want %v", tt.sentence, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if m.Subject != tt.subject || m.Object != tt.object {
			t.Errorf("DefinitionRule.Match(%q) = %q / %q, want %q / %q", tt.sentence, m.Subject, m.Object, tt.subject, tt.object)
		}
	}
}

func TestLinkingRule(t *testing.T) {
	m, ok := LinkingRule.Match("Photosynthesis converts light energy into chemical energy.")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Subject != "Photosynthesis" || m.Predicate != "converts" || m.Object != "light energy into chemical energy" {
		t.Errorf("unexpected split: %+v", m)
	}
}

func TestComparisonRule(t *testing.T) {
	tests := []struct {
		sentence string
		subject  string
		object   string
	}{
		{"Unlike mitosis, meiosis produces four genetically distinct cells.", "meiosis", "mitosis"},
		{"Compared to diesel engines, electric motors are far more efficient at low speeds.", "electric motors", "diesel engines"},
	}

	for _, tt := range tests {
		m, ok := ComparisonRule.Match(tt.sentence)
		if !ok {
			t.Errorf("ComparisonRule.Match(%q) did not match", tt.sentence)
			continue
		}
		if m.Subject != tt.subject || m.Object != tt.object {
			t.Errorf("ComparisonRule.Match(%q) = %q vs %q, want %q vs %q", tt.sentence, m.Subject, m.Object, tt.subject, tt.object)
		}
	}
}

func TestListRule(t *testing.T) {
	m, ok := ListRule.Match("The system includes caching, indexing, and compaction.")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Subject != "system" {
		t.Errorf("subject = %q, want %q", m.Subject, "system")
	}
	want := []string{"caching", "indexing", "compaction"}
	if !reflect.DeepEqual(m.Items, want) {
		t.Errorf("items = %v, want %v", m.Items, want)
	}

	if _, ok := ListRule.Match("The system includes caching."); ok {
		t.Error("a single item is not an enumeration")
	}
}

func TestRuleSetFirst(t *testing.T) {
	m, ok := factualRules.First("Water is a compound made of hydrogen and oxygen.")
	if !ok || m.Rule != "definition" {
		t.Errorf("expected the definition rule to win, got %+v", m)
	}
	m, ok = factualRules.First("The heart pumps blood and has four chambers.")
	if !ok || m.Rule != "linking" || m.Predicate != "has" {
		t.Errorf("expected the linking rule on %q, got %+v", "has", m)
	}
}
