package generator

import (
	"strings"
	"testing"

	"github.com/quizforge/backend/internal/models"
)

func TestGetStems(t *testing.T) {
	families := []Family{FamilyFactual, FamilyDefinition, FamilyComparison, FamilyMSQ, FamilyExam}
	for _, f := range families {
		for _, d := range []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
			stems := GetStems(f, d)
			if f == FamilyFactual && d == models.DifficultyEasy {
				if len(stems) != 0 {
					t.Errorf("easy factual prompts are built from the sentence, got stems %v", stems)
				}
				continue
			}
			if len(stems) == 0 {
				t.Errorf("no stems for %s/%s", f, d)
			}
			for _, s := range stems {
				if !strings.HasSuffix(s, "?") && !strings.HasSuffix(s, ".") {
					t.Errorf("stem %q lacks terminal punctuation", s)
				}
			}
		}
	}
}

func TestEasyFactualPrompt(t *testing.T) {
	tests := []struct {
		subject, predicate, want string
	}{
		{"Photosynthesis", "is", "What is Photosynthesis?"},
		{"The mitochondria", "are", "What are the mitochondria?"},
		{"The Calvin Cycle", "produces", "What does the Calvin Cycle produce?"},
		{"Enzymes", "speed up", "What do Enzymes speed up?"},
		{"The cell", "has", "What does the cell have?"},
		{"Plants", "can", "What can Plants do?"},
		{"Mendel", "had published", "What did Mendel have published?"},
		{"Water", "", "What is Water?"},
	}
	for _, tt := range tests {
		if got := easyFactualPrompt(tt.subject, tt.predicate); got != tt.want {
			t.Errorf("easyFactualPrompt(%q, %q) = %q, want %q", tt.subject, tt.predicate, got, tt.want)
		}
	}
}

func TestBaseForm(t *testing.T) {
	for in, want := range map[string]string{
		"has":      "have",
		"carries":  "carry",
		"passes":   "pass",
		"catches":  "catch",
		"produces": "produce",
		"converts": "convert",
		"process":  "process",
		"run":      "run",
	} {
		if got := baseForm(in); got != want {
			t.Errorf("baseForm(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPromptSubject(t *testing.T) {
	for in, want := range map[string]string{
		"The Calvin Cycle": "the Calvin Cycle",
		"An enzyme":        "an enzyme",
		"DNA":              "DNA",
		"  ":               "this topic",
	} {
		if got := promptSubject(in); got != want {
			t.Errorf("promptSubject(%q) = %q, want %q", in, got, want)
		}
	}
}
