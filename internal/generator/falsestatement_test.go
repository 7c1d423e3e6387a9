package generator

import (
	"strings"
	"testing"
)

func TestNegateStatement(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Water is a liquid at room temperature", "Water is not a liquid at room temperature"},
		{"Birds can fly long distances", "Birds cannot fly long distances"},
		{"Penguins cannot fly at all", "Penguins can fly at all"},
		{"Fish do not breathe air", "Fish do breathe air"},
	}

	for _, tt := range tests {
		got, ok := negateStatement(tt.in, nil)
		if !ok || got != tt.want {
			t.Errorf("negateStatement(%q) = %q, %v; want %q", tt.in, got, ok, tt.want)
		}
	}
}

func TestAntonymStatement(t *testing.T) {
	got, ok := antonymStatement("Prices increase during inflation", nil)
	if !ok || got != "Prices decrease during inflation" {
		t.Errorf("antonymStatement = %q, %v", got, ok)
	}
	got, ok = antonymStatement("Most mammals live on land", nil)
	if !ok || got != "Least mammals live on land" {
		t.Errorf("antonymStatement should keep capitalization, got %q", got)
	}
}

func TestReverseCopula(t *testing.T) {
	got, ok := reverseCopula("Paris is a city in northern France", nil)
	if !ok || got != "A city in northern France is Paris" {
		t.Errorf("reverseCopula = %q, %v", got, ok)
	}
	if _, ok := reverseCopula("It is a city", nil); ok {
		t.Error("pronoun subjects should not be reversed")
	}
}

func TestFalseStatement(t *testing.T) {
	statements := []string{
		"Photosynthesis is a biological process that converts light energy into chemical energy.",
		"The citric acid cycle was described by Hans Krebs in 1937.",
		"Birds can fly long distances.",
	}

	for _, s := range statements {
		for seed := int64(1); seed <= 8; seed++ {
			got, ok := FalseStatement(s, NewRand(seed))
			if !ok {
				t.Errorf("seed %d: no false statement for %q", seed, s)
				continue
			}
			if normalizeKey(got) == normalizeKey(s) {
				t.Errorf("seed %d: false statement equals the original %q", seed, s)
			}
			if !strings.HasSuffix(got, ".") {
				t.Errorf("seed %d: %q should end with a period", seed, got)
			}
		}
	}

	if _, ok := FalseStatement("Birds sing loudly at dawn", NewRand(1)); ok {
		t.Error("expected no transform to apply")
	}
}
