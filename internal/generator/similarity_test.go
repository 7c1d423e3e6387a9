package generator

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b     string
		min, max float64
	}{
		{"The cell divides", "The cell divides", 1, 1},
		{"apples and pears", "rivers and lakes", 0.1, 0.3},
		{"alpha beta", "gamma delta", 0, 0},
		{"The process takes 5 minutes.", "The process takes 8 minutes", 0.6, 0.7},
		{"", "", 1, 1},
	}

	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if got < tt.min-1e-9 || got > tt.max+1e-9 {
			t.Errorf("Similarity(%q, %q) = %f, want in [%f, %f]", tt.a, tt.b, got, tt.min, tt.max)
		}
		if back := Similarity(tt.b, tt.a); math.Abs(back-got) > 1e-9 {
			t.Errorf("Similarity is not symmetric for %q / %q", tt.a, tt.b)
		}
	}
}

func TestKeyPhraseOverlap(t *testing.T) {
	got := keyPhraseOverlap("Mitochondria produce cellular energy", "Energy is produced by mitochondria in cellular respiration")
	// mitochondria, cellular, energy hit; produce does not
	if math.Abs(got-0.75) > 1e-9 {
		t.Errorf("keyPhraseOverlap = %f, want 0.75", got)
	}
	if keyPhraseOverlap("a an the", "anything") != 0 {
		t.Error("no content words should give 0")
	}
}

func TestSharesPhrase(t *testing.T) {
	ignore := trigrams("the water cycle process")
	if !sharesPhrase("Evaporation moves water vapor upward", "Condensation moves water vapor downward", nil) {
		t.Error("expected a shared phrase")
	}
	if sharesPhrase("Water cycle process begins with evaporation", "Water cycle process ends with rain", ignore) {
		t.Error("subject phrases should be ignored")
	}
}
