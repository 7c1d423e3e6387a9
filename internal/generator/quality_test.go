package generator

import "testing"

func TestFactScore(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"The Calvin Cycle produces glucose from carbon dioxide in about 6 steps.", 7},
		{"The citric acid cycle was described by Hans Krebs in 1937.", 3 + 2 + 2},
		{"Enzymes speed up reactions.", 0},
		{"The treaty was signed in June 1848 by France.", 3 + 2 + 2 + 2},
	}
	for _, tt := range tests {
		if got := FactScore(tt.text); got != tt.want {
			t.Errorf("FactScore(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestExamScore(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Plants wilt because they lose water.", 4},
		{"An enzyme is a protein catalyst.", 3},
		{"Unlike mitosis, meiosis produces 4 cells.", 2 + 1 + 1},
		{"First the water boils. Then the steam rises.", 1},
	}
	for _, tt := range tests {
		if got := ExamScore(tt.text); got != tt.want {
			t.Errorf("ExamScore(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestDetailScore(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"What happened in March 1848 in Central Europe?", 3},
		{"What is photosynthesis?", 0},
		{"How many steps does the Calvin Cycle take?", 1},
	}
	for _, tt := range tests {
		if got := DetailScore(tt.text); got != tt.want {
			t.Errorf("DetailScore(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
