package generator

import (
	"regexp"
	"strings"
)

var (
	causalCues       = regexp.MustCompile(`(?i)\b(because|therefore|causes?|caused by|leads? to|results? in|due to|as a result|consequently)\b`)
	definitionalCues = regexp.MustCompile(`(?i)\b(is defined as|refers to|means|is an?|are)\b`)
	orderingCues     = regexp.MustCompile(`(?i)\b(first|second|third|then|next|finally|before|after|followed by)\b`)
	contrastCues     = regexp.MustCompile(`(?i)\b(however|but|although|whereas|unlike|in contrast|while)\b`)
)

// FactScore ranks facts for factual questions, favoring concrete detail.
//
// number +3, year +2, month +2, proper noun +1 each (max 3), length 60-150 +2
func FactScore(text string) int {
	score := 0
	if hasNumber(text) {
		score += 3
	}
	if yearPattern.MatchString(text) {
		score += 2
	}
	if monthPattern.MatchString(text) {
		score += 2
	}
	score += min(len(properNouns(text)), 3)
	if n := len(text); n >= 60 && n <= 150 {
		score += 2
	}
	return score
}

// ExamScore ranks facts for exam-style questions.
//
// causal +3, definitional +2, number +2, ordering +1, contrast +1, single sentence +1
func ExamScore(text string) int {
	score := 0
	if causalCues.MatchString(text) {
		score += 3
	}
	if definitionalCues.MatchString(text) {
		score += 2
	}
	if hasNumber(text) {
		score += 2
	}
	if orderingCues.MatchString(text) {
		score++
	}
	if contrastCues.MatchString(text) {
		score++
	}
	if len(splitSentences(text)) == 1 {
		score++
	}
	return score
}

// DetailScore counts concrete detail markers in a prompt: numbers, month
// names and runs of two capitalized words.
func DetailScore(text string) int {
	score := 0
	if hasNumber(text) {
		score++
	}
	if monthPattern.MatchString(text) {
		score++
	}
	if twoCapsPattern.MatchString(strings.TrimSpace(text)) {
		score++
	}
	return score
}
