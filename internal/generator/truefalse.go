package generator

import (
	"strings"

	"github.com/quizforge/backend/internal/models"
)

var trueFalseOptions = []string{"True", "False"}

const (
	answerTrue  = 0
	answerFalse = 1
)

// TrueFalse samples facts and turns about half of them into false
// statements. The prompt is the statement itself.
func TrueFalse(in Input) []Candidate {
	limit := TrueFalseCounts.For(in.Difficulty)
	format := in.formatter()

	var out []Candidate
	seen := make(map[string]bool)
	for _, i := range shuffled(in.Rand, indexRange(len(in.Facts))) {
		if len(out) >= limit {
			break
		}
		fact := in.Facts[i]
		if strings.HasSuffix(fact.Text, "?") {
			continue
		}
		statement, answer := fact.Text, answerTrue
		if in.Rand.Float64() < 0.5 {
			if falsified, ok := FalseStatement(fact.Text, in.Rand); ok {
				statement, answer = falsified, answerFalse
			}
		}
		prompt := format.Question(statement)
		if seen[normalizeKey(prompt)] {
			continue
		}
		seen[normalizeKey(prompt)] = true
		out = append(out, Candidate{
			Prompt:     prompt,
			Options:    append([]string(nil), trueFalseOptions...),
			Correct:    []int{answer},
			Type:       models.QuestionSingle,
			Difficulty: in.Difficulty,
			Family:     FamilyTrueFalse,
			Subject:    fact.Subject,
		})
	}
	return out
}

func isTrueFalsePair(options []string) bool {
	return len(options) == 2 && options[0] == trueFalseOptions[0] && options[1] == trueFalseOptions[1]
}
