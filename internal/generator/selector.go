package generator

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/quizforge/backend/internal/models"
)

// quota is a family's share of the quiz, in percent of the budget.
type quota struct {
	family  Family
	percent int
}

var familyQuotas = []quota{
	{FamilyExam, 50},
	{FamilyMSQ, 25},
	{FamilyFactual, 25},
}

// Select validates the candidate pool, ranks it, and trims it to the
// difficulty's budget while keeping every question family represented.
// Questions come back in ranked order with ids 1..N.
func Select(candidates []Candidate, difficulty models.Difficulty, tuning Tuning) []models.Question {
	seen := make(map[string]bool)
	var pool []Candidate
	for _, c := range candidates {
		valid, err := ValidateCandidate(c, tuning)
		if err != nil {
			continue
		}
		key := normalizeKey(valid.Prompt)
		if seen[key] {
			continue
		}
		seen[key] = true
		pool = append(pool, valid)
	}

	slices.SortStableFunc(pool, compareCandidates)

	budget := difficulty.QuestionBudget()
	quotas := allocate(budget)
	picked := make([]bool, len(pool))
	count := 0
	for _, q := range slices.Concat(familyQuotas, []quota{{family: FamilyTrueFalse}}) {
		taken := 0
		for i, c := range pool {
			if taken >= quotas[q.family] || count >= budget {
				break
			}
			if !picked[i] && c.Family.quotaFamily() == q.family {
				picked[i] = true
				taken++
				count++
			}
		}
	}
	for i := range pool {
		if count >= budget {
			break
		}
		if !picked[i] {
			picked[i] = true
			count++
		}
	}

	format := NewFormatter(tuning)
	selected := lo.Filter(pool, func(_ Candidate, i int) bool { return picked[i] })
	return lo.Map(selected, func(c Candidate, i int) models.Question {
		return toQuestion(c, i+1, format)
	})
}

// allocate splits the budget across families. True/false takes whatever the
// percentage quotas leave, and at least one slot.
func allocate(budget int) map[Family]int {
	out := make(map[Family]int, len(familyQuotas)+1)
	used := 0
	for _, q := range familyQuotas {
		out[q.family] = budget * q.percent / 100
		used += out[q.family]
	}
	out[FamilyTrueFalse] = max(1, budget-used)
	return out
}

// compareCandidates orders multi-select first, then by concrete detail in
// the prompt, then by prompt length, longest first.
func compareCandidates(a, b Candidate) int {
	am, bm := a.Type == models.QuestionMultiple, b.Type == models.QuestionMultiple
	if am != bm {
		if am {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(DetailScore(b.Prompt), DetailScore(a.Prompt)); c != 0 {
		return c
	}
	return cmp.Compare(len(b.Prompt), len(a.Prompt))
}

func toQuestion(c Candidate, id int, format Formatter) models.Question {
	options := c.Options
	if !isTrueFalsePair(options) {
		options = lo.Map(options, func(o string, _ int) string { return format.Option(o) })
	}
	answer := models.SingleAnswer(c.Correct[0])
	if c.Type == models.QuestionMultiple {
		answer = models.MultipleAnswer(c.Correct)
	}
	return models.Question{
		ID:         id,
		Question:   format.Question(c.Prompt),
		Options:    options,
		Answer:     answer,
		Type:       c.Type,
		Difficulty: c.Difficulty,
	}
}
