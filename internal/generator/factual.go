package generator

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/quizforge/backend/internal/models"
)

// maxSubjectRepeats caps questions on a subject that recurs across facts.
const (
	maxSubjectRepeats    = 3
	frequentSubjectFacts = 3
)

// FactualMCQ asks for the complement of a fact's subject/verb/complement
// split. Facts with concrete detail go first.
func FactualMCQ(in Input) []Candidate {
	limit := FactualCounts.For(in.Difficulty)
	synth := in.synthesizer()
	format := in.formatter()

	order := indexRange(len(in.Facts))
	slices.SortStableFunc(order, func(a, b int) int {
		return FactScore(in.Facts[b].Text) - FactScore(in.Facts[a].Text)
	})

	used := make(map[string]int)
	var out []Candidate
	for _, i := range order {
		if len(out) >= limit {
			break
		}
		fact := in.Facts[i]
		m, ok := factualRules.First(fact.Text)
		if !ok {
			continue
		}
		key := normalizeKey(stripArticle(m.Subject))
		allowed := 1
		if subjectFrequency(in.Facts, m.Subject) >= frequentSubjectFacts {
			allowed = maxSubjectRepeats
		}
		if used[key] >= allowed {
			continue
		}

		var prompt string
		if in.Difficulty == models.DifficultyEasy {
			prompt = easyFactualPrompt(m.Subject, m.Predicate)
		} else {
			prompt = buildPrompt(FamilyFactual, in.Difficulty, 0, promptSubject(m.Subject))
		}

		set := NewOptionSet(m.Subject, format)
		if !set.Add(m.Object) {
			continue
		}
		pool := lo.Filter(factTexts(in.Facts, i), func(t string, _ int) bool {
			return !strings.Contains(strings.ToLower(t), strings.ToLower(m.Subject))
		})
		for _, d := range synth.Distractors(DistractorRequest{
			Correct:    m.Object,
			Subject:    m.Subject,
			Pool:       pool,
			Count:      3,
			Difficulty: in.Difficulty,
		}) {
			set.Add(d)
		}
		set.Dedupe(0)
		set.PadToCount(4)

		used[key]++
		out = append(out, singleChoice(in, prompt, set, FamilyFactual, m.Subject))
	}
	return out
}

func subjectFrequency(facts []Fact, subject string) int {
	needle := strings.ToLower(stripArticle(subject))
	if needle == "" {
		return 0
	}
	return lo.CountBy(facts, func(f Fact) bool {
		return strings.Contains(strings.ToLower(f.Text), needle)
	})
}
