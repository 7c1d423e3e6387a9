package generator

import "fmt"

var noDifferenceTemplates = []string{
	"There is no significant difference between %s and %s",
	"%s and %s are functionally identical",
	"%s has never been compared directly with %s",
	"%s and %s behave the same under all conditions",
}

// ComparisonMCQ builds questions from comparison sentences. It is only run
// when the other generators come up short.
func ComparisonMCQ(in Input) []Candidate {
	limit := ComparisonCounts.For(in.Difficulty)
	format := in.formatter()

	type comparison struct {
		sentence string
		match    Match
	}
	var comps []comparison
	seen := make(map[string]bool)
	for _, s := range in.sentences() {
		if len(s) < 30 || len(s) > 300 {
			continue
		}
		m, ok := ComparisonRule.Match(s)
		if !ok || seen[normalizeKey(s)] {
			continue
		}
		seen[normalizeKey(s)] = true
		comps = append(comps, comparison{sentence: trimTerminal(s), match: m})
	}

	var out []Candidate
	for i, c := range comps {
		if len(out) >= limit {
			break
		}
		a, b := c.match.Subject, c.match.Object

		var distractors []string
		for j, o := range comps {
			if j == i || len(distractors) == 2 {
				continue
			}
			if Similarity(o.sentence, c.sentence) < in.Tuning.DistractorSimilarity {
				distractors = append(distractors, o.sentence)
			}
		}
		for _, t := range shuffled(in.Rand, noDifferenceTemplates) {
			if len(distractors) == 3 {
				break
			}
			distractors = append(distractors, fmt.Sprintf(t, a, b))
		}

		set := NewOptionSet(a, format)
		if !set.Add(c.sentence) {
			continue
		}
		for _, d := range distractors {
			set.Add(d)
		}
		set.Dedupe(0)
		set.PadToCount(4)

		prompt := buildPrompt(FamilyComparison, in.Difficulty, i, promptSubject(a), promptSubject(b))
		out = append(out, singleChoice(in, prompt, set, FamilyComparison, a))
	}
	return out
}
