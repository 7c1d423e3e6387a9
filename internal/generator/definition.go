package generator

import (
	"strings"

	"github.com/samber/lo"
)

// DefinitionMCQ asks for the definition of a subject found in a definition
// sentence. The correct option is the sentence itself; distractors are other
// definitions that neither name the subject nor resemble the answer.
func DefinitionMCQ(in Input) []Candidate {
	limit := DefinitionCounts.For(in.Difficulty)
	synth := in.synthesizer()
	format := in.formatter()

	type definition struct {
		sentence string
		subject  string
	}
	var defs []definition
	seen := make(map[string]bool)
	for _, s := range in.sentences() {
		m, ok := DefinitionRule.Match(s)
		if !ok {
			continue
		}
		key := normalizeKey(stripArticle(m.Subject))
		if seen[key] {
			continue
		}
		seen[key] = true
		defs = append(defs, definition{sentence: trimTerminal(s), subject: m.Subject})
	}

	var out []Candidate
	for i, d := range defs {
		if len(out) >= limit {
			break
		}
		subjectLower := strings.ToLower(stripArticle(d.subject))
		others := lo.Filter(defs, func(o definition, j int) bool {
			return j != i && !strings.Contains(strings.ToLower(o.sentence), subjectLower)
		})

		var chosen []string
		for _, o := range shuffled(in.Rand, others) {
			if len(chosen) == 3 {
				break
			}
			if Similarity(o.sentence, d.sentence) >= in.Tuning.DefinitionDistractorSimilarity {
				continue
			}
			if lo.SomeBy(chosen, func(c string) bool { return Similarity(c, o.sentence) >= in.Tuning.DistractorSimilarity }) {
				continue
			}
			chosen = append(chosen, o.sentence)
		}
		if len(chosen) < 3 {
			chosen = append(chosen, synth.Distractors(DistractorRequest{
				Correct:    d.sentence,
				Statement:  true,
				Subject:    d.subject,
				Pool:       lo.Map(others, func(o definition, _ int) string { return o.sentence }),
				Avoid:      chosen,
				Count:      3 - len(chosen),
				Difficulty: in.Difficulty,
			})...)
		}

		set := NewOptionSet(d.subject, format)
		if !set.Add(d.sentence) {
			continue
		}
		for _, c := range chosen {
			set.Add(c)
		}
		set.Dedupe(0)
		set.PadToCount(4)

		prompt := buildPrompt(FamilyDefinition, in.Difficulty, 0, promptSubject(d.subject))
		out = append(out, singleChoice(in, prompt, set, FamilyDefinition, d.subject))
	}
	return out
}
