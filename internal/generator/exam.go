package generator

import (
	"slices"
	"strings"

	"github.com/quizforge/backend/internal/models"
)

// ExamStyle asks about the highest scoring facts with templated stems. The
// correct option is the formatted fact itself.
func ExamStyle(in Input) []Candidate {
	limit := ExamCounts.For(in.Difficulty)
	synth := in.synthesizer()
	format := in.formatter()

	order := indexRange(len(in.Facts))
	slices.SortStableFunc(order, func(a, b int) int {
		return ExamScore(in.Facts[b].Text) - ExamScore(in.Facts[a].Text)
	})

	var out []Candidate
	for _, i := range order {
		if len(out) >= limit {
			break
		}
		fact := in.Facts[i]
		if strings.HasSuffix(fact.Text, "?") {
			continue
		}
		topic := examTopic(fact, in.Chunks)

		set := NewOptionSet(topic, format)
		if !set.Add(fact.Text) {
			continue
		}
		for _, d := range synth.Distractors(DistractorRequest{
			Correct:    trimTerminal(fact.Text),
			Statement:  true,
			Subject:    topic,
			Pool:       factTexts(in.Facts, i),
			Count:      3,
			Difficulty: in.Difficulty,
		}) {
			set.Add(d)
		}
		set.Dedupe(0)
		set.PadToCount(4)

		correct := set.Items()[0]
		options := shuffled(in.Rand, set.Items())
		answer := locateAnswer(options, correct, in.Tuning, in.Rand)

		prompt := buildPrompt(FamilyExam, in.Difficulty, len(out), promptSubject(topic))
		out = append(out, Candidate{
			Prompt:     format.Question(prompt),
			Options:    options,
			Correct:    []int{answer},
			Type:       models.QuestionSingle,
			Difficulty: in.Difficulty,
			Family:     FamilyExam,
			Subject:    topic,
		})
	}
	return out
}

// locateAnswer finds the correct answer in shuffled options: exact text,
// then key-phrase overlap, then lexical similarity. When nothing matches a
// random slot is overwritten so the answer is always present.
func locateAnswer(options []string, correct string, t Tuning, rng Rand) int {
	key := normalizeKey(correct)
	if at := slices.IndexFunc(options, func(o string) bool { return normalizeKey(o) == key }); at >= 0 {
		return at
	}
	best, at := 0.0, -1
	for j, o := range options {
		if ov := keyPhraseOverlap(correct, o); ov >= t.KeyPhraseOverlap && ov > best {
			best, at = ov, j
		}
	}
	if at >= 0 {
		return at
	}
	best = 0
	for j, o := range options {
		if sim := Similarity(correct, o); sim > t.AnswerMatchSimilarity && sim > best {
			best, at = sim, j
		}
	}
	if at >= 0 {
		return at
	}
	at = rng.Intn(len(options))
	options[at] = correct
	return at
}

// examTopic names what an exam question is about: the fact's subject, the
// chunk heading, or its first proper noun.
func examTopic(f Fact, chunks []Chunk) string {
	if f.Subject != "" {
		return f.Subject
	}
	if f.Chunk >= 0 && f.Chunk < len(chunks) && chunks[f.Chunk].Heading != "" {
		return strings.ToLower(chunks[f.Chunk].Heading)
	}
	if pn := properNouns(f.Text); len(pn) > 0 {
		return pn[0]
	}
	if cw := contentWords(f.Text); len(cw) > 0 {
		return cw[0]
	}
	return "this topic"
}
