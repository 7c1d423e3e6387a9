package generator

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/quizforge/backend/internal/models"
)

const msqOptionCount = 4

var msqFillers = []string{
	"Manual verification",
	"Random sampling",
	"External auditing",
	"Unrelated background tasks",
	"Periodic rebooting",
	"Decorative formatting",
}

// MultiSelect builds select-all-that-apply questions from enumerations. One
// to three listed items are correct; the other slots hold related terms,
// recombined items or generic fillers, never an unsampled listed item.
func MultiSelect(in Input) []Candidate {
	limit := MSQCounts.For(in.Difficulty)
	format := in.formatter()
	sentences := in.sentences()

	var lists []Match
	seen := make(map[string]bool)
	for _, s := range sentences {
		m, ok := ListRule.Match(s)
		if !ok || seen[normalizeKey(m.Subject)] {
			continue
		}
		seen[normalizeKey(m.Subject)] = true
		lists = append(lists, m)
	}

	var out []Candidate
	for i, m := range lists {
		if len(out) >= limit {
			break
		}
		k := 1 + in.Rand.Intn(min(3, len(m.Items)))
		correct := shuffled(in.Rand, m.Items)[:k]

		excluded := lo.Map(m.Items, func(it string, _ int) string { return normalizeKey(it) })
		var incorrect []string
		for _, cand := range msqIncorrectPool(in, lists, i, sentences) {
			if len(incorrect) == msqOptionCount-k {
				break
			}
			key := normalizeKey(cand)
			if len(cand) < 5 || slices.Contains(excluded, key) {
				continue
			}
			if lo.SomeBy(m.Items, func(it string) bool { return Similarity(it, cand) > in.Tuning.AnswerMatchSimilarity }) {
				continue
			}
			excluded = append(excluded, key)
			incorrect = append(incorrect, cand)
		}

		set := NewOptionSet(m.Subject, format)
		for _, c := range correct {
			set.Add(c)
		}
		if set.Len() != k {
			continue
		}
		for _, c := range incorrect {
			set.Add(c)
		}
		set.Dedupe(indexRange(k)...)
		set.PadToCount(msqOptionCount)

		options := shuffled(in.Rand, set.Items())
		answer := locateAnswers(options, set.Items()[:k], in.Tuning)
		if len(answer) != k {
			continue
		}
		out = append(out, Candidate{
			Prompt:     format.Question(buildPrompt(FamilyMSQ, in.Difficulty, i, msqSubject(m.Subject, sentences))),
			Options:    options,
			Correct:    answer,
			Type:       models.QuestionMultiple,
			Difficulty: in.Difficulty,
			Family:     FamilyMSQ,
			Subject:    m.Subject,
		})
	}
	return out
}

// msqIncorrectPool orders the sources of incorrect items: items of other
// enumerations, terms co-occurring with the subject, recombinations of the
// list's own items, and generic fillers.
func msqIncorrectPool(in Input, lists []Match, self int, sentences []string) []string {
	var related []string
	for j, other := range lists {
		if j != self {
			related = append(related, other.Items...)
		}
	}

	subject := strings.ToLower(lists[self].Subject)
	itemWords := make(map[string]bool)
	for _, it := range lists[self].Items {
		for _, w := range words(it) {
			itemWords[w] = true
		}
	}
	for _, w := range words(subject) {
		itemWords[w] = true
	}
	for _, s := range sentences {
		if !strings.Contains(strings.ToLower(s), subject) {
			continue
		}
		for _, w := range contentWords(s) {
			if !itemWords[w] && isTermLike(w) {
				related = append(related, w)
			}
		}
	}
	related = lo.Uniq(related)

	var recombined []string
	items := lists[self].Items
	for a := range items {
		for b := range items {
			if a == b || wordCount(items[a]) < 2 || wordCount(items[b]) < 2 {
				continue
			}
			fa, fb := strings.Fields(items[a]), strings.Fields(items[b])
			recombined = append(recombined, fa[0]+" "+fb[len(fb)-1])
		}
	}

	pool := shuffled(in.Rand, related)
	pool = append(pool, shuffled(in.Rand, recombined)...)
	return append(pool, shuffled(in.Rand, msqFillers)...)
}

// locateAnswers maps each correct item to its index in the shuffled options
// by normalized text, falling back to the most similar option above the
// answer-match threshold.
func locateAnswers(options, correct []string, t Tuning) []int {
	var idx []int
	for _, c := range correct {
		at := slices.IndexFunc(options, func(o string) bool { return normalizeKey(o) == normalizeKey(c) })
		if at < 0 {
			best := 0.0
			for j, o := range options {
				if sim := Similarity(o, c); sim > t.AnswerMatchSimilarity && sim > best {
					at, best = j, sim
				}
			}
		}
		if at >= 0 && !slices.Contains(idx, at) {
			idx = append(idx, at)
		}
	}
	slices.Sort(idx)
	return idx
}

var listCueWords = map[string]bool{
	"include": true, "includes": true, "including": true, "such": true, "following": true,
	"several": true, "various": true, "types": true, "kinds": true, "consist": true,
	"consists": true, "comprise": true, "comprises": true, "composed": true, "namely": true,
}

// isTermLike keeps plausible noun terms and drops verbs, adverbs and numbers.
func isTermLike(w string) bool {
	if len(w) < 5 || hasNumber(w) || listCueWords[w] || indicatorVerbs[w] || hedgeWords[w] {
		return false
	}
	return !strings.HasSuffix(w, "ly") && !strings.HasSuffix(w, "ed")
}

// msqSubject renders a list subject for use mid-prompt. A sentence-initial
// capital is dropped unless the subject reads as a proper noun: an acronym,
// a multi-word name, or a word the text also capitalizes mid-sentence.
func msqSubject(subject string, sentences []string) string {
	if strings.TrimSpace(subject) == "" {
		return promptSubject(subject)
	}
	subject = promptSubject(subject)
	if stripArticle(subject) != subject {
		return subject
	}
	first, _, _ := strings.Cut(subject, " ")
	if first == strings.ToUpper(first) || twoCapsPattern.MatchString(subject) || len(properNouns(subject)) > 0 {
		return subject
	}
	if slices.Contains(properNouns(strings.Join(sentences, " ")), first) {
		return subject
	}
	return "the " + lowerFirst(subject)
}
