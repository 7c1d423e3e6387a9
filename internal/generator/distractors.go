package generator

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/quizforge/backend/internal/models"
)

// DistractorRequest describes the options wanted for one question. Statement
// marks a correct answer that is a full sentence rather than a bare
// complement. Avoid lists options chosen elsewhere that new distractors must
// not resemble.
type DistractorRequest struct {
	Correct    string
	Statement  bool
	Subject    string
	Pool       []string
	Avoid      []string
	Count      int
	Difficulty models.Difficulty
}

type distractorStrategy struct {
	name string
	fn   func(s *Synthesizer, req DistractorRequest) (string, bool)
}

// distractorStrategies are tried round-robin until enough candidates pass.
var distractorStrategies = []distractorStrategy{
	{"clause_reuse", (*Synthesizer).reuseClause},
	{"inversion", (*Synthesizer).invert},
	{"number", (*Synthesizer).perturbNumbers},
	{"qualifier", (*Synthesizer).swapQualifier},
	{"fabrication", (*Synthesizer).fabricate},
}

const distractorRounds = 3

// Synthesizer produces incorrect but plausible options.
type Synthesizer struct {
	rng    Rand
	tuning Tuning
}

func NewSynthesizer(rng Rand, tuning Tuning) *Synthesizer {
	return &Synthesizer{rng: rng, tuning: tuning}
}

// Distractors always returns exactly req.Count options. Strategy output is
// accepted only when it is lexically distinct from the correct answer and
// from every option accepted so far; generic fillers cover any shortfall.
func (s *Synthesizer) Distractors(req DistractorRequest) []string {
	if req.Count <= 0 {
		return nil
	}
	want := req.Count
	if req.Difficulty == models.DifficultyHard {
		want++
	}

	var accepted []string
	for round := 0; round < distractorRounds && len(accepted) < want; round++ {
		for _, strategy := range distractorStrategies {
			if len(accepted) >= want {
				break
			}
			candidate, ok := strategy.fn(s, req)
			if ok && s.acceptable(candidate, req, accepted) {
				accepted = append(accepted, candidate)
			}
		}
	}

	if len(accepted) > req.Count {
		// keep the candidates closest to the correct answer
		slices.SortStableFunc(accepted, func(a, b string) int {
			da, db := Similarity(a, req.Correct), Similarity(b, req.Correct)
			switch {
			case da > db:
				return -1
			case da < db:
				return 1
			}
			return 0
		})
		accepted = accepted[:req.Count]
	}

	for _, filler := range s.fillers(req) {
		if len(accepted) >= req.Count {
			break
		}
		if !containsKey(accepted, filler) && normalizeKey(filler) != normalizeKey(req.Correct) {
			accepted = append(accepted, filler)
		}
	}
	for n := 1; len(accepted) < req.Count; n++ {
		accepted = append(accepted, fmt.Sprintf("Unsupported claim %d about %s", n, promptSubject(s.subjectNoun(req))))
	}
	return accepted
}

func (s *Synthesizer) acceptable(candidate string, req DistractorRequest, accepted []string) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || normalizeKey(candidate) == normalizeKey(req.Correct) {
		return false
	}
	if Similarity(candidate, req.Correct) >= s.tuning.DistractorSimilarity {
		return false
	}
	for _, other := range append(accepted[:len(accepted):len(accepted)], req.Avoid...) {
		if normalizeKey(candidate) == normalizeKey(other) || Similarity(candidate, other) >= s.tuning.DistractorSimilarity {
			return false
		}
	}
	return true
}

func containsKey(items []string, s string) bool {
	key := normalizeKey(s)
	for _, it := range items {
		if normalizeKey(it) == key {
			return true
		}
	}
	return false
}

// subjectNoun is the noun phrase templates refer to.
func (s *Synthesizer) subjectNoun(req DistractorRequest) string {
	if req.Subject != "" {
		return req.Subject
	}
	if m, ok := factualRules.First(req.Correct); ok {
		return m.Subject
	}
	if pn := properNouns(req.Correct); len(pn) > 0 {
		return pn[0]
	}
	if cw := contentWords(req.Correct); len(cw) > 0 {
		return cw[0]
	}
	return "this topic"
}

// reuseClause splices the clause of an unrelated fact onto the correct
// answer's subject, or returns the clause itself when the correct answer is
// a bare complement.
func (s *Synthesizer) reuseClause(req DistractorRequest) (string, bool) {
	if len(req.Pool) == 0 {
		return "", false
	}
	other := req.Pool[s.rng.Intn(len(req.Pool))]
	if Similarity(other, req.Correct) >= s.tuning.DistractorSimilarity {
		return "", false
	}
	om, ok := LinkingRule.Match(other)
	if !ok {
		return "", false
	}
	if !req.Statement {
		return om.Object, true
	}
	if cm, ok := LinkingRule.Match(req.Correct); ok {
		return cm.Subject + " " + om.Predicate + " " + om.Object, true
	}
	return trimTerminal(other), true
}

var qualifierPairs = [][2]string{
	{"always", "never"}, {"most", "few"}, {"all", "none"}, {"many", "few"},
	{"increases", "decreases"}, {"increase", "decrease"}, {"more", "less"},
	{"higher", "lower"}, {"larger", "smaller"}, {"before", "after"},
	{"first", "last"}, {"often", "rarely"}, {"major", "minor"},
}

var causalInversion = regexp.MustCompile(`(?i)^(.+?),?\s+(because|since|due to|as a result of)\s+(.+)$`)

// invert flips one qualifier pair, or swaps cause and effect.
func (s *Synthesizer) invert(req DistractorRequest) (string, bool) {
	text := trimTerminal(req.Correct)
	for _, pair := range qualifierPairs {
		if out, ok := replaceWord(text, pair[0], pair[1]); ok {
			return out, true
		}
		if out, ok := replaceWord(text, pair[1], pair[0]); ok {
			return out, true
		}
	}
	if m := causalInversion.FindStringSubmatch(text); m != nil {
		effect, connective, cause := m[1], strings.ToLower(m[2]), m[3]
		return capitalizeFirst(cause) + " " + connective + " " + lowerFirst(effect), true
	}
	return "", false
}

func (s *Synthesizer) perturbNumbers(req DistractorRequest) (string, bool) {
	return perturbNumber(trimTerminal(req.Correct), s.rng)
}

var qualifierGroups = [][]string{
	{"always", "usually", "sometimes", "rarely", "never"},
	{"all", "most", "many", "some", "few"},
	{"significantly", "slightly", "moderately", "barely"},
	{"primarily", "partially", "occasionally", "exclusively"},
	{"completely", "partly", "hardly"},
	{"frequently", "occasionally", "seldom"},
}

func (s *Synthesizer) swapQualifier(req DistractorRequest) (string, bool) {
	text := trimTerminal(req.Correct)
	for _, w := range words(text) {
		for _, group := range qualifierGroups {
			idx := slices.Index(group, w)
			if idx < 0 {
				continue
			}
			alt := group[(idx+1+s.rng.Intn(len(group)-1))%len(group)]
			return replaceWord(text, w, alt)
		}
	}
	return "", false
}

var fabricationTemplates = []string{
	"%s was first documented in an early laboratory study",
	"%s depended mainly on external funding cycles",
	"Most researchers now regard %s as obsolete",
	"%s was limited to controlled experimental settings",
	"%s developed independently of any prior theory",
	"%s was measured only through indirect surveys",
}

func (s *Synthesizer) fabricate(req DistractorRequest) (string, bool) {
	return capitalizeFirst(fmt.Sprintf(pick(s.rng, fabricationTemplates), promptSubject(s.subjectNoun(req)))), true
}

var fillerTemplates = []string{
	"This represents a common misconception about %s",
	"%s played no part in this process",
	"There is no evidence linking %s to this outcome",
	"%s held only in theoretical contexts",
	"Later studies rejected this view of %s",
}

func (s *Synthesizer) fillers(req DistractorRequest) []string {
	noun := promptSubject(s.subjectNoun(req))
	out := make([]string, 0, len(fillerTemplates))
	for _, t := range shuffled(s.rng, fillerTemplates) {
		out = append(out, capitalizeFirst(fmt.Sprintf(t, noun)))
	}
	return out
}

var numberToken = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})+(?:\.\d+)?\b|\b\d+(?:\.\d+)?\b`)

// perturbNumber changes the first number in s by a magnitude-dependent
// amount, keeping its decimal precision. Years move by up to 30.
func perturbNumber(s string, rng Rand) (string, bool) {
	loc := numberToken.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	orig := s[loc[0]:loc[1]]
	plain := strings.ReplaceAll(orig, ",", "")
	v, err := strconv.ParseFloat(plain, 64)
	if err != nil {
		return "", false
	}
	decimals := 0
	if dot := strings.IndexByte(plain, '.'); dot >= 0 {
		decimals = len(plain) - dot - 1
	}
	sign := 1.0
	if rng.Intn(2) == 0 {
		sign = -1
	}

	var next float64
	switch {
	case decimals == 0 && yearPattern.MatchString(plain):
		next = v + sign*float64(1+rng.Intn(30))
	case v >= 100:
		next = v * (1 + sign*(0.5+0.3*rng.Float64()))
	case v >= 10:
		next = v + sign*(v*0.3+3)
	default:
		next = v + sign*float64(1+rng.Intn(3))
	}
	if next < 0 {
		next = -next
	}
	formatted := strconv.FormatFloat(roundTo(next, decimals), 'f', decimals, 64)
	if formatted == plain {
		formatted = strconv.FormatFloat(roundTo(v+1, decimals), 'f', decimals, 64)
	}
	return s[:loc[0]] + formatted + s[loc[1]:], true
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

// replaceWord replaces the first whole-word, case-insensitive occurrence of
// from, keeping the original's leading capitalization.
func replaceWord(s, from, to string) (string, bool) {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(from) + `\b`)
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s, false
	}
	if r, _ := utf8.DecodeRuneInString(s[loc[0]:]); unicode.IsUpper(r) {
		to = capitalizeFirst(to)
	}
	return s[:loc[0]] + to + s[loc[1]:], true
}
