package generator

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

type FactKind string

const (
	FactDefinition FactKind = "definition"
	FactAssertion  FactKind = "assertion"
	FactComparison FactKind = "comparison"
	FactRelaxed    FactKind = "relaxed"
)

// Fact is a candidate factual sentence. Subject is filled in when a
// subject/verb/complement split was found.
type Fact struct {
	Text    string
	Kind    FactKind
	Chunk   int
	Subject string
}

var (
	indicatorVerbs = map[string]bool{
		"is": true, "are": true, "was": true, "were": true, "has": true, "have": true,
		"had": true, "can": true, "will": true, "contains": true, "includes": true,
		"provides": true, "uses": true, "allows": true, "requires": true, "produces": true,
		"causes": true, "enables": true, "involves": true, "consists": true, "means": true,
		"represents": true, "refers": true, "occurs": true, "forms": true, "creates": true,
		"converts": true, "controls": true, "regulates": true, "stores": true, "supports": true,
	}
	hedgeWords = map[string]bool{
		"might": true, "maybe": true, "perhaps": true, "probably": true, "possibly": true,
		"seems": true, "arguably": true, "guess": true,
	}
	domainCues = map[string]bool{
		"process": true, "system": true, "method": true, "theory": true, "function": true,
		"structure": true, "principle": true, "model": true, "mechanism": true, "technique": true,
		"concept": true, "stage": true, "phase": true, "component": true, "element": true,
		"organism": true, "reaction": true, "energy": true, "cell": true, "law": true,
		"algorithm": true, "protocol": true, "policy": true, "economy": true, "market": true,
	}
	definitionQuestion = regexp.MustCompile(`^(?i)what (is|are)\b`)
)

// ExtractFacts scans every chunk sentence for factual statements. The
// definition, assertion and comparison passes share one dedup set; a relaxed
// pass runs when the strict passes found too little.
func ExtractFacts(chunks []Chunk, tuning Tuning) ([]Fact, error) {
	type sentence struct {
		text  string
		chunk int
	}
	var sentences []sentence
	for _, c := range chunks {
		for _, s := range splitSentences(c.Text) {
			sentences = append(sentences, sentence{text: s, chunk: c.Index})
		}
	}

	var facts []Fact
	seen := make(map[string]bool)
	add := func(s sentence, kind FactKind, subject string) {
		key := normalizeKey(s.text)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		facts = append(facts, Fact{Text: s.text, Kind: kind, Chunk: s.chunk, Subject: subject})
	}

	passes := []struct {
		kind   FactKind
		accept func(string) (string, bool)
	}{
		{FactDefinition, acceptDefinition},
		{FactAssertion, acceptAssertion},
		{FactComparison, acceptComparison},
	}
	for _, p := range passes {
		for _, s := range sentences {
			if subject, ok := p.accept(s.text); ok {
				add(s, p.kind, subject)
			}
		}
	}

	if len(facts) < tuning.RelaxedFactThreshold {
		for _, s := range sentences {
			if subject, ok := acceptRelaxed(s.text); ok {
				add(s, FactRelaxed, subject)
			}
		}
	}

	facts = dropContainedFacts(facts, tuning.SupersetRatio)
	if len(facts) < tuning.MinFacts {
		return nil, newGenerationError(CodeInsufficientFacts, len(facts))
	}
	return facts, nil
}

func acceptDefinition(s string) (string, bool) {
	m, ok := DefinitionRule.Match(s)
	if !ok {
		return "", false
	}
	return m.Subject, true
}

func acceptAssertion(s string) (string, bool) {
	if len(s) < 30 || len(s) > 300 {
		return "", false
	}
	if strings.Contains(s, "?") && !definitionQuestion.MatchString(s) {
		return "", false
	}
	if !containsAnyWord(s, indicatorVerbs) || containsAnyWord(s, hedgeWords) {
		return "", false
	}
	if len(properNouns(s)) == 0 && !hasNumber(s) && !containsAnyWord(s, domainCues) {
		return "", false
	}
	return subjectOf(s), true
}

func acceptComparison(s string) (string, bool) {
	if len(s) < 30 || len(s) > 300 || !comparisonCue.MatchString(s) {
		return "", false
	}
	m, ok := ComparisonRule.Match(s)
	if !ok {
		return "", true
	}
	return m.Subject, true
}

func acceptRelaxed(s string) (string, bool) {
	if len(s) < 40 || len(s) > 300 || strings.HasSuffix(s, "?") {
		return "", false
	}
	if len(properNouns(s)) == 0 {
		return "", false
	}
	return subjectOf(s), true
}

func subjectOf(s string) string {
	if m, ok := factualRules.First(s); ok {
		return m.Subject
	}
	return ""
}

// dropContainedFacts removes any fact whose text appears inside a longer
// fact that is more than ratio times its length.
func dropContainedFacts(facts []Fact, ratio float64) []Fact {
	keys := lo.Map(facts, func(f Fact, _ int) string { return normalizeKey(f.Text) })
	return lo.Filter(facts, func(f Fact, i int) bool {
		for j, other := range keys {
			if j == i || len(other) <= len(keys[i]) {
				continue
			}
			if float64(len(other))/float64(len(keys[i])) > ratio && strings.Contains(other, keys[i]) {
				return false
			}
		}
		return true
	})
}

// factTexts lists fact texts, skipping the one at index skip.
func factTexts(facts []Fact, skip int) []string {
	out := make([]string, 0, len(facts))
	for i, f := range facts {
		if i != skip {
			out = append(out, f.Text)
		}
	}
	return out
}
