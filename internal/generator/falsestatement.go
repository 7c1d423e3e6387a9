package generator

import (
	"regexp"
	"strings"
)

var (
	negatedAuxiliary = regexp.MustCompile(`(?i)\b(is|are|was|were|will|does|do|did|should|must|could|would|has|have)\s+not\b\s*`)
	cannotPattern    = regexp.MustCompile(`(?i)\bcannot\b`)
	canPattern       = regexp.MustCompile(`(?i)\bcan\b`)
	auxiliaryPattern = regexp.MustCompile(`(?i)\b(is|are|was|were|will|does|do|did|should|must|could|would)\b`)
	copulaPattern    = regexp.MustCompile(`^(.+?)\s+(is|are)\s+((?:a|an)\s+.+)$`)
)

var antonyms = func() map[string]string {
	pairs := [][2]string{
		{"increase", "decrease"}, {"increases", "decreases"}, {"increased", "decreased"},
		{"more", "less"}, {"larger", "smaller"}, {"higher", "lower"}, {"always", "never"},
		{"positive", "negative"}, {"internal", "external"}, {"before", "after"},
		{"first", "last"}, {"maximum", "minimum"}, {"inside", "outside"},
		{"major", "minor"}, {"strong", "weak"}, {"fast", "slow"}, {"early", "late"},
		{"gain", "loss"}, {"rises", "falls"}, {"allows", "prevents"},
		{"includes", "excludes"}, {"most", "least"}, {"majority", "minority"},
		{"possible", "impossible"}, {"common", "rare"}, {"same", "different"},
		{"absorbs", "releases"}, {"natural", "artificial"}, {"public", "private"},
		{"direct", "indirect"}, {"simple", "complex"}, {"ancient", "modern"},
	}
	m := make(map[string]string, len(pairs)*2)
	for _, p := range pairs {
		m[p[0]] = p[1]
		m[p[1]] = p[0]
	}
	return m
}()

type statementTransform func(s string, rng Rand) (string, bool)

var falseStatementTransforms = []statementTransform{
	negateStatement,
	antonymStatement,
	perturbNumber,
	reverseCopula,
}

// FalseStatement turns a true statement into a false one. Transforms are
// tried starting from a random one; the first that applies wins.
func FalseStatement(statement string, rng Rand) (string, bool) {
	text := trimTerminal(collapseWhitespace(statement))
	if text == "" {
		return "", false
	}
	start := rng.Intn(len(falseStatementTransforms))
	for i := range falseStatementTransforms {
		t := falseStatementTransforms[(start+i)%len(falseStatementTransforms)]
		if out, ok := t(text, rng); ok && normalizeKey(out) != normalizeKey(text) {
			return ensurePeriod(capitalizeFirst(out)), true
		}
	}
	return "", false
}

func negateStatement(s string, _ Rand) (string, bool) {
	if loc := negatedAuxiliary.FindStringSubmatchIndex(s); loc != nil {
		return s[:loc[0]] + s[loc[2]:loc[3]] + " " + s[loc[1]:], true
	}
	if loc := cannotPattern.FindStringIndex(s); loc != nil {
		return s[:loc[0]] + "can" + s[loc[1]:], true
	}
	if loc := canPattern.FindStringIndex(s); loc != nil {
		return s[:loc[0]] + "cannot" + s[loc[1]:], true
	}
	if loc := auxiliaryPattern.FindStringIndex(s); loc != nil {
		return s[:loc[1]] + " not" + s[loc[1]:], true
	}
	return "", false
}

func antonymStatement(s string, _ Rand) (string, bool) {
	for _, w := range words(s) {
		if alt, ok := antonyms[w]; ok {
			return replaceWord(s, w, alt)
		}
	}
	return "", false
}

// reverseCopula swaps the sides of "X is a Y".
func reverseCopula(s string, _ Rand) (string, bool) {
	m := copulaPattern.FindStringSubmatch(s)
	if m == nil || wordCount(m[1]) > 6 || wordCount(m[3]) > 8 || isPronounSubject(m[1]) {
		return "", false
	}
	return capitalizeFirst(m[3]) + " " + strings.ToLower(m[2]) + " " + promptSubject(m[1]), true
}
