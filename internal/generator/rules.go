package generator

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is the capture contract every extraction rule fills in.
type Match struct {
	Rule      string
	Subject   string
	Predicate string
	Object    string
	Items     []string
}

// Rule is a named surface pattern. The regexp's capture groups are mapped to
// subject, predicate and object by index; Accept vets the captures.
type Rule struct {
	Name      string
	Pattern   *regexp.Regexp
	Subject   int
	Predicate int
	Object    int
	Accept    func(m *Match) bool
}

// Match applies the rule to a single sentence.
func (r Rule) Match(sentence string) (Match, bool) {
	s := trimTerminal(collapseWhitespace(sentence))
	groups := r.Pattern.FindStringSubmatch(s)
	if groups == nil {
		return Match{}, false
	}
	m := Match{Rule: r.Name}
	if r.Subject > 0 {
		m.Subject = strings.TrimSpace(groups[r.Subject])
	}
	if r.Predicate > 0 {
		m.Predicate = strings.ToLower(strings.TrimSpace(groups[r.Predicate]))
	}
	if r.Object > 0 {
		m.Object = strings.TrimSpace(groups[r.Object])
	}
	if r.Accept != nil && !r.Accept(&m) {
		return Match{}, false
	}
	return m, true
}

// RuleSet tries rules in order and returns the first success.
type RuleSet []Rule

func (rs RuleSet) First(sentence string) (Match, bool) {
	for _, r := range rs {
		if m, ok := r.Match(sentence); ok {
			return m, true
		}
	}
	return Match{}, false
}

func isPronounSubject(subject string) bool {
	f := strings.Fields(strings.ToLower(subject))
	if len(f) == 0 {
		return true
	}
	return pronouns[f[0]] && (len(f) == 1 || f[0] != "one")
}

func plausibleSubject(subject string, maxWords int) bool {
	if len(subject) < 3 || wordCount(subject) > maxWords {
		return false
	}
	if strings.ContainsAny(subject, ",;:()") || isPronounSubject(subject) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(subject)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

var DefinitionRule = Rule{
	Name:      "definition",
	Pattern:   regexp.MustCompile(`^(.{3,80}?)\s+(is defined as|is known as|refers to|is|are|means|represents)\s+(.+)$`),
	Subject:   1,
	Predicate: 2,
	Object:    3,
	Accept: func(m *Match) bool {
		return plausibleSubject(m.Subject, 6) && len(m.Object) >= 20
	},
}

// linkingVerbs are the linking and action verbs a factual statement is split on.
var linkingVerbs = []string{
	"is defined as", "refers to", "consists of", "is", "are", "was", "were", "has", "have",
	"had", "can", "will", "contains", "includes", "provides", "uses", "allows",
	"requires", "produces", "causes", "enables", "involves", "describes",
	"represents", "means", "converts", "controls", "forms", "creates", "supports",
	"reduces", "increases", "determines", "regulates", "stores", "transfers",
}

var LinkingRule = Rule{
	Name:      "linking",
	Pattern:   regexp.MustCompile(`^(.{3,100}?)\s+(` + strings.Join(linkingVerbs, "|") + `)\s+(.+)$`),
	Subject:   1,
	Predicate: 2,
	Object:    3,
	Accept: func(m *Match) bool {
		return plausibleSubject(m.Subject, 8) && len(m.Object) >= 10
	},
}

var comparisonCue = regexp.MustCompile(`(?i)\b(compared (?:to|with)|differs? from|different from|versus|vs\.|in contrast (?:to|with)|unlike|whereas|similar to)\b`)

var ComparisonRule = Rule{
	Name:      "comparison",
	Pattern:   regexp.MustCompile(`(?i)^(.*?)\b(compared (?:to|with)|differs? from|different from|versus|vs\.|in contrast (?:to|with)|unlike|whereas|similar to)\b(.*)$`),
	Subject:   1,
	Predicate: 2,
	Object:    3,
	Accept: func(m *Match) bool {
		before := strings.Trim(m.Subject, " ,")
		after := strings.Trim(m.Object, " ,")
		if before == "" {
			// "Unlike X, Y does Z": X is the object, Y the subject.
			parts := strings.SplitN(after, ",", 2)
			if len(parts) < 2 {
				return false
			}
			before, after = strings.TrimSpace(parts[1]), strings.TrimSpace(parts[0])
		}
		m.Subject = stripArticle(lastWords(nounPhraseHead(before), 4))
		m.Object = stripArticle(firstWords(strings.TrimLeft(after, " ,"), 4))
		m.Object = trimTerminal(strings.SplitN(m.Object, ",", 2)[0])
		return m.Subject != "" && m.Object != ""
	},
}

var listCue = `includes?|including|such as|consists? of|comprises?|composed of|namely|the following|several|various|types of|kinds of`

var ListRule = Rule{
	Name:      "list",
	Pattern:   regexp.MustCompile(`(?i)^(.*?)\b(` + listCue + `)\b:?\s+(.+)$`),
	Subject:   1,
	Predicate: 2,
	Object:    3,
	Accept: func(m *Match) bool {
		if !strings.Contains(m.Object, ",") {
			return false
		}
		m.Items = splitEnumeration(m.Object)
		m.Subject = stripArticle(strings.Trim(m.Subject, " ,:"))
		m.Subject = strings.TrimSuffix(strings.TrimSuffix(m.Subject, " are"), " is")
		return len(m.Items) >= 2 && m.Subject != ""
	},
}

var enumerationSplit = regexp.MustCompile(`\s*(?:,|;|\band\b|\bor\b)\s*`)

func splitEnumeration(tail string) []string {
	var items []string
	seen := map[string]bool{}
	for _, part := range enumerationSplit.Split(trimTerminal(tail), -1) {
		item := strings.Trim(part, " .:;\"'")
		item = stripArticle(item)
		if len(item) < 2 || len(item) > 60 || wordCount(item) > 6 {
			continue
		}
		key := normalizeKey(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, item)
	}
	return items
}

// nounPhraseHead drops a trailing verb phrase so "X is faster when" keeps X.
func nounPhraseHead(s string) string {
	if m, ok := LinkingRule.Match(s + " placeholder complement text"); ok {
		return m.Subject
	}
	return s
}

func lastWords(s string, n int) string {
	f := strings.Fields(s)
	if len(f) > n {
		f = f[len(f)-n:]
	}
	return strings.Join(f, " ")
}

var factualRules = RuleSet{DefinitionRule, LinkingRule}
