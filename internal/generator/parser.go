package generator

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)
	numberPattern  = regexp.MustCompile(`\d+(?:\.\d+)?`)
	yearPattern    = regexp.MustCompile(`\b(1[5-9]\d{2}|20\d{2})\b`)
	monthPattern   = regexp.MustCompile(`\b(January|February|March|April|May|June|July|August|September|October|November|December)\b`)
	twoCapsPattern = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`)
)

// Abbreviations whose trailing period does not end a sentence.
var abbreviations = map[string]bool{
	"e.g": true, "i.e": true, "etc": true, "vs": true, "dr": true, "mr": true,
	"mrs": true, "ms": true, "prof": true, "st": true, "fig": true, "no": true,
	"approx": true, "al": true, "inc": true, "ltd": true, "jr": true, "sr": true,
}

var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "of": true,
	"to": true, "in": true, "on": true, "for": true, "with": true, "by": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"it": true, "its": true, "this": true, "that": true, "these": true, "those": true,
	"as": true, "at": true, "from": true, "which": true, "their": true, "has": true,
	"have": true, "had": true, "not": true, "but": true, "can": true, "will": true,
	"into": true, "than": true, "then": true, "also": true, "such": true,
}

var pronouns = map[string]bool{
	"it": true, "this": true, "that": true, "they": true, "these": true, "those": true,
	"he": true, "she": true, "we": true, "you": true, "i": true, "there": true,
	"which": true, "what": true, "who": true, "here": true, "one": true, "some": true,
}

// splitSentences breaks text into trimmed sentences. Blank lines are hard
// boundaries; single newlines are treated as spaces.
func splitSentences(text string) []string {
	var out []string
	for _, para := range paragraphBreak.Split(text, -1) {
		para = collapseWhitespace(para)
		if para == "" {
			continue
		}
		start := 0
		runes := []rune(para)
		for i, r := range runes {
			if r != '.' && r != '!' && r != '?' {
				continue
			}
			if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
				continue
			}
			if r == '.' && isAbbreviation(runes[start:i]) {
				continue
			}
			if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
		if start < len(runes) {
			if s := strings.TrimSpace(string(runes[start:])); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func isAbbreviation(before []rune) bool {
	s := string(before)
	idx := strings.LastIndexFunc(s, unicode.IsSpace)
	word := strings.ToLower(strings.TrimLeft(s[idx+1:], "(\"'"))
	if word == "" {
		return false
	}
	if abbreviations[word] {
		return true
	}
	// single initials such as "J." in "J. Smith"
	return utf8.RuneCountInString(word) == 1 && unicode.IsLetter([]rune(word)[0])
}

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// words returns the lowercase alphanumeric tokens of s.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// contentWords drops stopwords and very short tokens.
func contentWords(s string) []string {
	var out []string
	for _, w := range words(s) {
		if len(w) > 3 && !stopwords[w] {
			out = append(out, w)
		}
	}
	return out
}

// normalizeKey is the dedup key for facts, prompts and options.
func normalizeKey(s string) string {
	s = strings.ToLower(collapseWhitespace(s))
	return strings.Trim(s, " .!?;:,\"'")
}

func trimTerminal(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".!?;:, ")
}

func ensurePeriod(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return strings.TrimRight(s, ";:, ") + "."
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	// keep acronyms and proper nouns with inner capitals intact
	if next, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(next) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func containsWord(s, word string) bool {
	for _, w := range words(s) {
		if w == word {
			return true
		}
	}
	return false
}

func containsAnyWord(s string, set map[string]bool) bool {
	for _, w := range words(s) {
		if set[w] {
			return true
		}
	}
	return false
}

func hasNumber(s string) bool {
	return numberPattern.MatchString(s)
}

// properNouns returns capitalized words that do not open the sentence.
func properNouns(s string) []string {
	fields := strings.Fields(s)
	var out []string
	for i, f := range fields {
		if i == 0 {
			continue
		}
		prev := fields[i-1]
		if strings.HasSuffix(prev, ".") || strings.HasSuffix(prev, ":") {
			continue
		}
		f = strings.Trim(f, ".,;:!?()\"'")
		r, _ := utf8.DecodeRuneInString(f)
		if unicode.IsUpper(r) && utf8.RuneCountInString(f) > 1 {
			out = append(out, f)
		}
	}
	return out
}

// stripArticle removes a leading article from a noun phrase.
func stripArticle(s string) string {
	lower := strings.ToLower(s)
	for _, a := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(lower, a) {
			return strings.TrimSpace(s[len(a):])
		}
	}
	return s
}

func firstWords(s string, n int) string {
	f := strings.Fields(s)
	if len(f) > n {
		f = f[:n]
	}
	return strings.Join(f, " ")
}
