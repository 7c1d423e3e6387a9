package generator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	leadInPattern = regexp.MustCompile(`(?i)^(?:according to|based on|as (?:stated|described|mentioned) in|in) (?:the|this) (?:document|text|passage|article|material|reading)\s*,?\s*`)

	whichStatementPattern = regexp.MustCompile(`(?i)^which (?:one )?of the following (?:statements?|options?|choices?|answers?) (?:is|are)\s+`)
	whichPattern          = regexp.MustCompile(`(?i)^which (?:one )?of the following\s+`)

	interrogativeStart = regexp.MustCompile(`(?i)^(?:what|which|who|whom|whose|how|why|when|where|is|are|was|were|does|do|did|can|could|should|would|will)\b`)

	optionSegmentSplit = regexp.MustCompile(`\s*(?:[,;:]|\s-\s|\bwhich\b|\bwhile\b|\bwhereas\b)\s*`)
)

// maxFormatPasses bounds the fixpoint loop; real inputs settle in two.
const maxFormatPasses = 6

// Formatter normalizes prompt and option text. Both methods run to a
// fixpoint so formatting already formatted text is a no-op.
type Formatter struct {
	MaxOptionChars int
	MaxOptionWords int
}

func NewFormatter(t Tuning) Formatter {
	return Formatter{MaxOptionChars: t.MaxOptionChars, MaxOptionWords: t.MaxOptionWords}
}

var defaultFormatter = NewFormatter(DefaultTuning())

func FormatQuestion(s string) string { return defaultFormatter.Question(s) }

func FormatOption(s string) string { return defaultFormatter.Option(s) }

func (f Formatter) Question(s string) string {
	return fixpoint(s, f.questionPass)
}

func (f Formatter) Option(s string) string {
	return fixpoint(s, f.optionPass)
}

func fixpoint(s string, pass func(string) string) string {
	for i := 0; i < maxFormatPasses; i++ {
		next := pass(s)
		if next == s {
			return s
		}
		s = next
	}
	return s
}

func (f Formatter) questionPass(s string) string {
	s = collapseWhitespace(s)
	s = leadInPattern.ReplaceAllString(s, "")
	if whichStatementPattern.MatchString(s) {
		s = whichStatementPattern.ReplaceAllString(s, "What is ")
	} else {
		s = whichPattern.ReplaceAllString(s, "What ")
	}
	s = strings.TrimLeft(s, " ,;:")
	if s == "" {
		return s
	}
	s = capitalizeFirst(s)
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	s = strings.TrimRight(s, " ,;:")
	if interrogativeStart.MatchString(s) {
		return s + "?"
	}
	return s + "."
}

func (f Formatter) optionPass(s string) string {
	s = collapseWhitespace(s)
	s = leadInPattern.ReplaceAllString(s, "")
	s = strings.Trim(s, " \"'")
	s = strings.TrimRight(s, ".;,: ")
	if s == "" {
		return s
	}
	if len(s) > f.MaxOptionChars || wordCount(s) > f.MaxOptionWords {
		s = f.shorten(s)
	}
	return capitalizeFirst(s)
}

// shorten picks the clause that best carries the option's detail, falling
// back to a word-boundary cut.
func (f Formatter) shorten(s string) string {
	var best string
	bestScore := -1
	for _, seg := range optionSegmentSplit.Split(s, -1) {
		seg = strings.TrimSpace(seg)
		if wordCount(seg) < 3 || len(seg) > f.MaxOptionChars || wordCount(seg) > f.MaxOptionWords {
			continue
		}
		score := 0
		if hasNumber(seg) {
			score += 2
		}
		if len(properNouns(seg)) > 0 {
			score++
		}
		if score > bestScore {
			best, bestScore = seg, score
		}
	}
	if best == "" {
		best = f.cut(s)
	}
	return trimDangling(best)
}

func (f Formatter) cut(s string) string {
	fields := strings.Fields(s)
	if len(fields) > f.MaxOptionWords {
		fields = fields[:f.MaxOptionWords]
	}
	for len(fields) > 1 && len(strings.Join(fields, " ")) > f.MaxOptionChars {
		fields = fields[:len(fields)-1]
	}
	out := strings.Join(fields, " ")
	if len(out) > f.MaxOptionChars {
		out = strings.TrimSpace(truncateRunes(out, f.MaxOptionChars))
	}
	return out
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := 0
	for i, r := range s {
		if i+utf8.RuneLen(r) > n {
			break
		}
		cut = i + utf8.RuneLen(r)
	}
	return s[:cut]
}

// trimDangling drops trailing connective words a cut can leave behind.
func trimDangling(s string) string {
	fields := strings.Fields(strings.TrimRight(s, ".;,: "))
	for len(fields) > 2 && stopwords[strings.ToLower(fields[len(fields)-1])] {
		fields = fields[:len(fields)-1]
	}
	return strings.TrimRight(strings.Join(fields, " "), ".;,: ")
}
