package generator

import (
	"fmt"
	"slices"
)

var attributionQualifiers = []string{
	"Research shows that ",
	"Experts suggest that ",
	"Studies indicate that ",
	"It is often claimed that ",
}

var alternativeTemplates = []string{
	"A common misconception about %s",
	"%s played no role in the outcome",
	"%s mattered only in theory",
	"No evidence links %s to this result",
	"%s was disproven by later work",
	"Early accounts overstated %s",
}

var fallbackOptions = []string{
	"None of the above",
	"Not stated in the text",
	"Cannot be determined",
	"Unrelated to the topic",
}

// OptionSet collects the options of one question. Every generator builds its
// options through it so formatting and uniqueness are handled in one place.
type OptionSet struct {
	format  Formatter
	subject string
	ignore  map[string]bool
	items   []string
	next    int
}

func NewOptionSet(subject string, format Formatter) *OptionSet {
	if subject == "" {
		subject = "this topic"
	}
	return &OptionSet{format: format, subject: subject, ignore: trigrams(subject)}
}

// Add formats s and appends it. Empty results are dropped.
func (o *OptionSet) Add(s string) bool {
	s = o.format.Option(s)
	if s == "" {
		return false
	}
	o.items = append(o.items, s)
	return true
}

func (o *OptionSet) Len() int { return len(o.items) }

func (o *OptionSet) Items() []string {
	return append([]string(nil), o.items...)
}

func (o *OptionSet) collides(a, b string) bool {
	return normalizeKey(a) == normalizeKey(b) || sharesPhrase(a, b, o.ignore)
}

// Dedupe replaces any option that collides with an earlier one by a
// templated alternative. Protected indices are never replaced; when a
// protected option collides with an earlier one, the earlier one yields.
func (o *OptionSet) Dedupe(protected ...int) {
	for i := 1; i < len(o.items); i++ {
		for j := 0; j < i; j++ {
			if !o.collides(o.items[i], o.items[j]) {
				continue
			}
			victim := i
			if slices.Contains(protected, i) {
				if slices.Contains(protected, j) {
					continue
				}
				victim = j
			}
			o.items[victim] = o.alternative(victim)
			if victim == i {
				j = -1
			}
		}
	}
}

// PadToCount appends templated alternatives until the set holds n options,
// and truncates it to n when it holds more.
func (o *OptionSet) PadToCount(n int) {
	for len(o.items) < n {
		o.items = append(o.items, o.alternative(len(o.items)))
	}
	o.items = o.items[:n]
}

func (o *OptionSet) unique(candidate string, at int) bool {
	for k, existing := range o.items {
		if k != at && o.collides(candidate, existing) {
			return false
		}
	}
	return true
}

// alternative returns a formatted option that collides with nothing else in
// the set, cycling through templates and attribution qualifiers.
func (o *OptionSet) alternative(at int) string {
	for tries := 0; tries < len(alternativeTemplates)*(len(attributionQualifiers)+1); tries++ {
		k := o.next
		o.next++
		text := fmt.Sprintf(alternativeTemplates[k%len(alternativeTemplates)], promptSubject(o.subject))
		if round := k / len(alternativeTemplates); round > 0 {
			text = attributionQualifiers[(round-1)%len(attributionQualifiers)] + lowerFirst(text)
		}
		text = o.format.Option(text)
		if o.unique(text, at) {
			return text
		}
	}
	for _, text := range fallbackOptions {
		if o.unique(text, at) {
			return text
		}
	}
	o.next++
	return fmt.Sprintf("Option %d", o.next)
}
