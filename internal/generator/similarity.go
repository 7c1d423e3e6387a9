package generator

import "strings"

// Similarity is the coarse lexical metric used for every near-duplicate check:
// word-set Jaccard overlap weighted by the character length ratio. Identical
// strings score 1.
func Similarity(a, b string) float64 {
	sa, sb := tokenize(a), tokenize(b)
	if len(sa) == 0 || len(sb) == 0 {
		if normalizeKey(a) == normalizeKey(b) {
			return 1
		}
		return 0
	}
	la, lb := len(strings.TrimSpace(a)), len(strings.TrimSpace(b))
	ratio := float64(min(la, lb)) / float64(max(la, lb))
	return jaccardSimilarity(sa, sb) * (0.8 + 0.2*ratio)
}

func tokenize(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, w := range words(s) {
		tokens[w] = true
	}
	return tokens
}

func jaccardSimilarity(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for k := range a {
		if b[k] {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

// keyPhraseOverlap is the share of a's content words that also appear in b.
func keyPhraseOverlap(a, b string) float64 {
	keys := contentWords(a)
	if len(keys) == 0 {
		return 0
	}
	other := tokenize(b)
	hits := 0
	for _, k := range keys {
		if other[k] {
			hits++
		}
	}
	return float64(hits) / float64(len(keys))
}

// trigrams are built over non-stopword tokens so "the X of Y" filler does not
// count as a shared phrase. Numbers are kept.
func trigrams(s string) map[string]bool {
	var w []string
	for _, t := range words(s) {
		if !stopwords[t] {
			w = append(w, t)
		}
	}
	out := make(map[string]bool)
	for i := 0; i+3 <= len(w); i++ {
		out[strings.Join(w[i:i+3], " ")] = true
	}
	return out
}

// sharesPhrase reports whether a and b share a three-word phrase that is not
// part of ignore (usually the question subject, which every option may name).
func sharesPhrase(a, b string, ignore map[string]bool) bool {
	tb := trigrams(b)
	for t := range trigrams(a) {
		if tb[t] && !ignore[t] {
			return true
		}
	}
	return false
}
