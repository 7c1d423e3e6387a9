package generator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/quizforge/backend/internal/models"
)

const (
	minPromptChars = 10
	minOptionChars = 5
)

// ErrInvalidCandidate is wrapped by every validation rejection.
var ErrInvalidCandidate = errors.New("invalid question candidate")

// ValidateCandidate rejects malformed candidates and repairs answer indices
// in place of rejecting them. The returned candidate is a copy.
func ValidateCandidate(c Candidate, t Tuning) (Candidate, error) {
	prompt := strings.TrimSpace(c.Prompt)
	if len(prompt) < minPromptChars {
		return c, fmt.Errorf("%w: prompt shorter than %d characters", ErrInvalidCandidate, minPromptChars)
	}
	if r, _ := utf8.DecodeRuneInString(prompt); !unicode.IsUpper(r) {
		return c, fmt.Errorf("%w: prompt must start with an upper-case letter", ErrInvalidCandidate)
	}
	if !strings.ContainsAny(prompt[len(prompt)-1:], ".?!") {
		return c, fmt.Errorf("%w: prompt lacks terminal punctuation", ErrInvalidCandidate)
	}

	if n := len(c.Options); n != 2 && n != 4 {
		return c, fmt.Errorf("%w: %d options", ErrInvalidCandidate, n)
	}
	trueFalse := isTrueFalsePair(c.Options)
	keys := make(map[string]bool, len(c.Options))
	for _, o := range c.Options {
		key := normalizeKey(o)
		if keys[key] {
			return c, fmt.Errorf("%w: duplicate option %q", ErrInvalidCandidate, o)
		}
		keys[key] = true
		if !trueFalse && len(strings.TrimSpace(o)) < minOptionChars {
			return c, fmt.Errorf("%w: option %q too short", ErrInvalidCandidate, o)
		}
	}
	for i := range c.Options {
		for j := i + 1; j < len(c.Options); j++ {
			if sim := Similarity(c.Options[i], c.Options[j]); sim > t.OptionSetSimilarity {
				return c, fmt.Errorf("%w: options %d and %d too similar (%.2f)", ErrInvalidCandidate, i, j, sim)
			}
		}
	}

	out := c
	out.Prompt = prompt
	out.Options = append([]string(nil), c.Options...)
	out.Correct = repairAnswer(c.Correct, c.Type, len(c.Options))
	return out, nil
}

// repairAnswer keeps in-range indices. A single answer falls back to 0; a
// multiple answer is deduplicated and falls back to [0].
func repairAnswer(correct []int, kind models.QuestionType, n int) []int {
	var valid []int
	for _, i := range correct {
		if i >= 0 && i < n && !slices.Contains(valid, i) {
			valid = append(valid, i)
		}
	}
	if len(valid) == 0 {
		return []int{0}
	}
	if kind != models.QuestionMultiple {
		return valid[:1]
	}
	slices.Sort(valid)
	return valid
}
