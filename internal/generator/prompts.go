package generator

import (
	"fmt"
	"strings"

	"github.com/quizforge/backend/internal/models"
)

// familyStems are the prompt templates per family and difficulty. Each
// takes the question subject once.
var familyStems = map[Family]map[models.Difficulty][]string{
	FamilyFactual: {
		models.DifficultyMedium: {"Which description of %s is accurate?"},
		models.DifficultyHard:   {"Which analysis of %s is best supported by the text?"},
	},
	FamilyDefinition: {
		models.DifficultyEasy:   {"What is the best definition of %s?"},
		models.DifficultyMedium: {"What is the best definition of %s?"},
		models.DifficultyHard:   {"What is the best definition of %s?"},
	},
	FamilyComparison: {
		models.DifficultyEasy:   {"How does %s compare with %s?"},
		models.DifficultyMedium: {"What does the text say when comparing %s and %s?"},
		models.DifficultyHard:   {"Which comparison between %s and %s is best supported?"},
	},
	FamilyMSQ: {
		models.DifficultyEasy:   {"What does %s include? Select all that apply."},
		models.DifficultyMedium: {"Which items are part of %s? Select all that apply."},
		models.DifficultyHard:   {"Which of these belong to %s according to the text? Select all that apply."},
	},
	FamilyExam: {
		models.DifficultyEasy: {
			"Which statement about %s is correct?",
			"What does the text state about %s?",
			"What is true about %s?",
		},
		models.DifficultyMedium: {
			"Which statement best reflects the text's account of %s?",
			"What conclusion about %s is supported by the text?",
			"Which claim about %s is accurate?",
		},
		models.DifficultyHard: {
			"Which inference about %s is most strongly supported?",
			"Which interpretation of %s is most consistent with the text?",
			"What can be concluded about %s from the text?",
		},
	},
}

// GetStems returns the prompt templates for a family at a difficulty.
func GetStems(family Family, difficulty models.Difficulty) []string {
	return familyStems[family][difficulty]
}

// stem cycles through the templates by index.
func stem(family Family, difficulty models.Difficulty, i int) string {
	stems := GetStems(family, difficulty)
	if len(stems) == 0 {
		stems = GetStems(family, models.DifficultyMedium)
	}
	return stems[i%len(stems)]
}

func buildPrompt(family Family, difficulty models.Difficulty, i int, args ...any) string {
	return fmt.Sprintf(stem(family, difficulty, i), args...)
}

// promptSubject is the subject as it reads mid-sentence, with a leading
// article lowercased.
func promptSubject(subject string) string {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "this topic"
	}
	lower := strings.ToLower(subject)
	for _, a := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(lower, a) {
			return a + subject[len(a):]
		}
	}
	return subject
}

// easyFactualPrompt asks directly about the subject using the sentence's own
// verb: "What is X?", "What does X convert?".
func easyFactualPrompt(subject, predicate string) string {
	subject = promptSubject(subject)
	verbs := strings.Fields(predicate)
	if len(verbs) == 0 {
		return fmt.Sprintf("What is %s?", subject)
	}
	head, rest := verbs[0], strings.Join(verbs[1:], " ")
	suffix := ""
	if rest != "" {
		suffix = " " + rest
	}
	switch head {
	case "is", "are", "was", "were":
		return fmt.Sprintf("What %s %s%s?", head, subject, suffix)
	case "can", "will":
		if rest == "" {
			rest = "do"
		}
		return fmt.Sprintf("What %s %s %s?", head, subject, rest)
	case "had":
		return fmt.Sprintf("What did %s have%s?", subject, suffix)
	case "have":
		return fmt.Sprintf("What do %s have%s?", subject, suffix)
	}
	aux := "does"
	if !strings.HasSuffix(head, "s") {
		aux = "do"
	}
	return fmt.Sprintf("What %s %s %s%s?", aux, subject, baseForm(head), suffix)
}

// baseForm strips third-person -s from a verb.
func baseForm(verb string) string {
	switch {
	case verb == "has":
		return "have"
	case strings.HasSuffix(verb, "ies") && len(verb) > 4:
		return strings.TrimSuffix(verb, "ies") + "y"
	case strings.HasSuffix(verb, "sses"), strings.HasSuffix(verb, "shes"),
		strings.HasSuffix(verb, "ches"), strings.HasSuffix(verb, "xes"):
		return strings.TrimSuffix(verb, "es")
	case strings.HasSuffix(verb, "ss"):
		return verb
	case strings.HasSuffix(verb, "s"):
		return strings.TrimSuffix(verb, "s")
	}
	return verb
}
