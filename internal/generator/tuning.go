package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quizforge/backend/internal/models"
)

// Tuning holds the empirically chosen thresholds used across the pipeline.
type Tuning struct {
	DistractorSimilarity           float64 `yaml:"distractor_similarity"`
	OptionSetSimilarity            float64 `yaml:"option_set_similarity"`
	AnswerMatchSimilarity          float64 `yaml:"answer_match_similarity"`
	DefinitionDistractorSimilarity float64 `yaml:"definition_distractor_similarity"`
	KeyPhraseOverlap               float64 `yaml:"key_phrase_overlap"`
	SupersetRatio                  float64 `yaml:"superset_ratio"`

	MinChunks            int `yaml:"min_chunks"`
	MinFacts             int `yaml:"min_facts"`
	RelaxedFactThreshold int `yaml:"relaxed_fact_threshold"`
	MinQuestions         int `yaml:"min_questions"`

	MaxOptionChars int `yaml:"max_option_chars"`
	MaxOptionWords int `yaml:"max_option_words"`
}

func DefaultTuning() Tuning {
	return Tuning{
		DistractorSimilarity:           0.7,
		OptionSetSimilarity:            0.8,
		AnswerMatchSimilarity:          0.7,
		DefinitionDistractorSimilarity: 0.5,
		KeyPhraseOverlap:               0.7,
		SupersetRatio:                  1.3,
		MinChunks:                      3,
		MinFacts:                       5,
		RelaxedFactThreshold:           10,
		MinQuestions:                   3,
		MaxOptionChars:                 50,
		MaxOptionWords:                 10,
	}
}

// LoadTuning reads a YAML file and overlays it on DefaultTuning. Keys missing
// from the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

func (t Tuning) Validate() error {
	ratios := map[string]float64{
		"distractor_similarity":            t.DistractorSimilarity,
		"option_set_similarity":            t.OptionSetSimilarity,
		"answer_match_similarity":          t.AnswerMatchSimilarity,
		"definition_distractor_similarity": t.DefinitionDistractorSimilarity,
		"key_phrase_overlap":               t.KeyPhraseOverlap,
	}
	for name, v := range ratios {
		if v <= 0 || v > 1 {
			return fmt.Errorf("tuning %s must be in (0, 1], got %v", name, v)
		}
	}
	if t.SupersetRatio < 1 {
		return fmt.Errorf("tuning superset_ratio must be >= 1, got %v", t.SupersetRatio)
	}
	if t.MinChunks < 1 || t.MinFacts < 1 || t.MinQuestions < 1 {
		return fmt.Errorf("tuning minimum counts must be positive")
	}
	if budget := models.DifficultyEasy.QuestionBudget(); t.MinQuestions > budget {
		return fmt.Errorf("tuning min_questions %d exceeds the smallest question budget %d", t.MinQuestions, budget)
	}
	if t.MaxOptionChars < 10 || t.MaxOptionWords < 2 {
		return fmt.Errorf("tuning option limits too small: %d chars, %d words", t.MaxOptionChars, t.MaxOptionWords)
	}
	return nil
}
