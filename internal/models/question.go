package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

// QuestionBudget is the maximum number of questions a quiz carries per difficulty.
func (d Difficulty) QuestionBudget() int {
	switch d {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return 15
	default:
		return 10
	}
}

type QuestionType string

const (
	QuestionSingle   QuestionType = "single"
	QuestionMultiple QuestionType = "multiple"
)

// ── Core Structs ───────────────────────────────────────

// Answer holds the correct option indices. It marshals to a bare integer for
// single-answer questions and to an array for multi-select questions.
type Answer struct {
	Indices  []int
	Multiple bool
}

func SingleAnswer(idx int) Answer {
	return Answer{Indices: []int{idx}}
}

func MultipleAnswer(idx []int) Answer {
	return Answer{Indices: append([]int(nil), idx...), Multiple: true}
}

// Index returns the single correct index, or -1 when none is set.
func (a Answer) Index() int {
	if len(a.Indices) == 0 {
		return -1
	}
	return a.Indices[0]
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Multiple {
		if a.Indices == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.Indices)
	}
	return json.Marshal(a.Index())
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var idx []int
		if err := json.Unmarshal(data, &idx); err != nil {
			return fmt.Errorf("decode answer indices: %w", err)
		}
		*a = Answer{Indices: idx, Multiple: true}
		return nil
	}
	var idx int
	if err := json.Unmarshal(data, &idx); err != nil {
		return fmt.Errorf("decode answer index: %w", err)
	}
	*a = SingleAnswer(idx)
	return nil
}

type Question struct {
	ID         int          `json:"id"`
	Question   string       `json:"question"`
	Options    []string     `json:"options"`
	Answer     Answer       `json:"answer"`
	Type       QuestionType `json:"type"`
	Difficulty Difficulty   `json:"difficulty"`
}

type Quiz struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Difficulty     Difficulty `json:"difficulty"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"totalQuestions"`
	EstimatedTime  int        `json:"estimatedTime"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// QuizSummary is the listing view of a stored quiz.
type QuizSummary struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Difficulty     Difficulty `json:"difficulty"`
	TotalQuestions int        `json:"totalQuestions"`
	EstimatedTime  int        `json:"estimatedTime"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func (q *Quiz) Summary() QuizSummary {
	return QuizSummary{
		ID:             q.ID,
		Title:          q.Title,
		Difficulty:     q.Difficulty,
		TotalQuestions: q.TotalQuestions,
		EstimatedTime:  q.EstimatedTime,
		CreatedAt:      q.CreatedAt,
	}
}

// ── Request Types ─────────────────────────────────────

type GenerateQuizRequest struct {
	Text       string     `json:"text"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Title      string     `json:"title,omitempty"`
	Seed       *int64     `json:"seed,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
