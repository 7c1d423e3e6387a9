package generator

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/quizforge/backend/internal/models"
	"github.com/quizforge/backend/internal/platform/logger"
)

const (
	defaultTitle       = "Generated Quiz"
	minutesPerQuestion = 1.5
)

type EngineConfig struct {
	Tuning Tuning
	Logger *logger.Logger
	// Now stamps CreatedAt; defaults to time.Now.
	Now func() time.Time
	// Generators replaces the primary generator set; nil runs all of them.
	Generators []QuestionGenerator
}

// Engine turns cleaned document text into a quiz. It holds no per-request
// state and is safe for concurrent use.
type Engine struct {
	tuning     Tuning
	log        *logger.Logger
	now        func() time.Time
	generators []QuestionGenerator
}

func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Tuning == (Tuning{}) {
		cfg.Tuning = DefaultTuning()
	}
	if cfg.Generators == nil {
		cfg.Generators = primaryGenerators
	}
	return &Engine{tuning: cfg.Tuning, log: cfg.Logger, now: cfg.Now, generators: cfg.Generators}
}

type Request struct {
	Text       string
	Difficulty models.Difficulty
	Title      string
	QuizID     string
	// Seed pins every random choice; nil seeds from the clock.
	Seed *int64
}

// Generate runs segmentation, fact extraction, generation and selection.
// Each stage aborts with a *GenerationError when it falls below its
// minimum; no partial quiz is ever returned with an error.
func (e *Engine) Generate(ctx context.Context, req Request) (*models.Quiz, error) {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	if !models.ValidDifficulties[difficulty] {
		return nil, ErrInvalidDifficulty
	}
	rng := newClockRand()
	if req.Seed != nil {
		rng = NewRand(*req.Seed)
	}
	log := e.log.With("quiz_id", req.QuizID, "difficulty", difficulty)

	chunks, err := Segment(req.Text, e.tuning)
	if err != nil {
		log.Info("quiz generation aborted", "stage", "segment", "error", err)
		return nil, err
	}
	log.Debug("segmented text", "chunks", len(chunks))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	facts, err := ExtractFacts(chunks, e.tuning)
	if err != nil {
		log.Info("quiz generation aborted", "stage", "facts", "error", err)
		return nil, err
	}
	log.Debug("extracted facts", "facts", len(facts))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := Input{Chunks: chunks, Facts: facts, Difficulty: difficulty, Rand: rng, Tuning: e.tuning}
	var candidates []Candidate
	for _, g := range e.generators {
		got := g.Generate(in)
		log.Debug("generated candidates", "family", g.Family, "count", len(got))
		candidates = append(candidates, got...)
	}
	budget := difficulty.QuestionBudget()
	if len(candidates) < 2*budget {
		got := ComparisonMCQ(in)
		log.Debug("generated candidates", "family", FamilyComparison, "count", len(got))
		candidates = append(candidates, got...)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	questions := Select(candidates, difficulty, e.tuning)
	switch {
	case len(questions) == 0:
		err = newGenerationError(CodeGenerationFailed, 0)
	case len(questions) < e.tuning.MinQuestions:
		err = newGenerationError(CodeInsufficientQuestions, len(questions))
	}
	if err != nil {
		log.Info("quiz generation aborted", "stage", "select", "candidates", len(candidates), "error", err)
		return nil, err
	}

	id := req.QuizID
	now := e.now()
	if id == "" {
		id = fmt.Sprintf("quiz-%d", now.UnixMilli())
	}
	quiz := &models.Quiz{
		ID:             id,
		Title:          quizTitle(req.Title, chunks),
		Difficulty:     difficulty,
		Questions:      questions,
		TotalQuestions: len(questions),
		EstimatedTime:  EstimatedTime(len(questions)),
		CreatedAt:      now.UTC(),
	}
	log.Info("quiz generated", "questions", quiz.TotalQuestions, "candidates", len(candidates))
	return quiz, nil
}

// EstimatedTime is the expected completion time in minutes.
func EstimatedTime(questions int) int {
	return int(math.Ceil(float64(questions) * minutesPerQuestion))
}

// quizTitle prefers the caller's title, then the first section heading.
func quizTitle(title string, chunks []Chunk) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	for _, c := range chunks {
		if c.Heading != "" {
			return cases.Title(language.English).String(strings.ToLower(c.Heading))
		}
	}
	return defaultTitle
}
