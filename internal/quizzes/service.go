package quizzes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quizforge/backend/internal/generator"
	"github.com/quizforge/backend/internal/models"
	"github.com/quizforge/backend/internal/platform/logger"
)

const (
	// MinTextChars is the shortest trimmed document worth segmenting.
	MinTextChars = 200
	// MaxTextBytes bounds engine work per request.
	MaxTextBytes = 512 * 1024
)

var (
	ErrTextTooShort = fmt.Errorf("text must be at least %d characters", MinTextChars)
	ErrTextTooLong  = errors.New("text exceeds the maximum document size")
)

type ServiceConfig struct {
	Engine       *generator.Engine
	Store        QuizStore
	Cache        QuizCache // optional
	Logger       *logger.Logger
	MaxTextBytes int
}

type Service struct {
	engine       *generator.Engine
	store        QuizStore
	cache        QuizCache
	log          *logger.Logger
	maxTextBytes int
}

func NewService(cfg ServiceConfig) *Service {
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}
	if cfg.MaxTextBytes <= 0 {
		cfg.MaxTextBytes = MaxTextBytes
	}
	if cfg.Store == nil {
		cfg.Store = NewMemoryStore()
	}
	return &Service{
		engine:       cfg.Engine,
		store:        cfg.Store,
		cache:        cfg.Cache,
		log:          cfg.Logger.With("component", "quizzes"),
		maxTextBytes: cfg.MaxTextBytes,
	}
}

// Generate pre-checks the document, then serves a seeded request from cache
// or runs the engine and persists the result.
func (s *Service) Generate(ctx context.Context, req models.GenerateQuizRequest) (*models.Quiz, error) {
	if len(req.Text) > s.maxTextBytes {
		return nil, ErrTextTooLong
	}
	text := strings.TrimSpace(req.Text)
	if len([]rune(text)) < MinTextChars {
		return nil, ErrTextTooShort
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	if !models.ValidDifficulties[difficulty] {
		return nil, generator.ErrInvalidDifficulty
	}

	key := ContentKey(difficulty, req.Seed, text)
	cacheable := req.Seed != nil && s.cache != nil
	if cacheable {
		if quiz, ok := s.cache.Get(ctx, key); ok {
			s.log.Debug("quiz served from cache", "quiz_id", quiz.ID, "key", key)
			return quiz, nil
		}
	}

	quiz, err := s.engine.Generate(ctx, generator.Request{
		Text:       text,
		Difficulty: difficulty,
		Title:      req.Title,
		Seed:       req.Seed,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, key, quiz); err != nil {
		return nil, fmt.Errorf("persist quiz: %w", err)
	}
	if cacheable {
		s.cache.Set(ctx, key, quiz)
	}
	s.log.Info("quiz created", "quiz_id", quiz.ID, "questions", quiz.TotalQuestions, "difficulty", difficulty)
	return quiz, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Quiz, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]models.QuizSummary, error) {
	return s.store.List(ctx, limit, offset)
}
