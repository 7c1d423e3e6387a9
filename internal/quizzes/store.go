package quizzes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/quizforge/backend/internal/models"
)

var ErrQuizNotFound = errors.New("quiz not found")

// QuizStore persists generated quizzes. key is the request's ContentKey.
type QuizStore interface {
	Save(ctx context.Context, key string, quiz *models.Quiz) error
	Get(ctx context.Context, id string) (*models.Quiz, error)
	List(ctx context.Context, limit, offset int) ([]models.QuizSummary, error)
}

// ── Memory ─────────────────────────────────────────────

type MemoryStore struct {
	mu      sync.RWMutex
	quizzes map[string]*models.Quiz
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{quizzes: make(map[string]*models.Quiz)}
}

func (s *MemoryStore) Save(_ context.Context, _ string, quiz *models.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizzes[quiz.ID] = quiz
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quizzes[id]
	if !ok {
		return nil, ErrQuizNotFound
	}
	return q, nil
}

// List returns summaries newest first.
func (s *MemoryStore) List(_ context.Context, limit, offset int) ([]models.QuizSummary, error) {
	s.mu.RLock()
	out := make([]models.QuizSummary, 0, len(s.quizzes))
	for _, q := range s.quizzes {
		out = append(out, q.Summary())
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.QuizSummary) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	if offset >= len(out) {
		return []models.QuizSummary{}, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// ── Postgres ───────────────────────────────────────────

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, key string, quiz *models.Quiz) error {
	body, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("encode quiz: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quizzes (id, content_key, title, difficulty, total_questions, estimated_time, body, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE
		 SET content_key = EXCLUDED.content_key, title = EXCLUDED.title, difficulty = EXCLUDED.difficulty,
		     total_questions = EXCLUDED.total_questions, estimated_time = EXCLUDED.estimated_time,
		     body = EXCLUDED.body, created_at = EXCLUDED.created_at`,
		quiz.ID, key, quiz.Title, quiz.Difficulty, quiz.TotalQuestions, quiz.EstimatedTime, body, quiz.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save quiz: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*models.Quiz, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, `SELECT body FROM quizzes WHERE id = $1`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	var quiz models.Quiz
	if err := json.Unmarshal(body, &quiz); err != nil {
		return nil, fmt.Errorf("decode quiz %s: %w", id, err)
	}
	return &quiz, nil
}

func (s *PostgresStore) List(ctx context.Context, limit, offset int) ([]models.QuizSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, difficulty, total_questions, estimated_time, created_at
		 FROM quizzes ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	out := []models.QuizSummary{}
	for rows.Next() {
		var q models.QuizSummary
		if err := rows.Scan(&q.ID, &q.Title, &q.Difficulty, &q.TotalQuestions, &q.EstimatedTime, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
