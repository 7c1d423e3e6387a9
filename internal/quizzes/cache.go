package quizzes

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/quizforge/backend/internal/models"
	"github.com/quizforge/backend/internal/platform/cache"
	"github.com/quizforge/backend/internal/platform/logger"
)

// QuizCache holds quizzes for seeded requests by ContentKey. Misses and
// backend failures both report ok == false.
type QuizCache interface {
	Get(ctx context.Context, key string) (*models.Quiz, bool)
	Set(ctx context.Context, key string, quiz *models.Quiz)
}

type RedisCache struct {
	cache *cache.Cache
	ttl   time.Duration
	log   *logger.Logger
}

func NewRedisCache(c *cache.Cache, ttl time.Duration, log *logger.Logger) *RedisCache {
	return &RedisCache{cache: c, ttl: ttl, log: log.With("component", "quiz_cache")}
}

func (r *RedisCache) Get(ctx context.Context, key string) (*models.Quiz, bool) {
	b, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			r.log.Warn("cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	var quiz models.Quiz
	if err := json.Unmarshal(b, &quiz); err != nil {
		r.log.Warn("cache entry unreadable", "key", key, "error", err)
		return nil, false
	}
	return &quiz, true
}

func (r *RedisCache) Set(ctx context.Context, key string, quiz *models.Quiz) {
	b, err := json.Marshal(quiz)
	if err != nil {
		r.log.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := r.cache.Set(ctx, key, b, r.ttl); err != nil {
		r.log.Warn("cache write failed", "key", key, "error", err)
	}
}
