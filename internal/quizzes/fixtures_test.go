package quizzes

import (
	"context"
	"sync"
	"time"

	"github.com/quizforge/backend/internal/generator"
	"github.com/quizforge/backend/internal/models"
)

const biologyDoc = `PHOTOSYNTHESIS
Photosynthesis is a biological process that converts light energy into chemical energy. It takes place mainly in the leaves of green plants. The Calvin Cycle produces glucose from carbon dioxide in about 6 steps.

CELLULAR RESPIRATION
Cellular respiration is a metabolic pathway that releases energy stored in glucose. The mitochondria are organelles that produce about 36 molecules of ATP per glucose. The citric acid cycle was described by Hans Krebs in 1937.

ENZYMES
An enzyme is a protein catalyst that speeds up chemical reactions in cells. Enzymes are highly specific and each one binds a particular substrate. The lock and key model was proposed by Emil Fischer in 1894.
`

const narrativeDoc = `MORNING
We woke up early and walked slowly toward the quiet river. Birds drifted over the water while we talked about nothing much. Later we ate bread and cheese on the grassy bank.

AFTERNOON
Clouds gathered above the hills and the wind turned cold. We packed our bags quickly and hurried back along the narrow path. Rain started to fall just before we reached the car.

EVENING
We cooked soup and sat by the fire until late. Nobody wanted to talk much after the long walk. Eventually everyone drifted off to sleep in the warm cabin.
`

// tickingClock returns a clock that advances one second per call so quiz
// ids never collide.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func newTestService(cache QuizCache) (*Service, *MemoryStore) {
	store := NewMemoryStore()
	svc := NewService(ServiceConfig{
		Engine: generator.NewEngine(generator.EngineConfig{Now: tickingClock()}),
		Store:  store,
		Cache:  cache,
	})
	return svc, store
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]*models.Quiz
	gets    int
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*models.Quiz)}
}

func (c *memoryCache) Get(_ context.Context, key string) (*models.Quiz, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	q, ok := c.entries[key]
	return q, ok
}

func (c *memoryCache) Set(_ context.Context, key string, quiz *models.Quiz) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[key] = quiz
}

func seed(v int64) *int64 { return &v }
