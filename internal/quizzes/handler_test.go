package quizzes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/xeipuuv/gojsonschema"

	"github.com/quizforge/backend/internal/generator"
	"github.com/quizforge/backend/internal/middleware"
	"github.com/quizforge/backend/internal/models"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	svc, _ := newTestService(nil)
	r := mux.NewRouter()
	NewHandler(svc, nil).Register(r.PathPrefix("/api/v1").Subrouter())
	return r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreateAndFetch(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodPost, "/api/v1/quizzes", map[string]any{
		"text":       biologyDoc,
		"difficulty": "easy",
		"title":      "Cell Biology",
		"seed":       5,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var raw struct {
		ID        string            `json:"id"`
		Title     string            `json:"title"`
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	if raw.Title != "Cell Biology" || len(raw.Questions) == 0 {
		t.Fatalf("unexpected body %s", rec.Body)
	}
	for _, q := range raw.Questions {
		var probe struct {
			Type   models.QuestionType `json:"type"`
			Answer json.RawMessage     `json:"answer"`
		}
		if err := json.Unmarshal(q, &probe); err != nil {
			t.Fatal(err)
		}
		isArray := strings.HasPrefix(string(probe.Answer), "[")
		if isArray != (probe.Type == models.QuestionMultiple) {
			t.Errorf("answer %s does not match type %s", probe.Answer, probe.Type)
		}
	}

	get := do(r, http.MethodGet, "/api/v1/quizzes/"+raw.ID, nil)
	if get.Code != http.StatusOK {
		t.Fatalf("GET status = %d", get.Code)
	}
	list := do(r, http.MethodGet, "/api/v1/quizzes?limit=5", nil)
	var summaries []models.QuizSummary
	if err := json.Unmarshal(list.Body.Bytes(), &summaries); err != nil || len(summaries) != 1 || summaries[0].ID != raw.ID {
		t.Errorf("list = %s (%v)", list.Body, err)
	}
}

func TestHandler_Errors(t *testing.T) {
	r := newTestRouter(t)
	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		status   int
		wantCode string
	}{
		{"malformed json", http.MethodPost, "/api/v1/quizzes", `{"text":`, http.StatusBadRequest, ""},
		{"missing text", http.MethodPost, "/api/v1/quizzes", map[string]any{"difficulty": "easy"}, http.StatusBadRequest, ""},
		{"unknown field", http.MethodPost, "/api/v1/quizzes", map[string]any{"text": biologyDoc, "count": 3}, http.StatusBadRequest, ""},
		{"bad difficulty", http.MethodPost, "/api/v1/quizzes", map[string]any{"text": biologyDoc, "difficulty": "expert"}, http.StatusBadRequest, ""},
		{"text too short", http.MethodPost, "/api/v1/quizzes", map[string]any{"text": "Only a sentence."}, http.StatusBadRequest, ""},
		{"no facts", http.MethodPost, "/api/v1/quizzes", map[string]any{"text": narrativeDoc}, http.StatusUnprocessableEntity, "INSUFFICIENT_FACTS"},
		{"not found", http.MethodGet, "/api/v1/quizzes/quiz-404", nil, http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(r, tt.method, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body)
			}
			var resp models.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Error == "" || resp.Code != tt.wantCode {
				t.Errorf("error response = %+v", resp)
			}
		})
	}
}

func TestHandler_BodyTooLarge(t *testing.T) {
	svc, _ := newTestService(nil)
	svc.maxTextBytes = 1024
	r := mux.NewRouter()
	NewHandler(svc, nil).Register(r)

	rec := do(r, http.MethodPost, "/quizzes", map[string]any{"text": strings.Repeat("word ", 2000)})
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestHandler_TooFewQuestions(t *testing.T) {
	tuning := generator.DefaultTuning()
	tuning.MinQuestions = 50
	svc := NewService(ServiceConfig{
		Engine: generator.NewEngine(generator.EngineConfig{Tuning: tuning, Now: tickingClock()}),
	})
	r := mux.NewRouter()
	NewHandler(svc, nil).Register(r)

	rec := do(r, http.MethodPost, "/quizzes", map[string]any{"text": biologyDoc, "seed": 2})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != "INSUFFICIENT_QUESTIONS" {
		t.Errorf("code = %q", resp.Code)
	}
	if list, _ := svc.List(t.Context(), 10, 0); len(list) != 0 {
		t.Errorf("aborted request stored %d quizzes", len(list))
	}
}

func TestHandler_AuthenticatedCreate(t *testing.T) {
	secret := []byte("0123456789abcdef0123")
	svc, _ := newTestService(nil)
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(secret))
	NewHandler(svc, nil).Register(api)

	body := map[string]any{"text": biologyDoc, "difficulty": "easy", "seed": 4}
	if rec := do(r, http.MethodPost, "/api/v1/quizzes", body); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d", rec.Code)
	}

	token, err := middleware.GenerateToken(secret, "teacher-7", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quizzes", &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
}

func TestGenerateSchema(t *testing.T) {
	tests := []struct {
		body  string
		valid bool
	}{
		{`{"text":"abc"}`, true},
		{`{"text":"abc","difficulty":"hard","title":"T","seed":9}`, true},
		{`{"text":""}`, false},
		{`{"text":"abc","seed":1.5}`, false},
		{`{"title":"T"}`, false},
	}
	for _, tt := range tests {
		result, err := generateSchema.Validate(gojsonschema.NewStringLoader(tt.body))
		if err != nil {
			t.Fatalf("Validate(%s): %v", tt.body, err)
		}
		if result.Valid() != tt.valid {
			t.Errorf("Validate(%s) valid = %v, want %v", tt.body, result.Valid(), tt.valid)
		}
	}
}
