package quizzes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xeipuuv/gojsonschema"

	"github.com/quizforge/backend/internal/generator"
	"github.com/quizforge/backend/internal/middleware"
	"github.com/quizforge/backend/internal/models"
	"github.com/quizforge/backend/internal/platform/logger"
)

const generateRequestSchema = `{
	"type": "object",
	"required": ["text"],
	"additionalProperties": false,
	"properties": {
		"text":       {"type": "string", "minLength": 1},
		"difficulty": {"type": "string", "enum": ["easy", "medium", "hard"]},
		"title":      {"type": "string", "maxLength": 255},
		"seed":       {"type": "integer"}
	}
}`

var generateSchema *gojsonschema.Schema

func init() {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(generateRequestSchema))
	if err != nil {
		panic(fmt.Sprintf("quizzes: compile request schema: %v", err))
	}
	generateSchema = schema
}

type Handler struct {
	service      *Service
	log          *logger.Logger
	maxBodyBytes int64
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	// JSON escaping can inflate the text; leave headroom over the text limit.
	return &Handler{service: service, log: log, maxBodyBytes: int64(service.maxTextBytes)*2 + 4096}
}

// Register mounts the quiz routes on r, which is expected to be the
// /api/v1 subrouter.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/quizzes", h.Create).Methods("POST")
	r.HandleFunc("/quizzes", h.List).Methods("GET")
	r.HandleFunc("/quizzes/{id}", h.Get).Methods("GET")
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: ErrTextTooLong.Error()})
			return
		}
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := generateSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: strings.Join(msgs, "; ")})
		return
	}

	var req models.GenerateQuizRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	log := h.log.With("request_id", middleware.RequestID(r.Context()))
	if sub, ok := middleware.Subject(r.Context()); ok {
		log = log.With("subject", sub)
	}
	quiz, err := h.service.Generate(r.Context(), req)
	if err != nil {
		log.Info("quiz request rejected", "error", err)
		h.writeError(w, err)
		return
	}
	log.Info("quiz request served", "quiz_id", quiz.ID)
	writeJSON(w, http.StatusCreated, quiz)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := min(intQueryParam(query, "limit", 20), 100)
	offset := intQueryParam(query, "offset", 0)

	quizzes, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quizzes)
}

// writeError maps service and engine errors onto HTTP statuses. Generation
// errors carry their code so clients can tell the failing stage apart.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var genErr *generator.GenerationError
	switch {
	case errors.As(err, &genErr):
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: genErr.Message, Code: string(genErr.Code)})
	case errors.Is(err, ErrTextTooShort), errors.Is(err, generator.ErrInvalidDifficulty):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrTextTooLong):
		writeJSON(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrQuizNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Quiz not found"})
	default:
		h.log.Error("quiz request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, defaultVal int) int {
	s := query.Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	return v
}
