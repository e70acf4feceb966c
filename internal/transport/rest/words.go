package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/vocab-backend/internal/domain"
	"github.com/heartmarshall/vocab-backend/internal/service/dictionary"
	"github.com/heartmarshall/vocab-backend/internal/service/examples"
)

type dictionaryService interface {
	ListWords(ctx context.Context, input dictionary.ListWordsInput) ([]domain.Word, error)
	GetWord(ctx context.Context, id int64) (*domain.Word, error)
	CreateWord(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error)
	UpdateWord(ctx context.Context, input dictionary.UpdateWordInput) (*domain.Word, error)
	DeleteWord(ctx context.Context, id int64) error
}

type examplesService interface {
	Generate(ctx context.Context, input examples.GenerateInput) ([]domain.GeneratedExample, error)
}

// WordHandler serves /api/words.
type WordHandler struct {
	words    dictionaryService
	examples examplesService
	errs     errorResponder
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(words dictionaryService, ex examplesService, logger *slog.Logger) *WordHandler {
	log := logger.With("handler", "words")
	return &WordHandler{
		words:    words,
		examples: ex,
		errs:     errorResponder{log: log, notFound: "Word not found"},
	}
}

type wordRequest struct {
	En         *string    `json:"en"`
	Ja         *string    `json:"ja"`
	Example    *string    `json:"example"`
	Notes      *string    `json:"notes"`
	CategoryID *int64     `json:"category_id"`
	CreatedAt  *time.Time `json:"created_at"`
}

type generateExamplesRequest struct {
	En string  `json:"en"`
	Ja *string `json:"ja"`
}

// List handles GET /api/words?search=&category_id=&mastery_level=.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var input dictionary.ListWordsInput

	if v := q.Get("search"); v != "" {
		input.Search = &v
	}
	if v := q.Get("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		input.CategoryID = &id
	}
	if v := q.Get("mastery_level"); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid mastery_level")
			return
		}
		input.MasteryLevel = &level
	}

	words, err := h.words.ListWords(r.Context(), input)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponses(words))
}

// Get handles GET /api/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	word, err := h.words.GetWord(r.Context(), id)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// Create handles POST /api/words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := dictionary.CreateWordInput{
		Example:    req.Example,
		Notes:      req.Notes,
		CategoryID: req.CategoryID,
		CreatedAt:  req.CreatedAt,
	}
	if req.En != nil {
		input.En = *req.En
	}
	if req.Ja != nil {
		input.Ja = *req.Ja
	}

	word, err := h.words.CreateWord(r.Context(), input)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(word))
}

// Update handles PUT /api/words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req wordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	word, err := h.words.UpdateWord(r.Context(), dictionary.UpdateWordInput{
		ID:         id,
		En:         req.En,
		Ja:         req.Ja,
		Example:    req.Example,
		Notes:      req.Notes,
		CategoryID: req.CategoryID,
		CreatedAt:  req.CreatedAt,
	})
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// Delete handles DELETE /api/words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.words.DeleteWord(r.Context(), id); err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeMessage(w, "Word deleted successfully")
}

// GenerateExamples handles POST /api/words/generate-examples.
func (h *WordHandler) GenerateExamples(w http.ResponseWriter, r *http.Request) {
	var req generateExamplesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	generated, err := h.examples.Generate(r.Context(), examples.GenerateInput{En: req.En, Ja: req.Ja})
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	out := make([]exampleResponse, 0, len(generated))
	for _, ex := range generated {
		out = append(out, exampleResponse{En: ex.En, Ja: ex.Ja})
	}
	writeJSON(w, http.StatusOK, map[string]any{"examples": out})
}
