package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/vocab-backend/internal/domain"
	"github.com/heartmarshall/vocab-backend/internal/service/study"
)

type studyService interface {
	RandomWords(ctx context.Context, input study.RandomWordsInput) ([]domain.Word, error)
	RecordReview(ctx context.Context, input study.RecordReviewInput) (*domain.Word, error)
	GetStats(ctx context.Context) (*domain.Stats, error)
}

// StudyHandler serves /api/study and /api/stats.
type StudyHandler struct {
	svc  studyService
	errs errorResponder
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{
		svc:  svc,
		errs: errorResponder{log: logger.With("handler", "study"), notFound: "Word not found"},
	}
}

type recordRequest struct {
	WordID int64  `json:"word_id"`
	Result string `json:"result"`
}

type recordResponse struct {
	Message string       `json:"message"`
	Word    wordResponse `json:"word"`
}

// Random handles GET /api/study/random?count=.
func (h *StudyHandler) Random(w http.ResponseWriter, r *http.Request) {
	var input study.RandomWordsInput
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid count")
			return
		}
		input.Count = n
	}

	words, err := h.svc.RandomWords(r.Context(), input)
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponses(words))
}

// Record handles POST /api/study/record.
func (h *StudyHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.WordID == 0 || req.Result == "" {
		writeError(w, http.StatusBadRequest, "word_id and result fields are required")
		return
	}

	word, err := h.svc.RecordReview(r.Context(), study.RecordReviewInput{WordID: req.WordID, Result: req.Result})
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, recordResponse{
		Message: "Study session recorded successfully",
		Word:    toWordResponse(word),
	})
}

// Stats handles GET /api/stats.
func (h *StudyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.errs.respond(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalWords:    stats.TotalWords,
		MasteredWords: stats.MasteredWords,
		ReviewNeeded:  stats.ReviewNeeded,
		TotalSessions: stats.TotalSessions,
	})
}
