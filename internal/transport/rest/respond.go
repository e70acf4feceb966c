package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

// decodeJSON reads a JSON body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusBadRequest, "request body is empty")
		default:
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return false
	}
	return true
}

// pathID parses the {id} path value and writes a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// errorResponder maps domain errors to HTTP responses. Only 5xx are logged.
type errorResponder struct {
	log *slog.Logger
	// notFound is the message used for ErrNotFound, e.g. "Word not found".
	notFound string
}

func (e errorResponder) respond(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, validationResponse(ve))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, e.notFound)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "concurrent update, please retry")
	case errors.Is(err, domain.ErrNoExamples):
		writeError(w, http.StatusUnprocessableEntity, "no usable text generated")
	case errors.Is(err, domain.ErrLLMUnavailable):
		e.log.WarnContext(r.Context(), "language model unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "failed to generate examples")
	case errors.Is(err, domain.ErrCommitUncertain):
		e.log.ErrorContext(r.Context(), "commit outcome unknown", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "outcome unknown, check before retrying")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
		w.WriteHeader(499)
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "request timed out")
	default:
		e.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields"`
}

func validationResponse(ve *domain.ValidationError) validationErrorResponse {
	fields := make([]fieldErrorResponse, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return validationErrorResponse{Error: ve.Error(), Fields: fields}
}
