package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/vocab-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into a 500 JSON error. It must run inside
// RequestID so the log line carries the id the access log uses.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				ctx := r.Context()
				logger.ErrorContext(ctx, "handler panic",
					slog.Any("error", rec),
					slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
