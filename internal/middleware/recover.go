package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/GregMSThompson/tool-agent/internal/response"
	"github.com/GregMSThompson/tool-agent/pkg/logger"
)

// Recoverer turns a handler panic into a JSON 500. http.ErrAbortHandler is
// re-raised so net/http can abort the connection.
func Recoverer(rh response.ResponseHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				logger.FromContext(r.Context()).Error("handler panicked",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				rh.WriteError(w, r, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
