package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request after it completes.
// Server errors are logged at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.status
		if !rw.wroteHeader {
			status = http.StatusOK
		}

		level := zerolog.InfoLevel
		if status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		logger.FromRequest(r).WithLevel(level).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
