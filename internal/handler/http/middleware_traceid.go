package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength bounds caller supplied ids before they reach the logs.
	maxTraceIDLength = 64
)

// withTraceID tags the request logger with a trace id. A well formed id
// sent by the caller is reused, otherwise a new UUID is generated. The id
// is echoed in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := incomingTraceID(r)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

func incomingTraceID(r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(traceIDHeader))
	if id == "" || len(id) > maxTraceIDLength {
		return ""
	}
	for _, c := range id {
		if !isTraceIDChar(c) {
			return ""
		}
	}
	return id
}

func isTraceIDChar(c rune) bool {
	return c == '-' || c == '_' || c == '.' ||
		(c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
