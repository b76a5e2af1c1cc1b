package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

// writeError logs err and answers with the status and message mapped to it.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", resp.status).Send()

	utils.WriteError(w, resp.message, resp.status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
