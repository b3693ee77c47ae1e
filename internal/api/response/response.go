// Package response writes the JSON bodies every endpoint and middleware
// shares. Errors are always {"message": "..."}.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/logger"
)

const contentTypeJSON = "application/json; charset=utf-8"

type messageBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set(model.HeaderContentType, contentTypeJSON)
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to encode JSON response",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

func Message(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, messageBody{Message: msg})
}
