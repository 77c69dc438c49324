package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alex38x15-dot/nebula-draw-magic/internal/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps any pipeline error onto the uniform {error: message} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var perr *Error
	if errors.As(err, &perr) {
		status = perr.Status()
		message = perr.Message
	}

	log.FromContextOrDiscard(r.Context()).Error("request failed",
		"path", r.URL.Path,
		"status", status,
		"err", err,
	)
	writeJSON(w, status, map[string]string{"error": message})
}
