// Package respond holds the JSON reply helpers shared by the REST handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"fastfeet/internal/dto"
	"fastfeet/pkg/logger"
)

func JSON(w http.ResponseWriter, log logger.Logger, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func Error(w http.ResponseWriter, log logger.Logger, status int, message string) {
	JSON(w, log, status, dto.Error{Error: message})
}
