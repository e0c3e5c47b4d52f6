package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"learnable-backend/internal/models"
	"learnable-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps service error kinds onto HTTP status codes and emits
// the flat error body every endpoint shares.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	if serr, ok := err.(*services.ServiceError); ok {
		switch serr.Kind {
		case services.KindInvalidInput, services.KindResourceLimit:
			status = http.StatusBadRequest
		case services.KindExternalService:
			status = http.StatusBadGateway
		case services.KindParseFailure:
			status = http.StatusUnprocessableEntity
		}
	}

	if status == http.StatusInternalServerError || status == http.StatusBadGateway {
		log.Printf("%s %s failed: %v", r.Method, r.URL.Path, err)
	}

	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}
