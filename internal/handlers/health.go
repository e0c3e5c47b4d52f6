package handlers

import (
	"net/http"

	"learnable-backend/internal/models"
)

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Service is healthy",
	})
}
