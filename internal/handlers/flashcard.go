package handlers

import (
	"context"
	"net/http"

	"learnable-backend/internal/models"
	"learnable-backend/internal/services"
)

type FlashcardHandler struct {
	learning flashcardService
}

type flashcardService interface {
	GenerateFlashcards(ctx context.Context, in services.ContentInputs) (*models.FlashcardResponse, error)
}

func NewFlashcardHandler(learning flashcardService) *FlashcardHandler {
	return &FlashcardHandler{learning: learning}
}

func (h *FlashcardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := parseGenerationRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	defer req.Close()

	resp, err := h.learning.GenerateFlashcards(r.Context(), req.Inputs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
