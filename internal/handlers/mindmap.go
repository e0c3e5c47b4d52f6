package handlers

import (
	"context"
	"net/http"

	"learnable-backend/internal/models"
	"learnable-backend/internal/services"
)

type MindmapHandler struct {
	learning mindmapService
}

type mindmapService interface {
	GenerateMindmap(ctx context.Context, topic string, in services.ContentInputs) (*models.MindmapResponse, error)
}

func NewMindmapHandler(learning mindmapService) *MindmapHandler {
	return &MindmapHandler{learning: learning}
}

func (h *MindmapHandler) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := parseGenerationRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	defer req.Close()

	resp, err := h.learning.GenerateMindmap(r.Context(), req.Topic, req.Inputs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
