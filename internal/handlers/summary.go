package handlers

import (
	"context"
	"net/http"

	"learnable-backend/internal/models"
	"learnable-backend/internal/services"
)

type SummaryHandler struct {
	learning summaryService
}

type summaryService interface {
	Summarize(ctx context.Context, in services.ContentInputs) (*models.SummarizeResponse, error)
}

func NewSummaryHandler(learning summaryService) *SummaryHandler {
	return &SummaryHandler{learning: learning}
}

func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	req, err := parseGenerationRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	defer req.Close()

	resp, err := h.learning.Summarize(r.Context(), req.Inputs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
