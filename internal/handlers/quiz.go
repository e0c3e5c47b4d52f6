package handlers

import (
	"context"
	"net/http"
	"strconv"

	"learnable-backend/internal/models"
	"learnable-backend/internal/services"
)

type QuizHandler struct {
	learning quizService
}

type quizService interface {
	GenerateQuiz(ctx context.Context, numQuestions int, in services.ContentInputs) (*models.QuizResponse, error)
}

func NewQuizHandler(learning quizService) *QuizHandler {
	return &QuizHandler{learning: learning}
}

func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := parseGenerationRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	defer req.Close()

	resp, err := h.learning.GenerateQuiz(r.Context(), req.NumQuestions, req.Inputs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GenerateFromQuery serves quick quiz generation driven by query parameters.
func (h *QuizHandler) GenerateFromQuery(w http.ResponseWriter, r *http.Request) {
	content := r.URL.Query().Get("content")
	numQuestions, _ := strconv.Atoi(r.URL.Query().Get("num_questions"))

	resp, err := h.learning.GenerateQuiz(r.Context(), numQuestions, services.ContentInputs{Text: content})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
