package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"learnable-backend/internal/handlers"
	"learnable-backend/internal/middleware"
)

func New(
	summaryHandler *handlers.SummaryHandler,
	mindmapHandler *handlers.MindmapHandler,
	quizHandler *handlers.QuizHandler,
	flashcardHandler *handlers.FlashcardHandler,
	transcriptionHandler *handlers.TranscriptionHandler,
	formatsHandler *handlers.FormatsHandler,
	frontendURL string,
	maxUploadBytes int64,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))
	r.Use(middleware.MaxBody(maxUploadBytes))

	// Health check
	r.Get("/health", handlers.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/supported-formats", formatsHandler.SupportedFormats)

		r.Post("/summarize", summaryHandler.Summarize)
		r.Post("/mindmap", mindmapHandler.Generate)

		r.Post("/quiz", quizHandler.Generate)
		r.Get("/quiz", quizHandler.GenerateFromQuery)

		r.Post("/flashcards", flashcardHandler.Generate)

		r.Post("/transcribe-audio", transcriptionHandler.TranscribeAudio)
	})

	return r
}
