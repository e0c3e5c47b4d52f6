package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnable-backend/internal/config"
	"learnable-backend/internal/handlers"
	"learnable-backend/internal/router"
	"learnable-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Learnable Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("✗ Configuration error: %v", err)
	}
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Println("✓ Gemini client initialized")

	// ──── Step 3: Initialize Services ────
	youtubeService := services.NewYouTubeService()
	fileExtractService := services.NewFileExtractService()
	mediaService := services.NewMediaService(geminiService, fileExtractService, cfg.TempDir, cfg.MaxVideoUploadBytes)
	contentResolver := services.NewContentResolver(youtubeService, mediaService, geminiService)
	learningService := services.NewLearningService(geminiService, contentResolver)
	revAIService := services.NewRevAIService(cfg.RevAIAPIKey)
	if !revAIService.Configured() {
		log.Println("⚠ Rev.ai API key not set, /transcribe-audio will report a configuration error")
	}

	// ──── Step 4: Initialize Handlers ────
	summaryHandler := handlers.NewSummaryHandler(learningService)
	mindmapHandler := handlers.NewMindmapHandler(learningService)
	quizHandler := handlers.NewQuizHandler(learningService)
	flashcardHandler := handlers.NewFlashcardHandler(learningService)
	transcriptionHandler := handlers.NewTranscriptionHandler(revAIService)
	formatsHandler := handlers.NewFormatsHandler(cfg.MaxVideoUploadBytes)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		summaryHandler,
		mindmapHandler,
		quizHandler,
		flashcardHandler,
		transcriptionHandler,
		formatsHandler,
		cfg.FrontendURL,
		cfg.MaxUploadBytes,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Learnable Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
