package handlers

import (
	"context"
	"io"
	"net/http"

	"learnable-backend/internal/models"
	"learnable-backend/internal/services"
)

type TranscriptionHandler struct {
	revai audioTranscriber
}

type audioTranscriber interface {
	Configured() bool
	Transcribe(ctx context.Context, fileName string, media io.Reader) (string, string, error)
}

func NewTranscriptionHandler(revai audioTranscriber) *TranscriptionHandler {
	return &TranscriptionHandler{revai: revai}
}

// TranscribeAudio runs an uploaded audio file through the dedicated
// speech-to-text provider and returns the raw transcript.
func (h *TranscriptionHandler) TranscribeAudio(w http.ResponseWriter, r *http.Request) {
	if !h.revai.Configured() {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Rev.ai API key not configured"})
		return
	}

	if err := r.ParseMultipartForm(parseMemoryBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	file, header, err := r.FormFile("audio_file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "audio_file is required"})
		return
	}
	defer file.Close()

	if _, verr := services.ValidateAudioFile(header.Filename); verr != nil {
		writeServiceError(w, r, verr)
		return
	}

	jobID, transcript, err := h.revai.Transcribe(r.Context(), header.Filename, file)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.TranscriptionResponse{
		Success:    true,
		JobID:      jobID,
		Transcript: transcript,
		FileName:   header.Filename,
	})
}
