package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"learnable-backend/internal/models"
	"learnable-backend/internal/services"
)

const parseMemoryBytes = 32 * 1024 * 1024

// generationRequest is the decoded input shared by every generation endpoint.
// Clients send either a JSON body or a multipart form with file fields. Body
// size is capped upstream by the router's MaxBody middleware.
type generationRequest struct {
	Text         string
	Topic        string
	NumQuestions int
	Inputs       services.ContentInputs

	openFiles []multipart.File
}

func (g *generationRequest) Close() {
	for _, f := range g.openFiles {
		f.Close()
	}
}

func parseGenerationRequest(r *http.Request) (*generationRequest, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		return parseMultipartRequest(r)
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	// The endpoint request shapes overlap; decode all of them from the same
	// body and take whichever fields the client populated.
	var (
		summarize models.SummarizeRequest
		mindmap   models.MindmapRequest
		quiz      models.QuizRequest
		flashcard models.FlashcardRequest
	)
	for _, dst := range []interface{}{&summarize, &mindmap, &quiz, &flashcard} {
		if err := json.Unmarshal(data, dst); err != nil {
			return nil, err
		}
	}

	text := summarize.Text
	if text == "" {
		text = quiz.Content
	}
	if text == "" {
		text = flashcard.Content
	}

	req := &generationRequest{
		Text:         text,
		Topic:        mindmap.Topic,
		NumQuestions: quiz.NumQuestions,
	}
	req.Inputs.Text = text
	return req, nil
}

func parseMultipartRequest(r *http.Request) (*generationRequest, error) {
	if err := r.ParseMultipartForm(parseMemoryBytes); err != nil {
		return nil, err
	}

	text := r.FormValue("text")
	if text == "" {
		text = r.FormValue("content")
	}

	req := &generationRequest{
		Text:  text,
		Topic: r.FormValue("topic"),
	}
	req.Inputs.Text = text

	if n := r.FormValue("num_questions"); n != "" {
		// Non-numeric counts fall through to the default via clamping.
		req.NumQuestions = atoiOrZero(n)
	}

	req.Inputs.Audio = req.formFile(r, "audio_file")
	req.Inputs.Video = req.formFile(r, "video_file")
	req.Inputs.Document = req.formFile(r, "document_file")

	return req, nil
}

func (g *generationRequest) formFile(r *http.Request, field string) *models.FileUpload {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil
	}

	g.openFiles = append(g.openFiles, file)
	return &models.FileUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Reader:   file,
	}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
