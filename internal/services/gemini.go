package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiService wraps the one shared Gemini client for the process. Model
// handles are derived per call (cheap struct construction, no network) so
// each operation can carry its own system instruction.
type GeminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

func (s *GeminiService) model(systemPrompt string, temperature float32) *genai.GenerativeModel {
	model := s.client.GenerativeModel(s.modelName)
	model.SetTemperature(temperature)
	model.SetTopP(0.95)
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}
	return model
}

// RunPrompt runs a system prompt plus user input and returns the plain text
// response.
func (s *GeminiService) RunPrompt(ctx context.Context, systemPrompt, input string) (string, error) {
	model := s.model(systemPrompt, 0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(input))
	if err != nil {
		return "", externalFailure("Gemini API error: %v", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", externalFailure("Gemini returned an empty response")
	}

	return text, nil
}

// TranscribeMedia sends a media payload inline (base64 on the wire) together
// with a transcription prompt and returns the raw transcript.
func (s *GeminiService) TranscribeMedia(ctx context.Context, data []byte, mimeType, prompt string) (string, error) {
	if len(data) == 0 {
		return "", invalidInput("media payload is empty")
	}

	model := s.model(transcriberSystemMessage, 0.3)

	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.Blob{MIMEType: mimeType, Data: data},
	)
	if err != nil {
		return "", externalFailure("Gemini transcription error: %v", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", externalFailure("Gemini returned an empty transcription")
	}

	return text, nil
}

// RunStructured constrains the response to the given schema and returns the
// raw JSON text for the caller to unmarshal.
func (s *GeminiService) RunStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	model := s.model("", 0.3)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", externalFailure("Gemini API error: %v", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", externalFailure("Gemini returned an empty structured response")
	}

	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
