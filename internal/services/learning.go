package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"learnable-backend/internal/models"
)

// TextGenerator is the slice of the LLM client the generators need.
type TextGenerator interface {
	RunPrompt(ctx context.Context, systemPrompt, input string) (string, error)
	RunStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// Resolver normalizes request inputs into plain text.
type Resolver interface {
	Resolve(ctx context.Context, text string, audio, video, document *models.FileUpload) (*models.ResolvedContent, error)
}

// ContentInputs carries the raw sources a generation request may supply.
type ContentInputs struct {
	Text     string
	Audio    *models.FileUpload
	Video    *models.FileUpload
	Document *models.FileUpload
}

// LearningService builds summaries, mindmaps, quizzes, and flashcards from
// resolved content.
type LearningService struct {
	llm      TextGenerator
	resolver Resolver
}

func NewLearningService(llm TextGenerator, resolver Resolver) *LearningService {
	return &LearningService{
		llm:      llm,
		resolver: resolver,
	}
}

// Summarize resolves the input to text and produces a summary. Plain text
// gets a concise free-form summary; transcribed or extracted media gets the
// structured layout with key points and statistics.
func (s *LearningService) Summarize(ctx context.Context, in ContentInputs) (*models.SummarizeResponse, error) {
	resolved, err := s.resolver.Resolve(ctx, in.Text, in.Audio, in.Video, in.Document)
	if err != nil {
		return nil, err
	}

	var summary string
	if resolved.ContentType == models.ContentTypeText {
		summary, err = s.llm.RunPrompt(ctx, textSummarizerSystemMessage, resolved.Text)
	} else {
		summary, err = s.llm.RunPrompt(ctx, summarizerSystemMessage, fmt.Sprintf(structuredSummaryFormat, resolved.Text))
	}
	if err != nil {
		return nil, err
	}

	return &models.SummarizeResponse{
		Success:           true,
		OriginalText:      resolved.Text,
		Summary:           summary,
		WordCountOriginal: countWords(resolved.Text),
		WordCountSummary:  countWords(summary),
		ContentType:       resolved.ContentType,
	}, nil
}

// GenerateMindmap builds a topic tree. An explicit topic is used as the
// generation subject directly; a topic that is a YouTube URL, or any file
// input, is resolved to text first and a short topic label is derived from it.
func (s *LearningService) GenerateMindmap(ctx context.Context, topic string, in ContentInputs) (*models.MindmapResponse, error) {
	topic = strings.TrimSpace(topic)

	subject := topic
	contentType := models.ContentTypeText
	if topic == "" || IsYouTubeURL(topic) {
		// A URL in the topic field is a content source, not a label.
		if topic != "" {
			in = ContentInputs{Text: topic}
		}
		resolved, err := s.resolver.Resolve(ctx, in.Text, in.Audio, in.Video, in.Document)
		if err != nil {
			return nil, err
		}
		subject = resolved.Text
		contentType = resolved.ContentType
		topic = s.topicLabel(ctx, resolved.Text)
	}

	raw, err := s.llm.RunPrompt(ctx, mindmapGenerationPrompt, subject)
	if err != nil {
		return nil, err
	}

	cleaned := StripCodeFence(raw)

	var root models.MindmapNode
	if err := json.Unmarshal([]byte(cleaned), &root); err != nil {
		return nil, parseFailure("Failed to parse mindmap JSON: %v. Raw response: %s...", err, snippet(raw, 200))
	}
	if strings.TrimSpace(root.Name) == "" {
		return nil, parseFailure("Failed to parse mindmap JSON: missing root name. Raw response: %s...", snippet(raw, 200))
	}

	return &models.MindmapResponse{
		Success:     true,
		Topic:       topic,
		Mindmap:     root,
		ContentType: contentType,
	}, nil
}

// topicLabel asks for a short title for the content, falling back to a
// truncation of the content itself when the call fails.
func (s *LearningService) topicLabel(ctx context.Context, content string) string {
	label, err := s.llm.RunPrompt(ctx, topicLabelSystemMessage, content)
	if err == nil {
		if label = strings.TrimSpace(label); label != "" {
			return label
		}
	}

	fields := strings.Fields(content)
	if len(fields) > 8 {
		fields = fields[:8]
	}
	return strings.Join(fields, " ")
}

// ClampQuestionCount keeps the requested question count within 1..50,
// substituting the default of 10 for anything out of range.
func ClampQuestionCount(n int) int {
	if n < 1 || n > 50 {
		return 10
	}
	return n
}

// structuredQuizDoc mirrors the constrained-output schema below.
type structuredQuizDoc struct {
	Questions []structuredQuizQuestion `json:"questions"`
}

type structuredQuizQuestion struct {
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

var quizResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"questions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"question":       {Type: genai.TypeString},
					"option_a":       {Type: genai.TypeString},
					"option_b":       {Type: genai.TypeString},
					"option_c":       {Type: genai.TypeString},
					"option_d":       {Type: genai.TypeString},
					"correct_answer": {Type: genai.TypeString, Description: "One of A, B, C, D"},
					"explanation":    {Type: genai.TypeString},
				},
				Required: []string{"question", "option_a", "option_b", "option_c", "option_d", "correct_answer", "explanation"},
			},
		},
	},
	Required: []string{"questions"},
}

// GenerateQuiz produces multiple choice questions via schema-constrained
// output. Questions whose answer letter or options are malformed are dropped
// rather than repaired.
func (s *LearningService) GenerateQuiz(ctx context.Context, numQuestions int, in ContentInputs) (*models.QuizResponse, error) {
	resolved, err := s.resolver.Resolve(ctx, in.Text, in.Audio, in.Video, in.Document)
	if err != nil {
		return nil, err
	}

	numQuestions = ClampQuestionCount(numQuestions)

	raw, err := s.llm.RunStructured(ctx, quizPrompt(numQuestions, resolved.Text), quizResponseSchema)
	if err != nil {
		return nil, err
	}

	var doc structuredQuizDoc
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &doc); err != nil {
		return nil, parseFailure("Failed to parse quiz JSON: %v. Raw response: %s...", err, snippet(raw, 200))
	}

	questions := make([]models.MCQQuestion, 0, len(doc.Questions))
	for _, q := range doc.Questions {
		answer := strings.ToUpper(strings.TrimSpace(q.CorrectAnswer))
		if answer != "A" && answer != "B" && answer != "C" && answer != "D" {
			continue
		}
		options := []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
		valid := strings.TrimSpace(q.Question) != ""
		for _, opt := range options {
			if strings.TrimSpace(opt) == "" {
				valid = false
			}
		}
		if !valid {
			continue
		}
		questions = append(questions, models.MCQQuestion{
			Question:      q.Question,
			Options:       options,
			CorrectAnswer: answer,
			Explanation:   q.Explanation,
		})
	}

	return &models.QuizResponse{
		Success:      true,
		Content:      resolved.Text,
		NumQuestions: numQuestions,
		Quiz:         questions,
		ContentType:  resolved.ContentType,
	}, nil
}

// GenerateFlashcards produces study cards from the resolved content.
func (s *LearningService) GenerateFlashcards(ctx context.Context, in ContentInputs) (*models.FlashcardResponse, error) {
	resolved, err := s.resolver.Resolve(ctx, in.Text, in.Audio, in.Video, in.Document)
	if err != nil {
		return nil, err
	}

	raw, err := s.llm.RunPrompt(ctx, flashcardGenerationPrompt, resolved.Text)
	if err != nil {
		return nil, err
	}

	var cards []models.Flashcard
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &cards); err != nil {
		return nil, parseFailure("Failed to parse flashcards JSON: %v. Raw response: %s...", err, snippet(raw, 200))
	}

	kept := make([]models.Flashcard, 0, len(cards))
	for _, card := range cards {
		if strings.TrimSpace(card.Front) == "" || strings.TrimSpace(card.Back) == "" {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(card.Difficulty)) {
		case "easy":
			card.Difficulty = "easy"
		case "hard":
			card.Difficulty = "hard"
		default:
			card.Difficulty = "medium"
		}
		if strings.TrimSpace(card.Category) == "" {
			card.Category = "Concept"
		}
		kept = append(kept, card)
	}

	return &models.FlashcardResponse{
		Success:     true,
		Content:     resolved.Text,
		Flashcards:  kept,
		TotalCards:  len(kept),
		ContentType: resolved.ContentType,
	}, nil
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
