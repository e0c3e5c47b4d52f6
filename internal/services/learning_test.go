package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"learnable-backend/internal/models"
)

type fakeGenerator struct {
	promptResponses map[string]string
	promptResponse  string
	promptErr       error
	structuredJSON  string
	structuredErr   error
	lastSystem      string
	lastInput       string
	lastStructured  string
}

func (f *fakeGenerator) RunPrompt(ctx context.Context, systemPrompt, input string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastInput = input
	if f.promptErr != nil {
		return "", f.promptErr
	}
	if resp, ok := f.promptResponses[systemPrompt]; ok {
		return resp, nil
	}
	return f.promptResponse, nil
}

func (f *fakeGenerator) RunStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	f.lastStructured = prompt
	if f.structuredErr != nil {
		return "", f.structuredErr
	}
	return f.structuredJSON, nil
}

type fakeResolver struct {
	resolved *models.ResolvedContent
	err      error
	lastText string
}

func (f *fakeResolver) Resolve(ctx context.Context, text string, audio, video, document *models.FileUpload) (*models.ResolvedContent, error) {
	f.lastText = text
	if f.err != nil {
		return nil, f.err
	}
	if f.resolved != nil {
		return f.resolved, nil
	}
	return &models.ResolvedContent{Text: strings.TrimSpace(text), ContentType: models.ContentTypeText}, nil
}

func TestSummarize_PlainText(t *testing.T) {
	llm := &fakeGenerator{promptResponse: "Water cycles through three phases."}
	svc := NewLearningService(llm, &fakeResolver{})

	original := "The water cycle moves water through evaporation, condensation, and precipitation."
	resp, err := svc.Summarize(context.Background(), ContentInputs{Text: original})
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}

	if !resp.Success {
		t.Error("success = false")
	}
	if resp.ContentType != models.ContentTypeText {
		t.Errorf("content type = %q, want text", resp.ContentType)
	}
	if resp.OriginalText != original {
		t.Errorf("original text = %q", resp.OriginalText)
	}
	if want := len(strings.Fields(original)); resp.WordCountOriginal != want {
		t.Errorf("word count original = %d, want %d", resp.WordCountOriginal, want)
	}
	if want := len(strings.Fields(resp.Summary)); resp.WordCountSummary != want {
		t.Errorf("word count summary = %d, want %d", resp.WordCountSummary, want)
	}
	if llm.lastSystem != textSummarizerSystemMessage {
		t.Errorf("system prompt = %q, want plain text summarizer", llm.lastSystem)
	}
}

func TestSummarize_MediaUsesStructuredFormat(t *testing.T) {
	llm := &fakeGenerator{promptResponse: "**Main Topic/Theme:** Water."}
	resolver := &fakeResolver{resolved: &models.ResolvedContent{
		Text:        "transcribed lecture",
		ContentType: models.ContentTypeAudio,
	}}
	svc := NewLearningService(llm, resolver)

	resp, err := svc.Summarize(context.Background(), ContentInputs{Audio: upload("a.mp3")})
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if resp.ContentType != models.ContentTypeAudio {
		t.Errorf("content type = %q, want audio", resp.ContentType)
	}
	if llm.lastSystem != summarizerSystemMessage {
		t.Errorf("system prompt = %q, want structured summarizer", llm.lastSystem)
	}
	if !strings.Contains(llm.lastInput, "**Key Points:**") {
		t.Error("structured summary format not applied to media content")
	}
	if !strings.Contains(llm.lastInput, "transcribed lecture") {
		t.Error("resolved text missing from prompt")
	}
}

func TestGenerateMindmap_FencedAndUnfencedIdentical(t *testing.T) {
	body := `{"name": "Water Cycle", "children": [{"name": "Evaporation"}]}`

	for _, raw := range []string{body, "```json\n" + body + "\n```"} {
		llm := &fakeGenerator{promptResponse: raw}
		svc := NewLearningService(llm, &fakeResolver{})

		resp, err := svc.GenerateMindmap(context.Background(), "Water Cycle", ContentInputs{})
		if err != nil {
			t.Fatalf("GenerateMindmap(%q) error: %v", raw, err)
		}
		if resp.Mindmap.Name != "Water Cycle" {
			t.Errorf("root name = %q", resp.Mindmap.Name)
		}
		if len(resp.Mindmap.Children) != 1 || resp.Mindmap.Children[0].Name != "Evaporation" {
			t.Errorf("children = %+v", resp.Mindmap.Children)
		}
		if resp.Topic != "Water Cycle" {
			t.Errorf("topic = %q", resp.Topic)
		}
	}
}

func TestGenerateMindmap_MalformedJSON(t *testing.T) {
	llm := &fakeGenerator{promptResponse: "I think the mindmap should be about water."}
	svc := NewLearningService(llm, &fakeResolver{})

	_, err := svc.GenerateMindmap(context.Background(), "Water", ContentInputs{})
	if err == nil {
		t.Fatal("expected parse error")
	}
	serr, ok := err.(*ServiceError)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if serr.Kind != KindParseFailure {
		t.Errorf("kind = %v, want KindParseFailure", serr.Kind)
	}
	if !strings.Contains(serr.Message, "Failed to parse mindmap JSON") {
		t.Errorf("message = %q", serr.Message)
	}
	if !strings.Contains(serr.Message, "I think the mindmap") {
		t.Errorf("message %q missing raw response snippet", serr.Message)
	}
}

func TestGenerateMindmap_TopicFromContent(t *testing.T) {
	llm := &fakeGenerator{promptResponses: map[string]string{
		topicLabelSystemMessage: "The Water Cycle",
		mindmapGenerationPrompt: `{"name": "The Water Cycle"}`,
	}}
	resolver := &fakeResolver{resolved: &models.ResolvedContent{
		Text:        "extracted document body",
		ContentType: models.ContentTypeDocument,
	}}
	svc := NewLearningService(llm, resolver)

	resp, err := svc.GenerateMindmap(context.Background(), "", ContentInputs{Document: upload("d.pdf")})
	if err != nil {
		t.Fatalf("GenerateMindmap error: %v", err)
	}
	if resp.Topic != "The Water Cycle" {
		t.Errorf("topic = %q, want derived label", resp.Topic)
	}
	if resp.ContentType != models.ContentTypeDocument {
		t.Errorf("content type = %q, want document", resp.ContentType)
	}
}

func TestGenerateMindmap_YouTubeURLInTopic(t *testing.T) {
	llm := &fakeGenerator{promptResponses: map[string]string{
		topicLabelSystemMessage: "Lecture on Rivers",
		mindmapGenerationPrompt: `{"name": "Lecture on Rivers"}`,
	}}
	resolver := &fakeResolver{resolved: &models.ResolvedContent{
		Text:        "caption transcript",
		ContentType: models.ContentTypeYouTube,
	}}
	svc := NewLearningService(llm, resolver)

	videoURL := "https://youtu.be/dQw4w9WgXcQ"
	resp, err := svc.GenerateMindmap(context.Background(), videoURL, ContentInputs{})
	if err != nil {
		t.Fatalf("GenerateMindmap error: %v", err)
	}

	if resolver.lastText != videoURL {
		t.Errorf("resolver saw %q, want the URL routed through resolution", resolver.lastText)
	}
	if llm.lastInput != "caption transcript" {
		t.Errorf("generation subject = %q, want the resolved transcript", llm.lastInput)
	}
	if resp.ContentType != models.ContentTypeYouTube {
		t.Errorf("content type = %q, want youtube", resp.ContentType)
	}
	if resp.Topic != "Lecture on Rivers" {
		t.Errorf("topic = %q, want derived label", resp.Topic)
	}
}

func TestClampQuestionCount(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 10},
		{-5, 10},
		{51, 10},
		{1000, 10},
		{1, 1},
		{25, 25},
		{50, 50},
	}

	for _, tt := range tests {
		if got := ClampQuestionCount(tt.input); got != tt.want {
			t.Errorf("ClampQuestionCount(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func quizJSON(questions ...string) string {
	return fmt.Sprintf(`{"questions": [%s]}`, strings.Join(questions, ","))
}

func quizQuestion(correct string) string {
	return fmt.Sprintf(`{"question": "What drives evaporation?", "option_a": "Sunlight", "option_b": "Wind", "option_c": "Gravity", "option_d": "Tides", "correct_answer": %q, "explanation": "Solar energy heats surface water."}`, correct)
}

func TestGenerateQuiz(t *testing.T) {
	llm := &fakeGenerator{structuredJSON: quizJSON(quizQuestion("A"), quizQuestion("c"))}
	svc := NewLearningService(llm, &fakeResolver{})

	resp, err := svc.GenerateQuiz(context.Background(), 25, ContentInputs{Text: "the water cycle"})
	if err != nil {
		t.Fatalf("GenerateQuiz error: %v", err)
	}

	if resp.NumQuestions != 25 {
		t.Errorf("num questions = %d, want 25", resp.NumQuestions)
	}
	if !strings.Contains(llm.lastStructured, "create 25 multiple choice questions") {
		t.Errorf("prompt missing clamped count: %q", snippet(llm.lastStructured, 120))
	}
	if len(resp.Quiz) != 2 {
		t.Fatalf("quiz length = %d, want 2", len(resp.Quiz))
	}
	if resp.Quiz[1].CorrectAnswer != "C" {
		t.Errorf("answer letter not normalized: %q", resp.Quiz[1].CorrectAnswer)
	}
	if len(resp.Quiz[0].Options) != 4 {
		t.Errorf("options length = %d, want 4", len(resp.Quiz[0].Options))
	}
}

func TestGenerateQuiz_OutOfRangeCountDefaults(t *testing.T) {
	for _, n := range []int{0, 51} {
		llm := &fakeGenerator{structuredJSON: quizJSON(quizQuestion("B"))}
		svc := NewLearningService(llm, &fakeResolver{})

		resp, err := svc.GenerateQuiz(context.Background(), n, ContentInputs{Text: "content"})
		if err != nil {
			t.Fatalf("GenerateQuiz(%d) error: %v", n, err)
		}
		if resp.NumQuestions != 10 {
			t.Errorf("GenerateQuiz(%d) num questions = %d, want 10", n, resp.NumQuestions)
		}
		if !strings.Contains(llm.lastStructured, "create 10 multiple choice questions") {
			t.Errorf("GenerateQuiz(%d) prompt missing default count", n)
		}
	}
}

func TestGenerateQuiz_DropsInvalidAnswerLetter(t *testing.T) {
	llm := &fakeGenerator{structuredJSON: quizJSON(quizQuestion("A"), quizQuestion("E"), quizQuestion("The first one"))}
	svc := NewLearningService(llm, &fakeResolver{})

	resp, err := svc.GenerateQuiz(context.Background(), 10, ContentInputs{Text: "content"})
	if err != nil {
		t.Fatalf("GenerateQuiz error: %v", err)
	}
	if len(resp.Quiz) != 1 {
		t.Fatalf("quiz length = %d, want 1 after dropping invalid letters", len(resp.Quiz))
	}
	if resp.Quiz[0].CorrectAnswer != "A" {
		t.Errorf("surviving answer = %q, want A", resp.Quiz[0].CorrectAnswer)
	}
}

func TestGenerateFlashcards(t *testing.T) {
	llm := &fakeGenerator{promptResponse: "```json\n" + `[
		{"front": "What is evaporation?", "back": "Liquid turning to vapor.", "category": "Definition", "difficulty": "easy"},
		{"front": "Name the cycle phases.", "back": "Evaporation, condensation, precipitation.", "category": "", "difficulty": "EXTREME"},
		{"front": "", "back": "orphaned answer"}
	]` + "\n```"}
	svc := NewLearningService(llm, &fakeResolver{})

	resp, err := svc.GenerateFlashcards(context.Background(), ContentInputs{Text: "the water cycle"})
	if err != nil {
		t.Fatalf("GenerateFlashcards error: %v", err)
	}

	if resp.TotalCards != 2 {
		t.Errorf("total cards = %d, want 2", resp.TotalCards)
	}
	if len(resp.Flashcards) != resp.TotalCards {
		t.Errorf("flashcards length %d != total_cards %d", len(resp.Flashcards), resp.TotalCards)
	}
	if resp.Flashcards[0].Difficulty != "easy" {
		t.Errorf("difficulty = %q, want easy", resp.Flashcards[0].Difficulty)
	}
	if resp.Flashcards[1].Difficulty != "medium" {
		t.Errorf("unknown difficulty normalized to %q, want medium", resp.Flashcards[1].Difficulty)
	}
	if resp.Flashcards[1].Category != "Concept" {
		t.Errorf("blank category = %q, want Concept", resp.Flashcards[1].Category)
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"The water cycle moves water through evaporation, condensation, and precipitation.", 10},
		{"tabs\tand\nnewlines count", 4},
	}

	for _, tt := range tests {
		if got := countWords(tt.input); got != tt.want {
			t.Errorf("countWords(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
