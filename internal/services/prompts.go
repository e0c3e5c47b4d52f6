package services

import "fmt"

// System messages.
const (
	transcriberSystemMessage    = "You are a professional transcriber. Transcribe the content accurately without adding any commentary or structure."
	summarizerSystemMessage     = "You are a professional summarizer who creates structured summaries. Never provide transcripts."
	textSummarizerSystemMessage = "You are a professional summarizer who creates concise, well-structured summaries. Focus on extracting key insights and main points."
)

// Transcription prompts sent alongside the media payload.
const (
	audioTranscriptionPrompt = "Please transcribe this audio content accurately."
	videoTranscriptionPrompt = "Please transcribe this video content accurately."
)

const structuredSummaryFormat = `Create a structured summary of the following content with this exact format:

**Main Topic/Theme:**
[One sentence describing the primary subject]

**Key Points:**
• [Point 1]
• [Point 2]
• [Point 3]
• [Point 4]

**Core Message:**
[One paragraph explaining the central takeaway]

**Important Statistics/Data:**
• [Statistic 1]
• [Statistic 2]
• [Statistic 3]

**Context:**
[One paragraph explaining why this topic matters]

Content to summarize:
%s`

const mindmapGenerationPrompt = `You are a mindmap generator. Create a mindmap structure for the given topic.

CRITICAL: Return ONLY a valid JSON object. Do not include any other text, explanations, or formatting.

The JSON must follow this exact structure:
{
    "name": "Main Topic",
    "children": [
        {
            "name": "Subtopic 1",
            "children": [
                {"name": "Detail 1"},
                {"name": "Detail 2"}
            ]
        }
    ]
}

Requirements:
- Include 3-5 main subtopics
- Each subtopic should have 2-4 details
- Use clear, concise names
- Make it suitable for D3.js tree visualization
- Return ONLY the JSON, nothing else`

const flashcardGenerationPrompt = `You are a flashcard generator. Create educational flashcards based on the given content.

CRITICAL: Return ONLY a valid JSON array. Do not include any other text, explanations, or formatting.

The JSON must follow this exact structure:
[
    {
        "front": "Question or concept on the front of the card",
        "back": "Answer or explanation on the back of the card",
        "category": "Topic category (e.g., 'Definition', 'Concept', 'Example')",
        "difficulty": "easy|medium|hard"
    }
]

Requirements:
- Create 10-15 flashcards
- Cover key concepts, definitions, and important points
- Make them suitable for studying and review
- Use clear, concise language
- Return ONLY the JSON array, nothing else`

const topicLabelSystemMessage = "You extract short topic labels. Given content, reply with a single concise title (under 8 words) describing the main subject. Return plain text only, no quotes or markdown."

func quizPrompt(numQuestions int, content string) string {
	return fmt.Sprintf(`Based on the following content, create %d multiple choice questions.

Content: %s

Create questions that are:
- Clear and relevant to the content
- Have plausible options with only one correct answer
- Include helpful explanations
- Cover different aspects of the content`, numQuestions, content)
}
