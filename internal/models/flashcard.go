package models

type Flashcard struct {
	Front      string `json:"front"`
	Back       string `json:"back"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"` // "easy" | "medium" | "hard"
}

type FlashcardRequest struct {
	Content string `json:"content"`
}

type FlashcardResponse struct {
	Success     bool        `json:"success"`
	Content     string      `json:"content"`
	Flashcards  []Flashcard `json:"flashcards"`
	TotalCards  int         `json:"total_cards"`
	ContentType string      `json:"content_type"`
}
