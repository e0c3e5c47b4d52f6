package models

// MCQQuestion has exactly four options; CorrectAnswer is the letter A-D
// indexing into Options (0=A .. 3=D).
type MCQQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type QuizRequest struct {
	Content      string `json:"content"`
	NumQuestions int    `json:"num_questions"`
}

type QuizResponse struct {
	Success      bool          `json:"success"`
	Content      string        `json:"content"`
	NumQuestions int           `json:"num_questions"`
	Quiz         []MCQQuestion `json:"quiz"`
	ContentType  string        `json:"content_type"`
}
