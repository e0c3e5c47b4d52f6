package models

type SummarizeRequest struct {
	Text string `json:"text"`
}

type SummarizeResponse struct {
	Success           bool   `json:"success"`
	OriginalText      string `json:"original_text"`
	Summary           string `json:"summary"`
	WordCountOriginal int    `json:"word_count_original"`
	WordCountSummary  int    `json:"word_count_summary"`
	ContentType       string `json:"content_type"`
}
