package models

type TranscriptionResponse struct {
	Success    bool   `json:"success"`
	JobID      string `json:"job_id"`
	Transcript string `json:"transcript"`
	FileName   string `json:"file_name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
