package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const defaultRevAIBaseURL = "https://api.rev.ai/speechtotext/v1"

// RevAIService submits audio to the Rev.ai asynchronous speech-to-text API and
// polls the job until a transcript is available.
type RevAIService struct {
	apiKey          string
	baseURL         string
	httpClient      *http.Client
	pollInterval    time.Duration
	maxPollAttempts int
}

func NewRevAIService(apiKey string) *RevAIService {
	return &RevAIService{
		apiKey:          apiKey,
		baseURL:         defaultRevAIBaseURL,
		httpClient:      &http.Client{Timeout: 60 * time.Second},
		pollInterval:    2 * time.Second,
		maxPollAttempts: 30,
	}
}

func (s *RevAIService) Configured() bool {
	return s.apiKey != ""
}

type revAIJob struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	FailureDetail string `json:"failure_detail"`
}

// Transcribe submits the media, waits for the job to complete, and returns
// the job ID and plain-text transcript.
func (s *RevAIService) Transcribe(ctx context.Context, fileName string, media io.Reader) (string, string, error) {
	if !s.Configured() {
		return "", "", invalidInput("Rev.ai API key not configured")
	}

	job, err := s.submitJob(ctx, fileName, media)
	if err != nil {
		return "", "", err
	}

	for attempt := 0; attempt < s.maxPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return job.ID, "", externalFailure("Rev.ai transcription cancelled: %v", ctx.Err())
		case <-time.After(s.pollInterval):
		}

		polled, err := s.getJob(ctx, job.ID)
		if err != nil {
			return job.ID, "", err
		}

		switch polled.Status {
		case "transcribed":
			transcript, err := s.getTranscript(ctx, job.ID)
			if err != nil {
				return job.ID, "", err
			}
			return job.ID, transcript, nil
		case "failed":
			return job.ID, "", externalFailure("Rev.ai transcription failed: %s", polled.FailureDetail)
		}
	}

	return job.ID, "", externalFailure("Rev.ai job did not complete within expected time")
}

func (s *RevAIService) submitJob(ctx context.Context, fileName string, media io.Reader) (*revAIJob, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("media", fileName)
	if err != nil {
		return nil, externalFailure("Failed to build Rev.ai request: %v", err)
	}
	if _, err := io.Copy(part, media); err != nil {
		return nil, externalFailure("Failed to build Rev.ai request: %v", err)
	}
	if err := writer.Close(); err != nil {
		return nil, externalFailure("Failed to build Rev.ai request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/jobs", &body)
	if err != nil {
		return nil, externalFailure("Failed to build Rev.ai request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, externalFailure("Rev.ai request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, externalFailure("Rev.ai job submission failed with status %d: %s", resp.StatusCode, payload)
	}

	var job revAIJob
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, externalFailure("Failed to decode Rev.ai response: %v", err)
	}
	if job.ID == "" {
		return nil, externalFailure("Rev.ai returned a job without an ID")
	}

	return &job, nil
}

func (s *RevAIService) getJob(ctx context.Context, jobID string) (*revAIJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/jobs/%s", s.baseURL, jobID), nil)
	if err != nil {
		return nil, externalFailure("Failed to build Rev.ai request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, externalFailure("Rev.ai request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, externalFailure("Rev.ai job status check failed with status %d", resp.StatusCode)
	}

	var job revAIJob
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, externalFailure("Failed to decode Rev.ai response: %v", err)
	}

	return &job, nil
}

func (s *RevAIService) getTranscript(ctx context.Context, jobID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/jobs/%s/transcript", s.baseURL, jobID), nil)
	if err != nil {
		return "", externalFailure("Failed to build Rev.ai request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "text/plain")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", externalFailure("Rev.ai request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", externalFailure("Rev.ai transcript fetch failed with status %d", resp.StatusCode)
	}

	transcript, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", externalFailure("Failed to read Rev.ai transcript: %v", err)
	}

	return string(transcript), nil
}
