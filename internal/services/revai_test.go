package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestRevAI(baseURL string) *RevAIService {
	svc := NewRevAIService("test-key")
	svc.baseURL = baseURL
	svc.pollInterval = time.Millisecond
	return svc
}

func TestRevAITranscribe(t *testing.T) {
	var polls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/jobs":
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Fatalf("failed to parse multipart: %v", err)
			}
			if _, _, err := r.FormFile("media"); err != nil {
				t.Errorf("media form file missing: %v", err)
			}
			json.NewEncoder(w).Encode(revAIJob{ID: "job-123", Status: "in_progress"})

		case r.Method == http.MethodGet && r.URL.Path == "/jobs/job-123":
			status := "in_progress"
			if atomic.AddInt32(&polls, 1) >= 2 {
				status = "transcribed"
			}
			json.NewEncoder(w).Encode(revAIJob{ID: "job-123", Status: status})

		case r.Method == http.MethodGet && r.URL.Path == "/jobs/job-123/transcript":
			if got := r.Header.Get("Accept"); got != "text/plain" {
				t.Errorf("Accept = %q", got)
			}
			w.Write([]byte("hello from rev"))

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	svc := newTestRevAI(server.URL)

	jobID, transcript, err := svc.Transcribe(context.Background(), "lecture.mp3", strings.NewReader("audio bytes"))
	if err != nil {
		t.Fatalf("Transcribe error: %v", err)
	}
	if jobID != "job-123" {
		t.Errorf("jobID = %q", jobID)
	}
	if transcript != "hello from rev" {
		t.Errorf("transcript = %q", transcript)
	}
}

func TestRevAITranscribe_JobFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			json.NewEncoder(w).Encode(revAIJob{ID: "job-9", Status: "in_progress"})
		default:
			json.NewEncoder(w).Encode(revAIJob{ID: "job-9", Status: "failed", FailureDetail: "unsupported codec"})
		}
	}))
	defer server.Close()

	svc := newTestRevAI(server.URL)

	_, _, err := svc.Transcribe(context.Background(), "lecture.mp3", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(err.Error(), "unsupported codec") {
		t.Errorf("error = %q, want failure detail surfaced", err.Error())
	}
}

func TestRevAITranscribe_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(revAIJob{ID: "job-slow", Status: "in_progress"})
	}))
	defer server.Close()

	svc := newTestRevAI(server.URL)
	svc.maxPollAttempts = 3

	_, _, err := svc.Transcribe(context.Background(), "lecture.mp3", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if err.Error() != "Rev.ai job did not complete within expected time" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestRevAITranscribe_NotConfigured(t *testing.T) {
	svc := NewRevAIService("")

	if svc.Configured() {
		t.Error("Configured() = true with empty key")
	}

	_, _, err := svc.Transcribe(context.Background(), "lecture.mp3", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Rev.ai API key not configured" {
		t.Errorf("error = %q", err.Error())
	}
}
