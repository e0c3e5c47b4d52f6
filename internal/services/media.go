package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"learnable-backend/internal/models"
)

// Allowed upload extensions per category. Keys are lowercase with the dot.
var (
	AllowedAudioFormats    = map[string]bool{".mp3": true, ".wav": true, ".m4a": true, ".flac": true, ".aac": true, ".ogg": true}
	AllowedVideoFormats    = map[string]bool{".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".wmv": true, ".flv": true, ".webm": true, ".m4v": true}
	AllowedDocumentFormats = map[string]bool{".pdf": true, ".docx": true, ".doc": true}
)

// FormatList renders an allow-list for error messages and the formats
// endpoint, sorted for stable output.
func FormatList(allowed map[string]bool) []string {
	list := make([]string, 0, len(allowed))
	for ext := range allowed {
		list = append(list, ext)
	}
	sort.Strings(list)
	return list
}

func validateFile(filename, category string, allowed map[string]bool) (string, *ServiceError) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowed[ext] {
		return "", invalidInput("Unsupported %s format. Allowed: %s", category, strings.Join(FormatList(allowed), ", "))
	}
	return ext, nil
}

func ValidateAudioFile(filename string) (string, *ServiceError) {
	return validateFile(filename, "audio", AllowedAudioFormats)
}

func ValidateVideoFile(filename string) (string, *ServiceError) {
	return validateFile(filename, "video", AllowedVideoFormats)
}

func ValidateDocumentFile(filename string) (string, *ServiceError) {
	return validateFile(filename, "document", AllowedDocumentFormats)
}

// MediaTranscriber is the slice of the LLM client media extraction needs.
type MediaTranscriber interface {
	TranscribeMedia(ctx context.Context, data []byte, mimeType, prompt string) (string, error)
}

type documentExtractor interface {
	ExtractTextFromPath(path string) (string, error)
}

// MediaService turns uploaded audio, video, and document files into text.
// Uploads are staged in tempDir for the duration of a single call and removed
// on every exit path.
type MediaService struct {
	llm           MediaTranscriber
	extract       documentExtractor
	tempDir       string
	maxVideoBytes int64
}

func NewMediaService(llm MediaTranscriber, extract documentExtractor, tempDir string, maxVideoBytes int64) *MediaService {
	return &MediaService{
		llm:           llm,
		extract:       extract,
		tempDir:       tempDir,
		maxVideoBytes: maxVideoBytes,
	}
}

func (s *MediaService) saveTemp(upload *models.FileUpload, ext string) (string, error) {
	tmp, err := os.CreateTemp(s.tempDir, "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, upload.Reader); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to save upload: %w", err)
	}

	return tmp.Name(), nil
}

// ExtractAudio transcribes an uploaded audio file to text.
func (s *MediaService) ExtractAudio(ctx context.Context, upload *models.FileUpload) (string, error) {
	ext, verr := ValidateAudioFile(upload.Filename)
	if verr != nil {
		return "", verr
	}

	data, err := io.ReadAll(upload.Reader)
	if err != nil {
		return "", invalidInput("Error reading audio file: %v", err)
	}
	if len(data) == 0 {
		return "", invalidInput("Audio file is empty")
	}

	return s.llm.TranscribeMedia(ctx, data, "audio/"+ext[1:], audioTranscriptionPrompt)
}

// ExtractVideo transcribes an uploaded video file to text. The size ceiling is
// enforced before any bytes are staged or sent upstream.
func (s *MediaService) ExtractVideo(ctx context.Context, upload *models.FileUpload) (string, error) {
	ext, verr := ValidateVideoFile(upload.Filename)
	if verr != nil {
		return "", verr
	}

	if upload.Size > s.maxVideoBytes {
		return "", resourceLimit("Video file size exceeds %dMB limit", s.maxVideoBytes/(1024*1024))
	}

	data, err := io.ReadAll(io.LimitReader(upload.Reader, s.maxVideoBytes+1))
	if err != nil {
		return "", invalidInput("Error reading video file: %v", err)
	}
	if int64(len(data)) > s.maxVideoBytes {
		return "", resourceLimit("Video file size exceeds %dMB limit", s.maxVideoBytes/(1024*1024))
	}
	if len(data) == 0 {
		return "", invalidInput("Video file is empty")
	}

	return s.llm.TranscribeMedia(ctx, data, "video/"+ext[1:], videoTranscriptionPrompt)
}

// ExtractDocument extracts plain text from an uploaded PDF or Word document.
func (s *MediaService) ExtractDocument(ctx context.Context, upload *models.FileUpload) (string, error) {
	ext, verr := ValidateDocumentFile(upload.Filename)
	if verr != nil {
		return "", verr
	}

	path, err := s.saveTemp(upload, ext)
	if err != nil {
		return "", invalidInput("Error extracting content from document file: %v", err)
	}
	defer os.Remove(path)

	text, err := s.extract.ExtractTextFromPath(path)
	if err != nil {
		return "", invalidInput("Error extracting content from document file: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", invalidInput("Failed to extract text from document.")
	}

	return text, nil
}
