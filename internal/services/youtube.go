package services

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	ytapi "github.com/hightemp/youtube-transcript-api-go/api"
	yt "github.com/kkdai/youtube/v2"
)

// Recognition is a heuristic over the canonical hosted-video URL forms; a
// string that merely resembles one of them will be classified as YouTube.
var youtubeURLPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.|m\.)?(?:youtube\.com/(?:watch\?v=|embed/|shorts/|v/)|youtu\.be/)[\w-]{11}`)

func IsYouTubeURL(s string) bool {
	return youtubeURLPattern.MatchString(strings.TrimSpace(s))
}

// ExtractVideoID pulls the 11-character video ID out of any supported URL
// form, or returns "" when none is present.
func ExtractVideoID(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err == nil {
		host := strings.ToLower(parsed.Host)
		path := strings.Trim(parsed.Path, "/")

		// youtube.com/watch?v=VIDEO_ID
		if strings.Contains(host, "youtube.com") {
			if v := parsed.Query().Get("v"); len(v) == 11 {
				return v
			}

			parts := strings.Split(path, "/")
			if len(parts) >= 2 {
				switch parts[0] {
				case "shorts", "embed", "v":
					if len(parts[1]) == 11 {
						return parts[1]
					}
				}
			}
		}

		// youtu.be/VIDEO_ID
		if strings.Contains(host, "youtu.be") {
			candidate := strings.Split(path, "/")[0]
			if len(candidate) == 11 {
				return candidate
			}
		}
	}

	// Fallback regex for unusual URL forms
	re := regexp.MustCompile(`(?:v=|/v/|youtu\.be/|embed/|shorts/)([a-zA-Z0-9_-]{11})`)
	if m := re.FindStringSubmatch(rawURL); len(m) > 1 {
		return m[1]
	}

	return ""
}

// TranscriptsDisabledError is surfaced verbatim to callers; the dispatcher
// must not attempt any fallback for it.
type TranscriptsDisabledError struct {
	VideoID string
}

func (e *TranscriptsDisabledError) Error() string {
	return fmt.Sprintf("Transcripts are disabled for the video with ID: %s.", e.VideoID)
}

// NoTranscriptError means no caption track could be retrieved for the video.
type NoTranscriptError struct {
	VideoID string
	Cause   error
}

func (e *NoTranscriptError) Error() string {
	return fmt.Sprintf("Could not retrieve a transcript for the video with ID: %s. Transcripts may be disabled for this video or it might not have a transcript in the default language.", e.VideoID)
}

func (e *NoTranscriptError) Unwrap() error {
	return e.Cause
}

type YouTubeService struct {
	transcriptAPI *ytapi.YouTubeTranscriptApi
	ytClient      *yt.Client
}

func NewYouTubeService() *YouTubeService {
	return &YouTubeService{
		transcriptAPI: ytapi.NewYouTubeTranscriptApi(),
		ytClient:      &yt.Client{},
	}
}

// FetchTranscript fetches the caption track for a video, preferring English
// variants and falling back to any available language. Caption-service calls
// are single-shot; no retries.
func (s *YouTubeService) FetchTranscript(videoID string) (string, error) {
	transcript, err := s.transcriptAPI.GetTranscript(videoID, []string{"en", "en-US", "en-GB"})
	if err != nil {
		if isDisabledError(err) {
			return "", &TranscriptsDisabledError{VideoID: videoID}
		}

		// Fallback: request any available language
		transcript, err = s.transcriptAPI.GetTranscript(videoID, nil)
		if err != nil {
			if isDisabledError(err) {
				return "", &TranscriptsDisabledError{VideoID: videoID}
			}
			return "", &NoTranscriptError{VideoID: videoID, Cause: err}
		}
	}

	if len(transcript.Entries) == 0 {
		return "", &NoTranscriptError{VideoID: videoID}
	}

	var fullText strings.Builder
	for _, entry := range transcript.Entries {
		text := strings.TrimSpace(entry.Text)
		if text == "" {
			continue
		}
		if fullText.Len() > 0 {
			fullText.WriteString(" ")
		}
		fullText.WriteString(text)
	}

	cleaned := fullText.String()
	if cleaned == "" {
		return "", &NoTranscriptError{VideoID: videoID}
	}

	return cleaned, nil
}

func isDisabledError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "disabled")
}

// DownloadAudio downloads the best available audio-only stream for a YouTube
// URL, for speech-to-text fallback when no caption track exists.
func (s *YouTubeService) DownloadAudio(videoURL string) ([]byte, string, error) {
	video, err := s.ytClient.GetVideo(videoURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch YouTube video metadata: %w", err)
	}

	formats := video.Formats.WithAudioChannels()
	if len(formats) == 0 {
		return nil, "", fmt.Errorf("no audio formats available")
	}

	best := formats[0]
	for _, f := range formats {
		if f.Bitrate > best.Bitrate {
			best = f
		}
	}

	stream, _, err := s.ytClient.GetStream(video, &best)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open audio stream: %w", err)
	}
	defer stream.Close()

	const maxAudioBytes = 100 * 1024 * 1024
	limited := io.LimitReader(stream, maxAudioBytes+1)
	audioBytes, err := io.ReadAll(limited)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read audio stream: %w", err)
	}
	if len(audioBytes) > maxAudioBytes {
		return nil, "", fmt.Errorf("audio stream exceeds %d MB limit", maxAudioBytes/(1024*1024))
	}

	mimeType := strings.TrimSpace(strings.Split(best.MimeType, ";")[0])
	if mimeType == "" {
		mimeType = "audio/mp4"
	}

	return audioBytes, mimeType, nil
}
