package services

import (
	"context"
	"log"
	"strings"

	"learnable-backend/internal/models"
)

const errNoContentSource = "No valid content source provided. Please provide text, a YouTube URL, or a file."

type transcriptSource interface {
	FetchTranscript(videoID string) (string, error)
	DownloadAudio(videoURL string) ([]byte, string, error)
}

type mediaExtractor interface {
	ExtractAudio(ctx context.Context, upload *models.FileUpload) (string, error)
	ExtractVideo(ctx context.Context, upload *models.FileUpload) (string, error)
	ExtractDocument(ctx context.Context, upload *models.FileUpload) (string, error)
}

// ContentResolver normalizes whatever the client sent into plain text. When a
// request carries multiple sources, exactly one wins, in a fixed order:
// YouTube URL, audio, video, document, then plain text.
type ContentResolver struct {
	youtube transcriptSource
	media   mediaExtractor
	llm     MediaTranscriber
}

func NewContentResolver(youtube transcriptSource, media mediaExtractor, llm MediaTranscriber) *ContentResolver {
	return &ContentResolver{
		youtube: youtube,
		media:   media,
		llm:     llm,
	}
}

// Resolve picks the highest-priority source present and returns its text.
func (r *ContentResolver) Resolve(ctx context.Context, text string, audio, video, document *models.FileUpload) (*models.ResolvedContent, error) {
	trimmed := strings.TrimSpace(text)

	if trimmed != "" && IsYouTubeURL(trimmed) {
		return r.resolveYouTube(ctx, trimmed)
	}

	if audio != nil {
		extracted, err := r.media.ExtractAudio(ctx, audio)
		if err != nil {
			return nil, err
		}
		return &models.ResolvedContent{
			Text:        extracted,
			ContentType: models.ContentTypeAudio,
			SourceLabel: audio.Filename,
		}, nil
	}

	if video != nil {
		extracted, err := r.media.ExtractVideo(ctx, video)
		if err != nil {
			return nil, err
		}
		return &models.ResolvedContent{
			Text:        extracted,
			ContentType: models.ContentTypeVideo,
			SourceLabel: video.Filename,
		}, nil
	}

	if document != nil {
		extracted, err := r.media.ExtractDocument(ctx, document)
		if err != nil {
			return nil, err
		}
		return &models.ResolvedContent{
			Text:        extracted,
			ContentType: models.ContentTypeDocument,
			SourceLabel: document.Filename,
		}, nil
	}

	if trimmed != "" {
		return &models.ResolvedContent{
			Text:        trimmed,
			ContentType: models.ContentTypeText,
		}, nil
	}

	return nil, invalidInput(errNoContentSource)
}

// resolveYouTube fetches the caption transcript for a video URL. When no
// transcript exists the audio stream is downloaded and transcribed instead;
// explicitly disabled captions never fall back.
func (r *ContentResolver) resolveYouTube(ctx context.Context, videoURL string) (*models.ResolvedContent, error) {
	videoID := ExtractVideoID(videoURL)
	if videoID == "" {
		return nil, invalidInput("Invalid YouTube URL: Could not extract video ID.")
	}

	transcript, err := r.youtube.FetchTranscript(videoID)
	if err == nil {
		return &models.ResolvedContent{
			Text:        transcript,
			ContentType: models.ContentTypeYouTube,
			SourceLabel: videoURL,
		}, nil
	}

	if _, disabled := err.(*TranscriptsDisabledError); disabled {
		return nil, externalFailure("%s", err.Error())
	}

	audioBytes, mimeType, dlErr := r.youtube.DownloadAudio(videoURL)
	if dlErr != nil {
		log.Printf("audio fallback for video %s failed at download: %v", videoID, dlErr)
		return nil, externalFailure("%s", err.Error())
	}

	transcribed, sttErr := r.llm.TranscribeMedia(ctx, audioBytes, mimeType, audioTranscriptionPrompt)
	if sttErr != nil {
		log.Printf("audio fallback for video %s failed at transcription: %v", videoID, sttErr)
		return nil, externalFailure("%s", err.Error())
	}

	return &models.ResolvedContent{
		Text:        transcribed,
		ContentType: models.ContentTypeYouTube,
		SourceLabel: videoURL,
	}, nil
}
