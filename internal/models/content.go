package models

import "io"

// Content types a request can resolve to.
const (
	ContentTypeText     = "text"
	ContentTypeYouTube  = "youtube"
	ContentTypeAudio    = "audio"
	ContentTypeVideo    = "video"
	ContentTypeDocument = "document"
)

// FileUpload is a request-scoped handle on an uploaded file. The reader is
// owned by the HTTP layer and valid only for the duration of the request.
type FileUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// ResolvedContent is the single canonical representation every generator
// consumes, produced by the content source dispatcher.
type ResolvedContent struct {
	Text        string
	ContentType string
	SourceLabel string
}
