package handlers

import (
	"net/http"

	"learnable-backend/internal/services"
)

type supportedFormatsResponse struct {
	Audio          []string `json:"audio"`
	Video          []string `json:"video"`
	Document       []string `json:"document"`
	MaxVideoSizeMB int64    `json:"max_video_size_mb"`
}

type FormatsHandler struct {
	maxVideoBytes int64
}

func NewFormatsHandler(maxVideoBytes int64) *FormatsHandler {
	return &FormatsHandler{maxVideoBytes: maxVideoBytes}
}

func (h *FormatsHandler) SupportedFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, supportedFormatsResponse{
		Audio:          services.FormatList(services.AllowedAudioFormats),
		Video:          services.FormatList(services.AllowedVideoFormats),
		Document:       services.FormatList(services.AllowedDocumentFormats),
		MaxVideoSizeMB: h.maxVideoBytes / (1024 * 1024),
	})
}
