package models

// MindmapNode is a tree suitable for D3.js visualization.
type MindmapNode struct {
	Name     string        `json:"name"`
	Children []MindmapNode `json:"children,omitempty"`
}

type MindmapRequest struct {
	Topic string `json:"topic"`
}

type MindmapResponse struct {
	Success     bool        `json:"success"`
	Topic       string      `json:"topic"`
	Mindmap     MindmapNode `json:"mindmap"`
	ContentType string      `json:"content_type"`
}
