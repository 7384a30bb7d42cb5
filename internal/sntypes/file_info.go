package sntypes

// FileInfo describes an uploaded file and how to reach it.
type FileInfo struct {
	URL      string `json:"url"`      // publicly reachable URL
	Path     string `json:"path"`     // storage-internal path or identifier
	Size     int64  `json:"size"`     // size in bytes
	MimeType string `json:"mimeType"` // MIME type
	FileName string `json:"fileName"` // original file name
}
