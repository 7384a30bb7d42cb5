package sntypes

import (
	"context"
	"io"
)

// StorageService defines the file storage operations.
// The interface lives in sntypes to break the cycle between storage and services.
type StorageService interface {
	// UploadFile streams the reader's content into the storage system.
	// fileName is the original name, kept for metadata; mimeType is the file's
	// MIME type. Returns the stored file's info, including its access URL.
	UploadFile(ctx context.Context, reader io.Reader, fileSize int64, fileName string, mimeType string) (*FileInfo, error)
}
