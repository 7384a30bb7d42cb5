package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"social-go/internal/config"
	"social-go/internal/sntypes"

	"github.com/google/uuid"
)

// LocalStorageService implements the sntypes.StorageService interface on the
// local filesystem.
type LocalStorageService struct {
	basePath string // storage root, e.g. "./uploads"
	baseURL  string // URL prefix for serving stored files, e.g. "/uploads"
}

// NewLocalStorageService creates a new LocalStorageService instance, making
// sure the storage root exists.
func NewLocalStorageService(cfg config.StorageConfig, baseURL string) (sntypes.StorageService, error) {
	if err := os.MkdirAll(cfg.LocalPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create local storage directory '%s': %w", cfg.LocalPath, err)
	}
	return &LocalStorageService{
		basePath: cfg.LocalPath,
		baseURL:  baseURL,
	}, nil
}

// UploadFile saves the file to the local filesystem under a unique name,
// keeping the original extension.
func (s *LocalStorageService) UploadFile(ctx context.Context, reader io.Reader, fileSize int64, fileName string, mimeType string) (*sntypes.FileInfo, error) {
	ext := filepath.Ext(fileName)
	if ext == "" {
		// No extension on the original name, try to infer one from the MIME type.
		extensions, _ := mime.ExtensionsByType(mimeType)
		if len(extensions) > 0 {
			ext = extensions[0]
		}
	}
	uniqueFileName := uuid.New().String() + ext

	dstPath := filepath.Join(s.basePath, uniqueFileName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file '%s': %w", dstPath, err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, reader)
	if err != nil {
		os.Remove(dstPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}
	if written != fileSize {
		os.Remove(dstPath)
		return nil, fmt.Errorf("file size mismatch: expected %d, wrote %d", fileSize, written)
	}

	fileURL := strings.TrimSuffix(s.baseURL, "/") + "/" + url.PathEscape(uniqueFileName)

	fileInfo := &sntypes.FileInfo{
		URL:      fileURL,
		Path:     dstPath,
		Size:     fileSize,
		MimeType: mimeType,
		FileName: fileName,
	}

	return fileInfo, nil
}
