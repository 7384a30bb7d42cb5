package services

import (
	"context"
	"fmt"

	"social-go/internal/models"
	"social-go/internal/sntypes"
	"social-go/internal/storage"
)

// ImageService records uploaded profile images. Rows are append-only: the
// profile page shows the first six and nothing ever deletes them.
type ImageService interface {
	RecordUpload(ctx context.Context, userID uint, fileInfo *sntypes.FileInfo) (*models.UserImage, error)
	ListUserImages(ctx context.Context, userID uint, limit int) ([]*models.UserImage, error)
}

type imageService struct {
	imageRepo storage.ImageRepository
}

// NewImageService creates a new ImageService instance.
func NewImageService(imageRepo storage.ImageRepository) ImageService {
	return &imageService{imageRepo: imageRepo}
}

// RecordUpload stores a UserImage row for a file already written to storage.
func (s *imageService) RecordUpload(ctx context.Context, userID uint, fileInfo *sntypes.FileInfo) (*models.UserImage, error) {
	image := &models.UserImage{
		UserID:   userID,
		URL:      fileInfo.URL,
		Path:     fileInfo.Path,
		FileName: fileInfo.FileName,
		Size:     fileInfo.Size,
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to record upload for user %d: %w", userID, err)
	}
	return image, nil
}

// ListUserImages retrieves the user's uploaded images in upload order.
func (s *imageService) ListUserImages(ctx context.Context, userID uint, limit int) ([]*models.UserImage, error) {
	return s.imageRepo.ListByUser(ctx, userID, limit)
}
