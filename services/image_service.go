package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/eventplanner/event-orders-api/utils"
)

// ImageService handles catalog image upload, retrieval and deletion
type ImageService interface {
	// UploadImage validates and uploads an image file under prefix, returns the storage key
	UploadImage(ctx context.Context, prefix string, fileHeader *multipart.FileHeader) (string, error)

	// GetImageURL generates a URL for accessing an uploaded image
	GetImageURL(ctx context.Context, imageKey string) (string, error)

	// DeleteImage removes an image from storage
	DeleteImage(ctx context.Context, imageKey string) error
}

// S3ImageService implements ImageService using AWS S3 for storage
type S3ImageService struct {
	s3  S3Interface
	now func() time.Time
}

// NewS3ImageService creates an ImageService backed by s3
func NewS3ImageService(s3 S3Interface) *S3ImageService {
	return &S3ImageService{s3: s3, now: time.Now}
}

// UploadImage validates the image and stores it under a timestamped key
func (s *S3ImageService) UploadImage(ctx context.Context, prefix string, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	key := utils.ObjectKey(prefix, fileHeader.Filename, s.now())
	if err := s.s3.UploadFile(ctx, key, fileHeader); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return key, nil
}

// GetImageURL generates a presigned URL for accessing an image
func (s *S3ImageService) GetImageURL(ctx context.Context, imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}

	url, err := s.s3.GetPresignedURL(ctx, imageKey)
	if err != nil {
		return "", fmt.Errorf("failed to generate image URL: %w", err)
	}

	return url, nil
}

// DeleteImage deletes an image from S3
func (s *S3ImageService) DeleteImage(ctx context.Context, imageKey string) error {
	if imageKey == "" {
		return nil
	}

	if err := s.s3.DeleteFile(ctx, imageKey); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
