package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/shirleys-kitchen/backend/config"
)

// ImageService stores generated recipe photos. With S3 configured the bytes
// are uploaded and a public URL returned; without it the image is embedded
// directly in the recipe record as a data URL.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates an ImageService. A nil s3Config selects the
// data-URL fallback.
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// StoreImage persists PNG bytes and returns a URL usable as a recipe's
// imageUrl field.
func (s *ImageService) StoreImage(ctx context.Context, imageData []byte) (string, error) {
	if s.s3Config == nil {
		return "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageData), nil
	}

	fileName := fmt.Sprintf("recipe-images/%s.png", uuid.New().String())
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("[ImageService] Successfully uploaded image to S3: %s", publicURL)
	return publicURL, nil
}
