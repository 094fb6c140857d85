package supabase

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

const (
	originalFile = "original.jpg"
	previewFile  = "preview.jpg"
)

// StorageClient reads originals from the private bucket and publishes
// watermarked previews to the public one.
type StorageClient struct {
	client        *storage.Client
	privateBucket string
	publicBucket  string
	baseURL       string
}

func NewStorageClient(supabaseURL, serviceRoleKey, privateBucket, publicBucket string) *StorageClient {
	baseURL := strings.TrimRight(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:        client,
		privateBucket: privateBucket,
		publicBucket:  publicBucket,
		baseURL:       baseURL,
	}
}

// OriginalPath is {userId}/{photoId}/original.jpg inside the private bucket.
func OriginalPath(userID, photoID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/%s", userID, photoID, originalFile)
}

// PreviewPath is {userId}/{photoId}/preview.jpg inside the public bucket.
func PreviewPath(userID, photoID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/%s", userID, photoID, previewFile)
}

func (s *StorageClient) SignedOriginalURL(path string, ttl time.Duration) (string, error) {
	resp, err := s.client.CreateSignedUrl(s.privateBucket, path, int(ttl.Seconds()))
	if err != nil {
		return "", fmt.Errorf("failed to sign original: %w", err)
	}
	if resp.SignedURL == "" {
		return "", fmt.Errorf("failed to sign original: empty url")
	}
	return resp.SignedURL, nil
}

func (s *StorageClient) DownloadOriginal(path string) ([]byte, error) {
	data, err := s.client.DownloadFile(s.privateBucket, path)
	if err != nil {
		return nil, fmt.Errorf("failed to download original: %w", err)
	}
	return data, nil
}

// UploadPreview stores a JPEG preview, replacing any previous one, and
// returns its public URL.
func (s *StorageClient) UploadPreview(path string, data []byte) (string, error) {
	contentType := "image/jpeg"
	upsert := true
	_, err := s.client.UploadFile(s.publicBucket, path, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload preview: %w", err)
	}
	return s.PublicPreviewURL(path), nil
}

func (s *StorageClient) PublicPreviewURL(path string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.publicBucket, path)
}
