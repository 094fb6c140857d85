package testutil

import (
	"errors"
	"sync"
	"time"

	"photo-market-backend/internal/models"
)

var ErrObjectNotFound = errors.New("object not found")

// FakeStorage keeps objects in memory, keyed by path.
type FakeStorage struct {
	mu        sync.Mutex
	Originals map[string][]byte
	Previews  map[string][]byte
	Signed    []string
	Err       error
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		Originals: make(map[string][]byte),
		Previews:  make(map[string][]byte),
	}
}

func (s *FakeStorage) SignedOriginalURL(path string, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	s.Signed = append(s.Signed, path)
	return "https://storage.test/object/sign/photos/" + path + "?token=t&ttl=" + ttl.String(), nil
}

func (s *FakeStorage) DownloadOriginal(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	data, ok := s.Originals[path]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return data, nil
}

func (s *FakeStorage) UploadPreview(path string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	s.Previews[path] = data
	return s.PublicPreviewURL(path), nil
}

func (s *FakeStorage) PublicPreviewURL(path string) string {
	if path == "" {
		return ""
	}
	return "https://storage.test/object/public/photos_public/" + path
}

// FakeFeed serves a fixed list of feed rows.
type FakeFeed struct {
	Rows       []models.PhotoSummary
	Err        error
	LastSearch string
}

func (f *FakeFeed) ListPublicPhotos(page, pageSize int, search string) ([]models.PhotoSummary, error) {
	f.LastSearch = search
	if f.Err != nil {
		return nil, f.Err
	}
	from := page * pageSize
	if from >= len(f.Rows) {
		return nil, nil
	}
	to := min(len(f.Rows), from+pageSize+1)
	return f.Rows[from:to], nil
}
