package services

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/supabase"
	"photo-market-backend/internal/watermark"
)

// PreviewService publishes the watermarked preview of a photo.
type PreviewService struct {
	store   PhotoStore
	storage ObjectStorage
	opts    watermark.Options
	logger  zerolog.Logger
}

func NewPreviewService(store PhotoStore, storage ObjectStorage, opts watermark.Options, logger zerolog.Logger) *PreviewService {
	return &PreviewService{
		store:   store,
		storage: storage,
		opts:    opts,
		logger:  logger.With().Str("service", "preview").Logger(),
	}
}

// GeneratePreview renders the preview from the private original, uploads it to
// the public bucket and records its path. Only the owner may run it.
func (s *PreviewService) GeneratePreview(ctx context.Context, caller Caller, rawPhotoID string) (*models.PreviewResponse, error) {
	photoID, err := parsePhotoID(rawPhotoID)
	if err != nil {
		return nil, err
	}
	photo, err := loadPhoto(ctx, s.store, *s.log(ctx), photoID)
	if err != nil {
		return nil, err
	}
	if !photo.IsOwnedBy(caller.ID) {
		return nil, newError(KindForbidden, nil, "only the owner can generate a preview")
	}

	log := s.log(ctx).With().Str("photo_id", photo.ID.String()).Logger()

	originalPath := photo.OriginalPath
	if originalPath == "" {
		originalPath = supabase.OriginalPath(photo.UserID, photo.ID)
	}
	original, err := s.storage.DownloadOriginal(originalPath)
	if err != nil {
		log.Error().Err(err).Str("path", originalPath).Msg("failed to download original")
		return nil, newError(KindUpstream, err, "failed to download original")
	}

	preview, err := watermark.Render(bytes.NewReader(original), s.opts)
	if errors.Is(err, watermark.ErrUnsupportedImage) {
		return nil, newError(KindValidation, err, "original is not a supported image")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to render preview")
		return nil, newError(KindInternal, err, "failed to render preview")
	}

	previewPath := previewPathFor(photo, originalPath)
	publicURL, err := s.storage.UploadPreview(previewPath, preview)
	if err != nil {
		log.Error().Err(err).Str("path", previewPath).Msg("failed to upload preview")
		return nil, newError(KindUpstream, err, "failed to upload preview")
	}

	if err := s.store.UpdatePhotoPreviewPath(ctx, photo.ID, previewPath); err != nil {
		log.Error().Err(err).Msg("failed to store preview path")
		return nil, newError(KindInternal, err, "failed to store preview path")
	}

	log.Info().Str("path", previewPath).Int("bytes", len(preview)).Msg("preview generated")
	return &models.PreviewResponse{PreviewPath: previewPath, PreviewURL: publicURL}, nil
}

// previewPathFor mirrors the original's location with "original" swapped for
// "preview".
func previewPathFor(photo *models.Photo, originalPath string) string {
	if i := strings.LastIndex(originalPath, "original"); i >= 0 {
		return originalPath[:i] + "preview" + originalPath[i+len("original"):]
	}
	return supabase.PreviewPath(photo.UserID, photo.ID)
}

func (s *PreviewService) log(ctx context.Context) *zerolog.Logger {
	l := requestLogger(ctx, s.logger, "preview")
	return &l
}
