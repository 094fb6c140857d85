package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/supabase"
)

// DownloadService hands out originals to their owners and buyers.
type DownloadService struct {
	store   Store
	storage ObjectStorage
	ttl     time.Duration
	logger  zerolog.Logger
}

func NewDownloadService(store Store, storage ObjectStorage, ttl time.Duration, logger zerolog.Logger) *DownloadService {
	return &DownloadService{
		store:   store,
		storage: storage,
		ttl:     ttl,
		logger:  logger.With().Str("service", "download").Logger(),
	}
}

// SignedDownloadURL returns a short-lived URL to the original. Only the owner
// or a buyer with an approved purchase is entitled to one.
func (s *DownloadService) SignedDownloadURL(ctx context.Context, caller Caller, rawPhotoID string) (*models.DownloadResponse, error) {
	photoID, err := parsePhotoID(rawPhotoID)
	if err != nil {
		return nil, err
	}
	photo, err := loadPhoto(ctx, s.store, *s.log(ctx), photoID)
	if err != nil {
		return nil, err
	}

	if !photo.IsOwnedBy(caller.ID) {
		purchased, err := s.store.HasApprovedPurchase(ctx, caller.ID, photo.ID)
		if err != nil {
			s.log(ctx).Error().Err(err).Str("photo_id", photo.ID.String()).Msg("failed to check purchase")
			return nil, newError(KindInternal, err, "failed to check purchase")
		}
		if !purchased {
			return nil, newError(KindForbidden, nil, "purchase required")
		}
	}

	path := photo.OriginalPath
	if path == "" {
		path = supabase.OriginalPath(photo.UserID, photo.ID)
	}
	url, err := s.storage.SignedOriginalURL(path, s.ttl)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("photo_id", photo.ID.String()).Msg("failed to sign original")
		return nil, newError(KindUpstream, err, "failed to sign download url")
	}

	return &models.DownloadResponse{
		URL:       url,
		ExpiresIn: int(s.ttl.Seconds()),
	}, nil
}

// ListPurchases returns the caller's purchases, newest first.
func (s *DownloadService) ListPurchases(ctx context.Context, caller Caller) ([]models.PurchaseResponse, error) {
	purchases, err := s.store.ListPurchasesByBuyer(ctx, caller.ID)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("user_id", caller.ID.String()).Msg("failed to list purchases")
		return nil, newError(KindInternal, err, "failed to list purchases")
	}

	out := make([]models.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, models.PurchaseResponse{
			ID:        p.ID.String(),
			PhotoID:   p.PhotoID.String(),
			SellerID:  p.SellerID.String(),
			Amount:    p.Amount.Round(2).InexactFloat64(),
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}
	return out, nil
}

func (s *DownloadService) log(ctx context.Context) *zerolog.Logger {
	l := requestLogger(ctx, s.logger, "download")
	return &l
}
