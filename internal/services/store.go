package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"photo-market-backend/internal/models"
)

// Caller is the authenticated user a request runs on behalf of.
type Caller struct {
	ID    uuid.UUID
	Email string
}

type UserStore interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	SetStripeAccount(ctx context.Context, userID uuid.UUID, accountID string) (bool, error)
	SetStripeCustomerID(ctx context.Context, userID uuid.UUID, customerID string) error
	UpdateStripeAccountStatus(ctx context.Context, userID uuid.UUID, chargesEnabled, detailsSubmitted bool) error
	SyncStripeAccountStatus(ctx context.Context, accountID string, chargesEnabled, detailsSubmitted bool) (bool, error)
	MarkPixEnabled(ctx context.Context, accountID string) error
}

type PhotoStore interface {
	GetPhoto(ctx context.Context, photoID uuid.UUID) (*models.Photo, error)
	UpdatePhotoPreviewPath(ctx context.Context, photoID uuid.UUID, previewPath string) error
}

type PurchaseStore interface {
	CreatePurchase(ctx context.Context, purchase *models.Purchase) (bool, error)
	HasApprovedPurchase(ctx context.Context, buyerID, photoID uuid.UUID) (bool, error)
	ListPurchasesByBuyer(ctx context.Context, buyerID uuid.UUID) ([]models.Purchase, error)
}

// Store is the relational datastore, implemented by supabase.DatabaseClient.
type Store interface {
	UserStore
	PhotoStore
	PurchaseStore
}

// ObjectStorage is the two-bucket photo storage, implemented by
// supabase.StorageClient.
type ObjectStorage interface {
	SignedOriginalURL(path string, ttl time.Duration) (string, error)
	DownloadOriginal(path string) ([]byte, error)
	UploadPreview(path string, data []byte) (string, error)
	PublicPreviewURL(path string) string
}

type PhotoFeed interface {
	ListPublicPhotos(page, pageSize int, search string) ([]models.PhotoSummary, error)
}

func parsePhotoID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, newError(KindValidation, nil, "photoId is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, newError(KindValidation, err, "invalid photoId")
	}
	return id, nil
}

// requestLogger prefers the request-scoped logger the HTTP middleware puts on
// ctx, so service lines carry the request id. base is used when ctx has none.
func requestLogger(ctx context.Context, base zerolog.Logger, service string) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l.With().Str("service", service).Logger()
	}
	return base
}

func loadUser(ctx context.Context, store UserStore, logger zerolog.Logger, userID uuid.UUID) (*models.User, error) {
	user, err := store.GetUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, newError(KindNotFound, err, "user not found")
	}
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to load user")
		return nil, newError(KindInternal, err, "failed to load user")
	}
	return user, nil
}

func loadPhoto(ctx context.Context, store PhotoStore, logger zerolog.Logger, photoID uuid.UUID) (*models.Photo, error) {
	photo, err := store.GetPhoto(ctx, photoID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, newError(KindNotFound, err, "photo not found")
	}
	if err != nil {
		logger.Error().Err(err).Str("photo_id", photoID.String()).Msg("failed to load photo")
		return nil, newError(KindInternal, err, "failed to load photo")
	}
	return photo, nil
}
