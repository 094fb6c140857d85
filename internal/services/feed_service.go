package services

import (
	"context"

	"github.com/rs/zerolog"
	"photo-market-backend/internal/models"
)

const FeedPageSize = 20

type FeedService struct {
	feed    PhotoFeed
	storage ObjectStorage
	logger  zerolog.Logger
}

func NewFeedService(feed PhotoFeed, storage ObjectStorage, logger zerolog.Logger) *FeedService {
	return &FeedService{
		feed:    feed,
		storage: storage,
		logger:  logger.With().Str("service", "feed").Logger(),
	}
}

// ListPhotos returns one page of the public feed with preview URLs resolved.
func (s *FeedService) ListPhotos(ctx context.Context, page int, search string) (*models.FeedResponse, error) {
	if page < 0 {
		page = 0
	}

	rows, err := s.feed.ListPublicPhotos(page, FeedPageSize, search)
	if err != nil {
		s.log(ctx).Error().Err(err).Int("page", page).Msg("failed to list feed")
		return nil, newError(KindUpstream, err, "failed to load feed")
	}

	hasMore := len(rows) > FeedPageSize
	if hasMore {
		rows = rows[:FeedPageSize]
	}

	photos := make([]models.FeedPhoto, 0, len(rows))
	for _, row := range rows {
		photos = append(photos, models.FeedPhoto{
			ID:         row.ID,
			Title:      row.Title,
			Price:      row.Price.Round(2).InexactFloat64(),
			PreviewURL: s.storage.PublicPreviewURL(row.PreviewPath),
			SellerID:   row.UserID,
		})
	}

	return &models.FeedResponse{Photos: photos, Page: page, HasMore: hasMore}, nil
}

func (s *FeedService) log(ctx context.Context) *zerolog.Logger {
	l := requestLogger(ctx, s.logger, "feed")
	return &l
}
