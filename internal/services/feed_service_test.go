package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/services"
	"photo-market-backend/internal/testutil"
)

func feedRows(n int) []models.PhotoSummary {
	rows := make([]models.PhotoSummary, n)
	for i := range rows {
		rows[i] = models.PhotoSummary{
			ID:          fmt.Sprintf("photo-%d", i),
			UserID:      "seller",
			Title:       fmt.Sprintf("Photo %d", i),
			PreviewPath: fmt.Sprintf("seller/photo-%d/preview.jpg", i),
			Price:       decimal.RequireFromString("9.90"),
		}
	}
	return rows
}

func TestListPhotos_Paginates(t *testing.T) {
	feed := &testutil.FakeFeed{Rows: feedRows(25)}
	storage := testutil.NewFakeStorage()
	svc := services.NewFeedService(feed, storage, zerolog.Nop())

	first, err := svc.ListPhotos(context.Background(), 0, "sunset")
	require.NoError(t, err)
	assert.Len(t, first.Photos, services.FeedPageSize)
	assert.True(t, first.HasMore)
	assert.Equal(t, "sunset", feed.LastSearch)
	assert.Equal(t, storage.PublicPreviewURL("seller/photo-0/preview.jpg"), first.Photos[0].PreviewURL)
	assert.Equal(t, 9.9, first.Photos[0].Price)

	second, err := svc.ListPhotos(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Len(t, second.Photos, 5)
	assert.False(t, second.HasMore)
	assert.Equal(t, 1, second.Page)
}

func TestListPhotos_Error(t *testing.T) {
	feed := &testutil.FakeFeed{Err: errors.New("postgrest unavailable")}
	_, err := services.NewFeedService(feed, testutil.NewFakeStorage(), zerolog.Nop()).ListPhotos(context.Background(), -1, "")
	assert.Equal(t, services.KindUpstream, services.KindOf(err))
}
