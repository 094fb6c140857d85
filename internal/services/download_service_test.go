package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/services"
	"photo-market-backend/internal/testutil"
)

func TestSignedDownloadURL_Entitlement(t *testing.T) {
	store := testutil.NewFakeStore()
	storage := testutil.NewFakeStorage()
	svc := services.NewDownloadService(store, storage, 5*time.Minute, zerolog.Nop())

	owner := store.AddSeller("owner@example.com", "acct_1", true, true)
	buyer := store.AddUser("buyer@example.com")
	stranger := store.AddUser("stranger@example.com")
	photo := store.AddPhoto(owner.ID, "10.00", models.PhotoApproved)

	_, err := store.CreatePurchase(context.Background(), &models.Purchase{
		PhotoID: photo.ID, BuyerID: buyer.ID, SellerID: owner.ID,
		PaymentReference: "pi_1", Amount: decimal.NewFromInt(10), Status: models.PurchaseApproved,
	})
	require.NoError(t, err)

	for _, caller := range []*models.User{owner, buyer} {
		resp, err := svc.SignedDownloadURL(context.Background(), services.Caller{ID: caller.ID}, photo.ID.String())
		require.NoError(t, err)
		assert.Contains(t, resp.URL, photo.OriginalPath)
		assert.Equal(t, 300, resp.ExpiresIn)
	}

	_, err = svc.SignedDownloadURL(context.Background(), services.Caller{ID: stranger.ID}, photo.ID.String())
	assert.Equal(t, services.KindForbidden, services.KindOf(err))
	assert.Len(t, storage.Signed, 2)
}

func TestListPurchases(t *testing.T) {
	store := testutil.NewFakeStore()
	svc := services.NewDownloadService(store, testutil.NewFakeStorage(), time.Minute, zerolog.Nop())
	buyer := store.AddUser("buyer@example.com")
	other := store.AddUser("other@example.com")

	for i, who := range []*models.User{buyer, other, buyer} {
		_, err := store.CreatePurchase(context.Background(), &models.Purchase{
			BuyerID: who.ID, PaymentReference: "pi_" + string(rune('a'+i)),
			Amount: decimal.RequireFromString("12.5"), Status: models.PurchaseApproved,
		})
		require.NoError(t, err)
	}

	purchases, err := svc.ListPurchases(context.Background(), services.Caller{ID: buyer.ID})
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, 12.5, purchases[0].Amount)
}
