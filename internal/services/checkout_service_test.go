package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/payments"
	"photo-market-backend/internal/services"
	"photo-market-backend/internal/testutil"
)

type checkoutFixture struct {
	store  *testutil.FakeStore
	proc   *testutil.FakeProcessor
	svc    *services.CheckoutService
	seller *models.User
	buyer  *models.User
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	store := testutil.NewFakeStore()
	proc := &testutil.FakeProcessor{}
	svc := services.NewCheckoutService(store, proc, services.CheckoutConfig{
		Currency: "brl",
		AppURL:   "https://app.example",
		Pricing:  payments.NewPricing(15),
	}, zerolog.Nop())

	return &checkoutFixture{
		store:  store,
		proc:   proc,
		svc:    svc,
		seller: store.AddSeller("seller@example.com", "acct_seller", true, true),
		buyer:  store.AddUser("buyer@example.com"),
	}
}

func (f *checkoutFixture) both(ctx context.Context, caller services.Caller, photoID string) []error {
	_, errSession := f.svc.CreateCheckoutSession(ctx, caller, photoID)
	_, errIntent := f.svc.CreatePaymentIntent(ctx, caller, photoID)
	return []error{errSession, errIntent}
}

func TestCheckout_RejectsUnapprovedPhotos(t *testing.T) {
	for _, status := range []models.PhotoStatus{models.PhotoPending, models.PhotoRejected} {
		t.Run(string(status), func(t *testing.T) {
			f := newCheckoutFixture(t)
			photo := f.store.AddPhoto(f.seller.ID, "25.00", status)

			for _, err := range f.both(context.Background(), services.Caller{ID: f.buyer.ID}, photo.ID.String()) {
				require.Error(t, err)
				assert.ErrorIs(t, err, services.ErrPhotoNotPurchasable)
			}
			assert.Zero(t, f.proc.TotalCalls())
		})
	}
}

func TestCheckout_RejectsSelfPurchase(t *testing.T) {
	f := newCheckoutFixture(t)
	photo := f.store.AddPhoto(f.seller.ID, "25.00", models.PhotoApproved)

	for _, err := range f.both(context.Background(), services.Caller{ID: f.seller.ID}, photo.ID.String()) {
		assert.ErrorIs(t, err, services.ErrSelfPurchase)
		assert.Equal(t, services.KindBusinessRule, services.KindOf(err))
	}
	assert.Zero(t, f.proc.TotalCalls())
	assert.Zero(t, f.store.PurchaseCount())
}

func TestCheckout_RejectsSellerWithoutCharges(t *testing.T) {
	f := newCheckoutFixture(t)
	pending := f.store.AddSeller("pending@example.com", "acct_pending", false, true)
	unregistered := f.store.AddUser("nobody@example.com")

	for _, owner := range []*models.User{pending, unregistered} {
		photo := f.store.AddPhoto(owner.ID, "25.00", models.PhotoApproved)
		for _, err := range f.both(context.Background(), services.Caller{ID: f.buyer.ID}, photo.ID.String()) {
			assert.ErrorIs(t, err, services.ErrSellerNotEnabled)
		}
	}
	assert.Zero(t, f.proc.CallCount("CreateCustomer"))
	assert.Zero(t, f.proc.TotalCalls())
}

func TestCheckout_ValidatesPhotoID(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.CreateCheckoutSession(context.Background(), services.Caller{ID: f.buyer.ID}, "")
	assert.Equal(t, services.KindValidation, services.KindOf(err))

	_, err = f.svc.CreateCheckoutSession(context.Background(), services.Caller{ID: f.buyer.ID}, "not-a-uuid")
	assert.Equal(t, services.KindValidation, services.KindOf(err))

	_, err = f.svc.CreateCheckoutSession(context.Background(), services.Caller{ID: f.buyer.ID}, "5b3c1f0e-6f3a-4a53-9d2e-2f1f4c1d9a10")
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
}

func TestCreateCheckoutSession_SplitsFee(t *testing.T) {
	f := newCheckoutFixture(t)
	photo := f.store.AddPhoto(f.seller.ID, "100.00", models.PhotoApproved)

	url, err := f.svc.CreateCheckoutSession(context.Background(), services.Caller{ID: f.buyer.ID}, photo.ID.String())
	require.NoError(t, err)
	assert.Contains(t, url, "https://checkout.stripe.test/")

	require.Len(t, f.proc.Charges, 1)
	charge := f.proc.Charges[0]
	assert.Equal(t, int64(10000), charge.Amount)
	assert.Equal(t, int64(1500), charge.PlatformFee)
	assert.Equal(t, "acct_seller", charge.Destination)
	assert.Equal(t, "brl", charge.Currency)
	assert.Equal(t, photo.Title, charge.ProductName)
	assert.Equal(t, "https://app.example/?payment=success", charge.SuccessURL)
	assert.Equal(t, "https://app.example/?payment=cancel", charge.CancelURL)
	assert.Equal(t, payments.PurchaseMetadata{PhotoID: photo.ID, BuyerID: f.buyer.ID, SellerID: f.seller.ID}, charge.Metadata)

	assert.Zero(t, f.store.PurchaseCount())
}

func TestCreatePaymentIntent_ReturnsSheetAndReusesCustomer(t *testing.T) {
	f := newCheckoutFixture(t)
	photo := f.store.AddPhoto(f.seller.ID, "19.99", models.PhotoApproved)
	caller := services.Caller{ID: f.buyer.ID}

	sheet, err := f.svc.CreatePaymentIntent(context.Background(), caller, photo.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "pi_test_1_secret", sheet.PaymentIntent)
	assert.NotEmpty(t, sheet.EphemeralKey)
	assert.Equal(t, f.store.User(f.buyer.ID).StripeCustomerID.String, sheet.Customer)

	charge := f.proc.Charges[0]
	assert.Equal(t, int64(1999), charge.Amount)
	assert.Equal(t, int64(299), charge.PlatformFee)

	again, err := f.svc.CreatePaymentIntent(context.Background(), caller, photo.ID.String())
	require.NoError(t, err)
	assert.Equal(t, sheet.Customer, again.Customer)
	assert.Equal(t, 1, f.proc.CallCount("CreateCustomer"))
}

func TestCreateCheckoutSession_ProcessorFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	photo := f.store.AddPhoto(f.seller.ID, "10.00", models.PhotoApproved)
	f.proc.CreateCheckoutSessionFunc = func(context.Context, payments.ChargeRequest) (*payments.CheckoutSession, error) {
		return nil, errors.New("card_declined")
	}

	_, err := f.svc.CreateCheckoutSession(context.Background(), services.Caller{ID: f.buyer.ID}, photo.ID.String())
	require.Error(t, err)
	assert.Equal(t, services.KindUpstream, services.KindOf(err))
	assert.Zero(t, f.store.PurchaseCount())
}
