package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/payments"
	"photo-market-backend/internal/services"
	"photo-market-backend/internal/testutil"
)

const (
	stripeWebhookPath = "/api/v1/webhooks/stripe-webhook"
	accountUpdatePath = "/api/v1/webhooks/stripe-account-update"
)

func purchaseMetadata() map[string]string {
	return payments.PurchaseMetadata{
		PhotoID:  uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
	}.Map()
}

func TestStripeWebhook_RecordsPurchase(t *testing.T) {
	s := newTestServer(t)
	md := purchaseMetadata()
	payload := testutil.EventPayload(t, "evt_1", services.EventPaymentIntentSucceeded, testutil.PaymentIntentObject("pi_1", 2500, md))

	w := s.webhook(t, stripeWebhookPath, payload, testutil.Sign(payload, paymentsSecret))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "ok", w.Body.String())
	require.Equal(t, 1, s.store.PurchaseCount())
	assert.Equal(t, "pi_1", s.store.Purchases[0].PaymentReference)
	assert.Equal(t, "25", s.store.Purchases[0].Amount.String())
}

func TestStripeWebhook_InvalidSignature(t *testing.T) {
	s := newTestServer(t)
	payload := testutil.EventPayload(t, "evt_1", services.EventPaymentIntentSucceeded, testutil.PaymentIntentObject("pi_1", 2500, purchaseMetadata()))

	tests := []struct {
		name      string
		signature string
	}{
		{"missing header", ""},
		{"wrong secret", testutil.Sign(payload, "whsec_attacker")},
		{"account webhook secret", testutil.Sign(payload, connectSecret)},
		{"garbage", "t=1,v1=deadbeef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.webhook(t, stripeWebhookPath, payload, tt.signature)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// A validly signed header for a different body must not verify either.
	tampered := bytes.Replace(payload, []byte(`"amount":2500`), []byte(`"amount":1`), 1)
	w := s.webhook(t, stripeWebhookPath, tampered, testutil.Sign(payload, paymentsSecret))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Zero(t, s.store.PurchaseCount())
}

func TestStripeWebhook_UnknownPhotoIsRejected(t *testing.T) {
	s := newTestServer(t)
	s.store.Err = fmt.Errorf("%w: purchases_photo_id_fkey", models.ErrUnknownReference)
	payload := testutil.EventPayload(t, "evt_1", services.EventPaymentIntentSucceeded, testutil.PaymentIntentObject("pi_1", 2500, purchaseMetadata()))

	w := s.webhook(t, stripeWebhookPath, payload, testutil.Sign(payload, paymentsSecret))

	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestStripeWebhook_MissingMetadata(t *testing.T) {
	s := newTestServer(t)
	md := purchaseMetadata()
	delete(md, payments.MetadataSellerID)
	payload := testutil.EventPayload(t, "evt_1", services.EventCheckoutCompleted, testutil.CheckoutSessionObject("cs_1", "pi_1", 2500, "paid", md))

	w := s.webhook(t, stripeWebhookPath, payload, testutil.Sign(payload, paymentsSecret))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, s.store.PurchaseCount())
}

func TestStripeWebhook_DuplicateDeliveryInsertsOnce(t *testing.T) {
	s := newTestServer(t)
	md := purchaseMetadata()
	session := testutil.EventPayload(t, "evt_1", services.EventCheckoutCompleted, testutil.CheckoutSessionObject("cs_1", "pi_1", 2500, "paid", md))
	intent := testutil.EventPayload(t, "evt_2", services.EventPaymentIntentSucceeded, testutil.PaymentIntentObject("pi_1", 2500, md))

	for _, payload := range [][]byte{session, session, intent} {
		w := s.webhook(t, stripeWebhookPath, payload, testutil.Sign(payload, paymentsSecret))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	assert.Equal(t, 1, s.store.PurchaseCount())
}

func TestStripeWebhook_IgnoresOtherEvents(t *testing.T) {
	s := newTestServer(t)
	payload := testutil.EventPayload(t, "evt_1", "charge.refunded", map[string]any{"id": "ch_1", "object": "charge"})

	w := s.webhook(t, stripeWebhookPath, payload, testutil.Sign(payload, paymentsSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, s.store.PurchaseCount())
}

func TestStripeAccountUpdate_EnablesPixOnce(t *testing.T) {
	s := newTestServer(t)
	seller := s.store.AddSeller("seller@example.com", "acct_seller", false, false)
	payload := testutil.EventPayload(t, "evt_1", services.EventAccountUpdated, testutil.AccountObject("acct_seller", true, true))

	for i := 0; i < 2; i++ {
		w := s.webhook(t, accountUpdatePath, payload, testutil.Sign(payload, connectSecret))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	assert.Equal(t, 1, s.proc.CallCount("EnablePix"))
	stored := s.store.User(seller.ID)
	assert.True(t, stored.StripeChargesEnabled)
	assert.True(t, stored.StripeDetailsSubmitted)
	assert.True(t, stored.StripePixEnabled)
}

func TestStripeAccountUpdate_RejectsPaymentsSecret(t *testing.T) {
	s := newTestServer(t)
	seller := s.store.AddSeller("seller@example.com", "acct_seller", false, false)
	payload := testutil.EventPayload(t, "evt_1", services.EventAccountUpdated, testutil.AccountObject("acct_seller", true, true))

	w := s.webhook(t, accountUpdatePath, payload, testutil.Sign(payload, paymentsSecret))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, s.store.User(seller.ID).StripeChargesEnabled)
	assert.Zero(t, s.proc.TotalCalls())
}

func TestStripeAccountUpdate_UnknownAccount(t *testing.T) {
	s := newTestServer(t)
	payload := testutil.EventPayload(t, "evt_1", services.EventAccountUpdated, testutil.AccountObject("acct_unknown", true, true))

	w := s.webhook(t, accountUpdatePath, payload, testutil.Sign(payload, connectSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, s.proc.CallCount("EnablePix"))
}
