package payments_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"photo-market-backend/internal/payments"
)

const testSecret = "whsec_test_secret"

const paymentIntentEvent = `{
  "id": "evt_1",
  "object": "event",
  "type": "payment_intent.succeeded",
  "data": {"object": {"id": "pi_123", "object": "payment_intent", "amount": 2500, "amount_received": 2500, "metadata": {"photoId": "p"}}}
}`

func sign(payload []byte, secret string) string {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

func TestWebhookVerifier_Valid(t *testing.T) {
	verifier := payments.NewWebhookVerifier(testSecret)
	payload := []byte(paymentIntentEvent)

	event, err := verifier.Verify(payload, sign(payload, testSecret))
	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, stripe.EventTypePaymentIntentSucceeded, event.Type)

	var intent stripe.PaymentIntent
	require.NoError(t, payments.DecodeObject(event, &intent))
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, int64(2500), intent.AmountReceived)
	assert.Equal(t, "p", intent.Metadata["photoId"])
}

func TestWebhookVerifier_WrongSecret(t *testing.T) {
	verifier := payments.NewWebhookVerifier(testSecret)
	payload := []byte(paymentIntentEvent)

	_, err := verifier.Verify(payload, sign(payload, "whsec_other"))
	assert.ErrorIs(t, err, payments.ErrInvalidSignature)
}

func TestWebhookVerifier_TamperedPayload(t *testing.T) {
	verifier := payments.NewWebhookVerifier(testSecret)
	header := sign([]byte(paymentIntentEvent), testSecret)

	tampered := []byte(`{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_evil"}}}`)
	_, err := verifier.Verify(tampered, header)
	assert.ErrorIs(t, err, payments.ErrInvalidSignature)
}

func TestWebhookVerifier_MissingHeader(t *testing.T) {
	verifier := payments.NewWebhookVerifier(testSecret)

	_, err := verifier.Verify([]byte(paymentIntentEvent), "  ")
	assert.ErrorIs(t, err, payments.ErrInvalidSignature)
}

func TestDecodeObject_NoData(t *testing.T) {
	err := payments.DecodeObject(&stripe.Event{Type: "account.updated"}, &stripe.Account{})
	assert.Error(t, err)
}
