package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// EventPayload renders a webhook event body wrapping object.
func EventPayload(t testing.TB, id, eventType string, object any) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":          id,
		"object":      "event",
		"type":        eventType,
		"api_version": stripe.APIVersion,
		"data":        map[string]any{"object": object},
	})
	require.NoError(t, err)
	return payload
}

// NewEvent builds a decoded event as the verifier would return it.
func NewEvent(t testing.TB, id, eventType string, object any) *stripe.Event {
	t.Helper()
	var event stripe.Event
	require.NoError(t, json.Unmarshal(EventPayload(t, id, eventType, object), &event))
	return &event
}

// Sign returns a Stripe-Signature header for payload.
func Sign(payload []byte, secret string) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	}).Header
}

func PaymentIntentObject(id string, amount int64, metadata map[string]string) map[string]any {
	return map[string]any{
		"id":              id,
		"object":          "payment_intent",
		"amount":          amount,
		"amount_received": amount,
		"status":          "succeeded",
		"metadata":        metadata,
	}
}

func CheckoutSessionObject(id, paymentIntentID string, amount int64, paymentStatus string, metadata map[string]string) map[string]any {
	return map[string]any{
		"id":             id,
		"object":         "checkout.session",
		"payment_intent": paymentIntentID,
		"amount_total":   amount,
		"payment_status": paymentStatus,
		"metadata":       metadata,
	}
}

func AccountObject(id string, chargesEnabled, detailsSubmitted bool) map[string]any {
	return map[string]any{
		"id":                id,
		"object":            "account",
		"charges_enabled":   chargesEnabled,
		"details_submitted": detailsSubmitted,
	}
}
