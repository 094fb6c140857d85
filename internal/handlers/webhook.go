package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/payments"
)

const maxWebhookBody = 1 << 20

// EventHandler processes a verified webhook event.
type EventHandler func(ctx context.Context, event *stripe.Event) error

type WebhookHandler struct {
	paymentsVerifier *payments.WebhookVerifier
	connectVerifier  *payments.WebhookVerifier
	settle           EventHandler
	syncAccount      EventHandler
	logger           zerolog.Logger
}

func NewWebhookHandler(paymentsVerifier, connectVerifier *payments.WebhookVerifier, settle, syncAccount EventHandler, logger zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		paymentsVerifier: paymentsVerifier,
		connectVerifier:  connectVerifier,
		settle:           settle,
		syncAccount:      syncAccount,
		logger:           logger.With().Str("handler", "webhook").Logger(),
	}
}

// StripeWebhook godoc
// @Summary     Payment webhook
// @Description Receives payment events from Stripe. Completed payments are recorded as approved purchases exactly once per payment intent.
// @Tags        webhooks
// @Accept      json
// @Produce     plain
// @Param       Stripe-Signature header string true "Stripe signature header"
// @Success     200 {string} string "ok"
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /webhooks/stripe-webhook [post]
func (h *WebhookHandler) StripeWebhook(c *gin.Context) {
	h.handle(c, h.paymentsVerifier, h.settle)
}

// StripeAccountUpdate godoc
// @Summary     Connected account webhook
// @Description Receives account.updated events from Stripe Connect and refreshes the seller's cached onboarding flags.
// @Tags        webhooks
// @Accept      json
// @Produce     plain
// @Param       Stripe-Signature header string true "Stripe signature header"
// @Success     200 {string} string "ok"
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /webhooks/stripe-account-update [post]
func (h *WebhookHandler) StripeAccountUpdate(c *gin.Context) {
	h.handle(c, h.connectVerifier, h.syncAccount)
}

func (h *WebhookHandler) handle(c *gin.Context, verifier *payments.WebhookVerifier, next EventHandler) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "request body too large"})
			return
		}
		badRequest(c, "failed to read request body")
		return
	}

	event, err := verifier.Verify(payload, c.GetHeader(payments.SignatureHeader))
	if err != nil {
		h.logger.Warn().Err(err).Str("path", c.FullPath()).Msg("rejected webhook")
		badRequest(c, "invalid signature")
		return
	}

	if err := next(c.Request.Context(), event); err != nil {
		h.logger.Error().Err(err).Str("event_id", event.ID).Str("event_type", string(event.Type)).Msg("webhook processing failed")
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, "ok")
}
