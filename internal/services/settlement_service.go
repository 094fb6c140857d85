package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/payments"
)

const (
	EventCheckoutCompleted             = "checkout.session.completed"
	EventCheckoutAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	EventPaymentIntentSucceeded        = "payment_intent.succeeded"
)

// settlement is the processor-independent view of a confirmed payment.
type settlement struct {
	reference string
	amount    int64
	metadata  map[string]string
}

// SettlementService is the only writer of purchases. It records a purchase
// once the processor confirms the payment.
type SettlementService struct {
	store  PurchaseStore
	logger zerolog.Logger
}

func NewSettlementService(store PurchaseStore, logger zerolog.Logger) *SettlementService {
	return &SettlementService{
		store:  store,
		logger: logger.With().Str("service", "settlement").Logger(),
	}
}

// HandleEvent settles a verified payment event. Unhandled event types and
// checkout sessions still awaiting payment are acknowledged without effect.
// Redelivered events are absorbed by the unique payment reference.
func (s *SettlementService) HandleEvent(ctx context.Context, event *stripe.Event) error {
	log := s.log(ctx).With().Str("event_id", event.ID).Str("type", string(event.Type)).Logger()

	var (
		st  *settlement
		err error
	)
	switch event.Type {
	case EventCheckoutCompleted, EventCheckoutAsyncPaymentSucceeded:
		st, err = fromCheckoutSession(event)
	case EventPaymentIntentSucceeded:
		st, err = fromPaymentIntent(event)
	default:
		log.Debug().Msg("ignoring event")
		return nil
	}
	if err != nil {
		return err
	}
	if st == nil {
		log.Info().Msg("checkout session not paid yet")
		return nil
	}

	md, err := payments.ParseMetadata(st.metadata)
	if err != nil {
		log.Warn().Err(err).Msg("settlement event without purchase metadata")
		return newError(KindValidation, err, "missing purchase metadata")
	}

	purchase := &models.Purchase{
		PhotoID:          md.PhotoID,
		BuyerID:          md.BuyerID,
		SellerID:         md.SellerID,
		PaymentReference: st.reference,
		Amount:           payments.MajorUnits(st.amount),
		Status:           models.PurchaseApproved,
	}

	inserted, err := s.store.CreatePurchase(ctx, purchase)
	if errors.Is(err, models.ErrUnknownReference) {
		log.Warn().Err(err).Str("payment_reference", st.reference).Msg("settlement event for unknown photo or user")
		return newError(KindValidation, err, "unknown photo, buyer or seller")
	}
	if err != nil {
		log.Error().Err(err).Str("payment_reference", st.reference).Msg("failed to record purchase")
		return newError(KindInternal, err, "failed to record purchase")
	}
	if !inserted {
		log.Info().Str("payment_reference", st.reference).Msg("purchase already recorded")
		return nil
	}

	log.Info().
		Str("purchase_id", purchase.ID.String()).
		Str("photo_id", md.PhotoID.String()).
		Str("buyer_id", md.BuyerID.String()).
		Str("payment_reference", st.reference).
		Str("amount", purchase.Amount.StringFixed(2)).
		Msg("purchase recorded")
	return nil
}

// fromCheckoutSession keys the settlement by the session's payment intent so
// the matching payment_intent.succeeded event lands on the same purchase.
func fromCheckoutSession(event *stripe.Event) (*settlement, error) {
	var session stripe.CheckoutSession
	if err := payments.DecodeObject(event, &session); err != nil {
		return nil, newError(KindValidation, err, "invalid checkout session payload")
	}
	if session.PaymentStatus == stripe.CheckoutSessionPaymentStatusUnpaid {
		return nil, nil
	}

	reference := session.ID
	if session.PaymentIntent != nil && session.PaymentIntent.ID != "" {
		reference = session.PaymentIntent.ID
	}
	return &settlement{
		reference: reference,
		amount:    session.AmountTotal,
		metadata:  session.Metadata,
	}, nil
}

func fromPaymentIntent(event *stripe.Event) (*settlement, error) {
	var intent stripe.PaymentIntent
	if err := payments.DecodeObject(event, &intent); err != nil {
		return nil, newError(KindValidation, err, "invalid payment intent payload")
	}
	if intent.ID == "" {
		return nil, newError(KindValidation, nil, "payment intent id missing")
	}

	amount := intent.AmountReceived
	if amount == 0 {
		amount = intent.Amount
	}
	return &settlement{
		reference: intent.ID,
		amount:    amount,
		metadata:  intent.Metadata,
	}, nil
}

func (s *SettlementService) log(ctx context.Context) *zerolog.Logger {
	l := requestLogger(ctx, s.logger, "settlement")
	return &l
}
