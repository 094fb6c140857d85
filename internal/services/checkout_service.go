package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/payments"
)

var (
	ErrPhotoNotPurchasable = errors.New("photo is not available for purchase")
	ErrSelfPurchase        = errors.New("you cannot buy your own photo")
	ErrSellerNotEnabled    = errors.New("seller not enabled for payments")
)

type CheckoutConfig struct {
	Currency string
	AppURL   string
	Pricing  payments.Pricing
}

// CheckoutService starts purchases. Every precondition is checked before the
// processor is contacted.
type CheckoutService struct {
	store     Store
	processor payments.Processor
	cfg       CheckoutConfig
	logger    zerolog.Logger
}

func NewCheckoutService(store Store, processor payments.Processor, cfg CheckoutConfig, logger zerolog.Logger) *CheckoutService {
	return &CheckoutService{
		store:     store,
		processor: processor,
		cfg:       cfg,
		logger:    logger.With().Str("service", "checkout").Logger(),
	}
}

// CreateCheckoutSession returns the URL of a hosted checkout page.
func (s *CheckoutService) CreateCheckoutSession(ctx context.Context, caller Caller, photoID string) (string, error) {
	charge, err := s.prepare(ctx, caller, photoID)
	if err != nil {
		return "", err
	}
	charge.SuccessURL = s.cfg.AppURL + "/?payment=success"
	charge.CancelURL = s.cfg.AppURL + "/?payment=cancel"

	session, err := s.processor.CreateCheckoutSession(ctx, *charge)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("photo_id", photoID).Msg("failed to create checkout session")
		return "", newError(KindUpstream, err, "payment processor error")
	}

	s.log(ctx).Info().
		Str("photo_id", photoID).
		Str("buyer_id", caller.ID.String()).
		Str("session_id", session.ID).
		Int64("amount", charge.Amount).
		Msg("checkout session created")
	return session.URL, nil
}

// CreatePaymentIntent returns what a native payment sheet needs.
func (s *CheckoutService) CreatePaymentIntent(ctx context.Context, caller Caller, photoID string) (*models.PaymentSheetResponse, error) {
	charge, err := s.prepare(ctx, caller, photoID)
	if err != nil {
		return nil, err
	}

	intent, err := s.processor.CreatePaymentIntent(ctx, *charge)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("photo_id", photoID).Msg("failed to create payment intent")
		return nil, newError(KindUpstream, err, "payment processor error")
	}

	key, err := s.processor.CreateEphemeralKey(ctx, charge.CustomerID)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("customer_id", charge.CustomerID).Msg("failed to create ephemeral key")
		return nil, newError(KindUpstream, err, "payment processor error")
	}

	s.log(ctx).Info().
		Str("photo_id", photoID).
		Str("buyer_id", caller.ID.String()).
		Str("payment_intent_id", intent.ID).
		Int64("amount", charge.Amount).
		Msg("payment intent created")

	return &models.PaymentSheetResponse{
		PaymentIntent: intent.ClientSecret,
		EphemeralKey:  key,
		Customer:      charge.CustomerID,
	}, nil
}

// prepare validates the purchase in order (photo approved, buyer is not the
// owner, seller can receive payments), prices it and resolves the buyer's
// processor customer.
func (s *CheckoutService) prepare(ctx context.Context, caller Caller, rawPhotoID string) (*payments.ChargeRequest, error) {
	photoID, err := parsePhotoID(rawPhotoID)
	if err != nil {
		return nil, err
	}

	photo, err := loadPhoto(ctx, s.store, *s.log(ctx), photoID)
	if err != nil {
		return nil, err
	}
	if !photo.IsPurchasable() {
		return nil, newError(KindBusinessRule, ErrPhotoNotPurchasable, "%s", ErrPhotoNotPurchasable.Error())
	}
	if photo.IsOwnedBy(caller.ID) {
		return nil, newError(KindBusinessRule, ErrSelfPurchase, "%s", ErrSelfPurchase.Error())
	}

	seller, err := s.store.GetUser(ctx, photo.UserID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		s.log(ctx).Error().Err(err).Str("seller_id", photo.UserID.String()).Msg("failed to load seller")
		return nil, newError(KindInternal, err, "failed to load seller")
	}
	if seller == nil || !seller.SellerState().CanReceivePayments() {
		return nil, newError(KindBusinessRule, ErrSellerNotEnabled, "%s", ErrSellerNotEnabled.Error())
	}

	amount, err := s.cfg.Pricing.MinorUnits(photo.Price)
	if err != nil {
		return nil, newError(KindValidation, err, "invalid photo price")
	}
	fee, _ := s.cfg.Pricing.Split(amount)

	buyer, err := loadUser(ctx, s.store, *s.log(ctx), caller.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := s.customerFor(ctx, buyer, caller.Email)
	if err != nil {
		return nil, err
	}

	return &payments.ChargeRequest{
		Amount:      amount,
		PlatformFee: fee,
		Currency:    s.cfg.Currency,
		Destination: seller.StripeAccountID.String,
		CustomerID:  customerID,
		ProductName: photo.Title,
		Metadata: payments.PurchaseMetadata{
			PhotoID:  photo.ID,
			BuyerID:  buyer.ID,
			SellerID: photo.UserID,
		},
	}, nil
}

// customerFor reuses the buyer's processor customer or creates and stores one.
func (s *CheckoutService) customerFor(ctx context.Context, buyer *models.User, fallbackEmail string) (string, error) {
	if buyer.StripeCustomerID.Valid && buyer.StripeCustomerID.String != "" {
		return buyer.StripeCustomerID.String, nil
	}

	email := buyer.Email
	if email == "" {
		email = fallbackEmail
	}
	customerID, err := s.processor.CreateCustomer(ctx, email, buyer.ID.String())
	if err != nil {
		s.log(ctx).Error().Err(err).Str("user_id", buyer.ID.String()).Msg("failed to create customer")
		return "", newError(KindUpstream, err, "payment processor error")
	}
	if err := s.store.SetStripeCustomerID(ctx, buyer.ID, customerID); err != nil {
		s.log(ctx).Error().Err(err).Str("user_id", buyer.ID.String()).Msg("failed to store customer")
		return "", newError(KindInternal, err, "failed to store customer")
	}
	return customerID, nil
}

func (s *CheckoutService) log(ctx context.Context) *zerolog.Logger {
	l := requestLogger(ctx, s.logger, "checkout")
	return &l
}
