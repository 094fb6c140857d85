package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/payments"
)

var (
	ErrNoStripeAccount     = errors.New("stripe account not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// PayoutService reports a seller's balance and sweeps it to their bank.
type PayoutService struct {
	store     UserStore
	processor payments.Processor
	currency  string
	logger    zerolog.Logger
}

func NewPayoutService(store UserStore, processor payments.Processor, currency string, logger zerolog.Logger) *PayoutService {
	return &PayoutService{
		store:     store,
		processor: processor,
		currency:  currency,
		logger:    logger.With().Str("service", "payout").Logger(),
	}
}

// GetBalance sums every currency bucket of the seller's balance. Sellers that
// cannot take charges yet get zeros without a processor call.
func (s *PayoutService) GetBalance(ctx context.Context, caller Caller) (*models.BalanceResponse, error) {
	user, err := loadUser(ctx, s.store, *s.log(ctx), caller.ID)
	if err != nil {
		return nil, err
	}
	if !user.SellerState().CanReceivePayments() {
		return &models.BalanceResponse{Available: 0, Pending: 0}, nil
	}

	balance, err := s.processor.GetBalance(ctx, user.StripeAccountID.String)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("account_id", user.StripeAccountID.String).Msg("failed to retrieve balance")
		return nil, newError(KindUpstream, err, "failed to retrieve balance")
	}

	return &models.BalanceResponse{
		Available: payments.MajorUnits(payments.Sum(balance.Available)).InexactFloat64(),
		Pending:   payments.MajorUnits(payments.Sum(balance.Pending)).InexactFloat64(),
	}, nil
}

// Withdraw pays out the whole available balance in the operating currency.
func (s *PayoutService) Withdraw(ctx context.Context, caller Caller) (*models.WithdrawResponse, error) {
	user, err := loadUser(ctx, s.store, *s.log(ctx), caller.ID)
	if err != nil {
		return nil, err
	}
	if !user.HasStripeAccount() {
		return nil, newError(KindBusinessRule, ErrNoStripeAccount, "%s", ErrNoStripeAccount.Error())
	}
	accountID := user.StripeAccountID.String

	balance, err := s.processor.GetBalance(ctx, accountID)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("account_id", accountID).Msg("failed to retrieve balance")
		return nil, newError(KindUpstream, err, "failed to retrieve balance")
	}

	available := payments.AmountIn(balance.Available, s.currency)
	if available <= 0 {
		return nil, newError(KindBusinessRule, ErrInsufficientBalance, "%s", ErrInsufficientBalance.Error())
	}

	payout, err := s.processor.CreatePayout(ctx, accountID, available, s.currency)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("account_id", accountID).Int64("amount", available).Msg("failed to create payout")
		return nil, newError(KindUpstream, err, "failed to create payout")
	}

	s.log(ctx).Info().
		Str("account_id", accountID).
		Str("payout_id", payout.ID).
		Int64("amount", available).
		Msg("payout created")

	return &models.WithdrawResponse{
		Success:  true,
		PayoutID: payout.ID,
		Amount:   payments.MajorUnits(available).InexactFloat64(),
	}, nil
}

func (s *PayoutService) log(ctx context.Context) *zerolog.Logger {
	l := requestLogger(ctx, s.logger, "payout")
	return &l
}
