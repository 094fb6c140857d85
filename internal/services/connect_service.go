package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/payments"
)

const EventAccountUpdated = "account.updated"

type ConnectConfig struct {
	Country     string
	AppURL      string
	AppDeepLink string
}

// ConnectService provisions seller accounts on the payment processor and keeps
// the cached onboarding flags in step with it.
type ConnectService struct {
	store     UserStore
	processor payments.Processor
	cfg       ConnectConfig
	logger    zerolog.Logger
}

func NewConnectService(store UserStore, processor payments.Processor, cfg ConnectConfig, logger zerolog.Logger) *ConnectService {
	return &ConnectService{
		store:     store,
		processor: processor,
		cfg:       cfg,
		logger:    logger.With().Str("service", "connect").Logger(),
	}
}

// CreateConnectAccount makes sure the caller has a connected account and
// returns a fresh onboarding link for it.
func (s *ConnectService) CreateConnectAccount(ctx context.Context, caller Caller, platform models.Platform) (string, error) {
	user, err := s.loadUser(ctx, caller, "Stripe Connect error")
	if err != nil {
		return "", err
	}

	accountID := user.StripeAccountID.String
	if !user.HasStripeAccount() {
		email := user.Email
		if email == "" {
			email = caller.Email
		}
		accountID, err = s.processor.CreateConnectedAccount(ctx, payments.ConnectedAccountRequest{
			Email:   email,
			Country: s.cfg.Country,
			UserID:  user.ID.String(),
		})
		if err != nil {
			s.log(ctx).Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to create connected account")
			return "", newError(KindUpstream, err, "Stripe Connect error")
		}

		linked, err := s.store.SetStripeAccount(ctx, user.ID, accountID)
		if err != nil {
			s.log(ctx).Error().Err(err).Str("user_id", user.ID.String()).Str("account_id", accountID).Msg("failed to store connected account")
			return "", newError(KindInternal, err, "Stripe Connect error")
		}
		if !linked {
			// A concurrent request linked another account first; use that one.
			s.log(ctx).Warn().Str("user_id", user.ID.String()).Str("orphan_account_id", accountID).Msg("connected account created concurrently")
			if user, err = s.loadUser(ctx, caller, "Stripe Connect error"); err != nil {
				return "", err
			}
			accountID = user.StripeAccountID.String
		}
	}

	url, err := s.processor.CreateAccountLink(ctx, accountID,
		s.appLink(platform, "settings"), s.appLink(platform, "settings"))
	if err != nil {
		s.log(ctx).Error().Err(err).Str("account_id", accountID).Msg("failed to create account link")
		return "", newError(KindUpstream, err, "Stripe Connect error")
	}
	return url, nil
}

// CreateOnboardingLink resumes onboarding for an account the caller owns.
func (s *ConnectService) CreateOnboardingLink(ctx context.Context, caller Caller, accountID string, platform models.Platform) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return "", newError(KindValidation, nil, "Missing stripeAccountId")
	}

	user, err := s.loadUser(ctx, caller, "Stripe onboarding error")
	if err != nil {
		return "", err
	}
	if !user.HasStripeAccount() || user.StripeAccountID.String != accountID {
		return "", newError(KindForbidden, nil, "stripe account does not belong to user")
	}

	url, err := s.processor.CreateAccountLink(ctx, accountID,
		s.appLink(platform, "stripe/refresh"), s.appLink(platform, "stripe/return"))
	if err != nil {
		s.log(ctx).Error().Err(err).Str("account_id", accountID).Msg("failed to create account link")
		return "", newError(KindUpstream, err, "Stripe onboarding error")
	}
	return url, nil
}

// CheckAccountStatus pulls the account from the processor and overwrites the
// cached flags with what it reports.
func (s *ConnectService) CheckAccountStatus(ctx context.Context, caller Caller) (*models.AccountStatusResponse, error) {
	user, err := s.loadUser(ctx, caller, "Stripe check error")
	if err != nil {
		return nil, err
	}
	if !user.HasStripeAccount() {
		return &models.AccountStatusResponse{
			Connected:       false,
			OnboardingState: models.SellerUnregistered.String(),
		}, nil
	}

	account, err := s.processor.GetAccount(ctx, user.StripeAccountID.String)
	if err != nil {
		s.log(ctx).Error().Err(err).Str("account_id", user.StripeAccountID.String).Msg("failed to retrieve account")
		return nil, newError(KindUpstream, err, "Stripe check error")
	}

	if err := s.store.UpdateStripeAccountStatus(ctx, user.ID, account.ChargesEnabled, account.DetailsSubmitted); err != nil {
		s.log(ctx).Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to sync account status")
		return nil, newError(KindInternal, err, "Stripe check error")
	}

	user.StripeChargesEnabled = account.ChargesEnabled
	user.StripeDetailsSubmitted = account.DetailsSubmitted

	return &models.AccountStatusResponse{
		Connected:        true,
		StripeAccountID:  account.ID,
		ChargesEnabled:   account.ChargesEnabled,
		DetailsSubmitted: account.DetailsSubmitted,
		PayoutsEnabled:   account.PayoutsEnabled,
		OnboardingState:  user.SellerState().String(),
	}, nil
}

// HandleAccountUpdated applies an account.updated event and enables Pix the
// first time the account can take charges. Other event types are ignored.
func (s *ConnectService) HandleAccountUpdated(ctx context.Context, event *stripe.Event) error {
	if event.Type != EventAccountUpdated {
		s.log(ctx).Debug().Str("event_id", event.ID).Str("type", string(event.Type)).Msg("ignoring event")
		return nil
	}

	var account stripe.Account
	if err := payments.DecodeObject(event, &account); err != nil {
		return newError(KindValidation, err, "invalid account payload")
	}
	if account.ID == "" {
		return newError(KindValidation, nil, "account id missing")
	}

	log := s.log(ctx).With().Str("event_id", event.ID).Str("account_id", account.ID).Logger()

	pixEnabled, err := s.store.SyncStripeAccountStatus(ctx, account.ID, account.ChargesEnabled, account.DetailsSubmitted)
	if errors.Is(err, models.ErrNotFound) {
		log.Warn().Msg("account update for unknown account")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to sync account status")
		return newError(KindInternal, err, "db error")
	}

	log.Info().
		Bool("charges_enabled", account.ChargesEnabled).
		Bool("details_submitted", account.DetailsSubmitted).
		Msg("account status synced")

	if !account.ChargesEnabled || pixEnabled {
		return nil
	}

	if err := s.processor.EnablePix(ctx, account.ID); err != nil {
		log.Error().Err(err).Msg("failed to enable pix")
		return nil
	}
	if err := s.store.MarkPixEnabled(ctx, account.ID); err != nil {
		log.Error().Err(err).Msg("failed to record pix enablement")
		return nil
	}
	log.Info().Msg("pix enabled")
	return nil
}

// loadUser reports datastore failures under the operation's own message.
func (s *ConnectService) loadUser(ctx context.Context, caller Caller, failMsg string) (*models.User, error) {
	user, err := loadUser(ctx, s.store, *s.log(ctx), caller.ID)
	var se *Error
	if errors.As(err, &se) && se.Kind == KindInternal {
		se.Msg = failMsg
	}
	return user, err
}

// appLink points a redirect back into the web app or the mobile app.
func (s *ConnectService) appLink(platform models.Platform, path string) string {
	if platform == models.PlatformMobile {
		base := s.cfg.AppDeepLink
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		return base + path
	}
	return s.cfg.AppURL + "/" + path
}

func (s *ConnectService) log(ctx context.Context) *zerolog.Logger {
	l := requestLogger(ctx, s.logger, "connect")
	return &l
}
