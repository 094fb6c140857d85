package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeProcessor implements Processor on top of the Stripe API using
// destination charges and Express connected accounts.
type StripeProcessor struct {
	api *client.API
}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	return NewStripeProcessorWithBackends(secretKey, nil)
}

// NewStripeProcessorWithBackends lets callers point the client at a custom
// backend, e.g. stripe-mock or a test server.
func NewStripeProcessorWithBackends(secretKey string, backends *stripe.Backends) *StripeProcessor {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeProcessor{api: api}
}

func (p *StripeProcessor) CreateConnectedAccount(ctx context.Context, req ConnectedAccountRequest) (string, error) {
	params := &stripe.AccountParams{
		Type:    stripe.String(string(stripe.AccountTypeExpress)),
		Country: stripe.String(req.Country),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		},
	}
	if req.Email != "" {
		params.Email = stripe.String(req.Email)
	}
	params.AddMetadata(MetadataUserID, req.UserID)
	params.Context = ctx

	account, err := p.api.Accounts.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create connected account: %w", err)
	}
	return account.ID, nil
}

func (p *StripeProcessor) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := p.api.AccountLinks.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create account link: %w", err)
	}
	return link.URL, nil
}

func (p *StripeProcessor) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	account, err := p.api.Accounts.GetByID(accountID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve account %s: %w", accountID, err)
	}
	return &Account{
		ID:               account.ID,
		ChargesEnabled:   account.ChargesEnabled,
		DetailsSubmitted: account.DetailsSubmitted,
		PayoutsEnabled:   account.PayoutsEnabled,
	}, nil
}

// EnablePix requests the Pix payment capability for the connected account.
func (p *StripeProcessor) EnablePix(ctx context.Context, accountID string) error {
	params := &stripe.AccountParams{}
	params.AddExtra("capabilities[pix_payments][requested]", "true")
	params.Context = ctx

	if _, err := p.api.Accounts.Update(accountID, params); err != nil {
		return fmt.Errorf("failed to enable pix for %s: %w", accountID, err)
	}
	return nil
}

func (p *StripeProcessor) CreateCustomer(ctx context.Context, email, userID string) (string, error) {
	params := &stripe.CustomerParams{}
	if email != "" {
		params.Email = stripe.String(email)
	}
	params.AddMetadata(MetadataUserID, userID)
	params.Context = ctx

	customer, err := p.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}
	return customer.ID, nil
}

func (p *StripeProcessor) CreateEphemeralKey(ctx context.Context, customerID string) (string, error) {
	params := &stripe.EphemeralKeyParams{
		Customer:      stripe.String(customerID),
		StripeVersion: stripe.String(stripe.APIVersion),
	}
	params.Context = ctx

	key, err := p.api.EphemeralKeys.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create ephemeral key: %w", err)
	}
	return key.Secret, nil
}

func (p *StripeProcessor) CreateCheckoutSession(ctx context.Context, req ChargeRequest) (*CheckoutSession, error) {
	metadata := req.Metadata.Map()
	params := &stripe.CheckoutSessionParams{
		Mode:     stripe.String(string(stripe.CheckoutSessionModePayment)),
		Customer: stripe.String(req.CustomerID),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			ApplicationFeeAmount: stripe.Int64(req.PlatformFee),
			OnBehalfOf:           stripe.String(req.Destination),
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(req.Destination),
			},
			// Copied onto the intent so payment_intent.succeeded can settle too.
			Metadata: metadata,
		},
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
					UnitAmount: stripe.Int64(req.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (p *StripeProcessor) CreatePaymentIntent(ctx context.Context, req ChargeRequest) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		Customer: stripe.String(req.CustomerID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		ApplicationFeeAmount: stripe.Int64(req.PlatformFee),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(req.Destination),
		},
	}
	for k, v := range req.Metadata.Map() {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &PaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

func (p *StripeProcessor) GetBalance(ctx context.Context, accountID string) (*Balance, error) {
	params := &stripe.BalanceParams{}
	params.SetStripeAccount(accountID)
	params.Context = ctx

	balance, err := p.api.Balance.Get(params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve balance for %s: %w", accountID, err)
	}
	return &Balance{
		Available: toBalanceAmounts(balance.Available),
		Pending:   toBalanceAmounts(balance.Pending),
	}, nil
}

func (p *StripeProcessor) CreatePayout(ctx context.Context, accountID string, amount int64, currency string) (*Payout, error) {
	params := &stripe.PayoutParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		Method:   stripe.String("standard"),
	}
	params.SetStripeAccount(accountID)
	params.Context = ctx

	payout, err := p.api.Payouts.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payout for %s: %w", accountID, err)
	}
	return &Payout{ID: payout.ID, Amount: payout.Amount}, nil
}

func toBalanceAmounts(amounts []*stripe.BalanceAmount) []BalanceAmount {
	out := make([]BalanceAmount, 0, len(amounts))
	for _, a := range amounts {
		if a == nil {
			continue
		}
		out = append(out, BalanceAmount{Amount: a.Amount, Currency: string(a.Currency)})
	}
	return out
}
