package payments

import (
	"context"
)

// Processor is the subset of the payment platform used by the marketplace.
// Calls that take an accountID are executed on behalf of that connected account.
type Processor interface {
	CreateConnectedAccount(ctx context.Context, req ConnectedAccountRequest) (string, error)
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	EnablePix(ctx context.Context, accountID string) error

	CreateCustomer(ctx context.Context, email, userID string) (string, error)
	CreateEphemeralKey(ctx context.Context, customerID string) (string, error)
	CreateCheckoutSession(ctx context.Context, req ChargeRequest) (*CheckoutSession, error)
	CreatePaymentIntent(ctx context.Context, req ChargeRequest) (*PaymentIntent, error)

	GetBalance(ctx context.Context, accountID string) (*Balance, error)
	CreatePayout(ctx context.Context, accountID string, amount int64, currency string) (*Payout, error)
}

type ConnectedAccountRequest struct {
	Email   string
	Country string
	UserID  string
}

type Account struct {
	ID               string
	ChargesEnabled   bool
	DetailsSubmitted bool
	PayoutsEnabled   bool
}

// ChargeRequest describes a destination charge: Amount is collected from the
// buyer, PlatformFee is retained and the rest is transferred to Destination.
type ChargeRequest struct {
	Amount      int64
	PlatformFee int64
	Currency    string
	Destination string
	CustomerID  string
	ProductName string
	SuccessURL  string
	CancelURL   string
	Metadata    PurchaseMetadata
}

type CheckoutSession struct {
	ID  string
	URL string
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// BalanceAmount is one currency bucket of a balance, in minor units.
type BalanceAmount struct {
	Amount   int64
	Currency string
}

type Balance struct {
	Available []BalanceAmount
	Pending   []BalanceAmount
}

// Sum adds every bucket regardless of currency. Only meaningful while the
// marketplace operates in a single currency.
func Sum(amounts []BalanceAmount) int64 {
	var total int64
	for _, a := range amounts {
		total += a.Amount
	}
	return total
}

// AmountIn returns the bucket for currency, or zero.
func AmountIn(amounts []BalanceAmount, currency string) int64 {
	for _, a := range amounts {
		if a.Currency == currency {
			return a.Amount
		}
	}
	return 0
}

type Payout struct {
	ID     string
	Amount int64
}
