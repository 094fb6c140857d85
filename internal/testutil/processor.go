// Package testutil holds in-memory stand-ins for the processor, datastore and
// storage used by service and handler tests.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"photo-market-backend/internal/payments"
)

// FakeProcessor records every call. Each *Func field overrides the default
// behavior of its method when set.
type FakeProcessor struct {
	mu    sync.Mutex
	Calls []string

	CreateConnectedAccountFunc func(ctx context.Context, req payments.ConnectedAccountRequest) (string, error)
	CreateAccountLinkFunc      func(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	GetAccountFunc             func(ctx context.Context, accountID string) (*payments.Account, error)
	EnablePixFunc              func(ctx context.Context, accountID string) error
	CreateCustomerFunc         func(ctx context.Context, email, userID string) (string, error)
	CreateCheckoutSessionFunc  func(ctx context.Context, req payments.ChargeRequest) (*payments.CheckoutSession, error)
	CreatePaymentIntentFunc    func(ctx context.Context, req payments.ChargeRequest) (*payments.PaymentIntent, error)
	GetBalanceFunc             func(ctx context.Context, accountID string) (*payments.Balance, error)
	CreatePayoutFunc           func(ctx context.Context, accountID string, amount int64, currency string) (*payments.Payout, error)

	Charges []payments.ChargeRequest
	Links   []AccountLink
}

type AccountLink struct {
	AccountID  string
	RefreshURL string
	ReturnURL  string
}

func (f *FakeProcessor) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, name)
}

// CallCount reports how many times method was called.
func (f *FakeProcessor) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == method {
			n++
		}
	}
	return n
}

func (f *FakeProcessor) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func (f *FakeProcessor) CreateConnectedAccount(ctx context.Context, req payments.ConnectedAccountRequest) (string, error) {
	f.record("CreateConnectedAccount")
	if f.CreateConnectedAccountFunc != nil {
		return f.CreateConnectedAccountFunc(ctx, req)
	}
	return "acct_" + req.UserID[:8], nil
}

func (f *FakeProcessor) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	f.record("CreateAccountLink")
	f.mu.Lock()
	f.Links = append(f.Links, AccountLink{AccountID: accountID, RefreshURL: refreshURL, ReturnURL: returnURL})
	f.mu.Unlock()
	if f.CreateAccountLinkFunc != nil {
		return f.CreateAccountLinkFunc(ctx, accountID, refreshURL, returnURL)
	}
	return "https://connect.stripe.test/setup/" + accountID, nil
}

func (f *FakeProcessor) GetAccount(ctx context.Context, accountID string) (*payments.Account, error) {
	f.record("GetAccount")
	if f.GetAccountFunc != nil {
		return f.GetAccountFunc(ctx, accountID)
	}
	return &payments.Account{ID: accountID}, nil
}

func (f *FakeProcessor) EnablePix(ctx context.Context, accountID string) error {
	f.record("EnablePix")
	if f.EnablePixFunc != nil {
		return f.EnablePixFunc(ctx, accountID)
	}
	return nil
}

func (f *FakeProcessor) CreateCustomer(ctx context.Context, email, userID string) (string, error) {
	f.record("CreateCustomer")
	if f.CreateCustomerFunc != nil {
		return f.CreateCustomerFunc(ctx, email, userID)
	}
	return "cus_" + userID[:8], nil
}

func (f *FakeProcessor) CreateEphemeralKey(ctx context.Context, customerID string) (string, error) {
	f.record("CreateEphemeralKey")
	return "ek_test_" + customerID, nil
}

func (f *FakeProcessor) CreateCheckoutSession(ctx context.Context, req payments.ChargeRequest) (*payments.CheckoutSession, error) {
	f.record("CreateCheckoutSession")
	f.mu.Lock()
	f.Charges = append(f.Charges, req)
	n := len(f.Charges)
	f.mu.Unlock()
	if f.CreateCheckoutSessionFunc != nil {
		return f.CreateCheckoutSessionFunc(ctx, req)
	}
	id := fmt.Sprintf("cs_test_%d", n)
	return &payments.CheckoutSession{ID: id, URL: "https://checkout.stripe.test/c/pay/" + id}, nil
}

func (f *FakeProcessor) CreatePaymentIntent(ctx context.Context, req payments.ChargeRequest) (*payments.PaymentIntent, error) {
	f.record("CreatePaymentIntent")
	f.mu.Lock()
	f.Charges = append(f.Charges, req)
	n := len(f.Charges)
	f.mu.Unlock()
	if f.CreatePaymentIntentFunc != nil {
		return f.CreatePaymentIntentFunc(ctx, req)
	}
	id := fmt.Sprintf("pi_test_%d", n)
	return &payments.PaymentIntent{ID: id, ClientSecret: id + "_secret"}, nil
}

func (f *FakeProcessor) GetBalance(ctx context.Context, accountID string) (*payments.Balance, error) {
	f.record("GetBalance")
	if f.GetBalanceFunc != nil {
		return f.GetBalanceFunc(ctx, accountID)
	}
	return &payments.Balance{}, nil
}

func (f *FakeProcessor) CreatePayout(ctx context.Context, accountID string, amount int64, currency string) (*payments.Payout, error) {
	f.record("CreatePayout")
	if f.CreatePayoutFunc != nil {
		return f.CreatePayoutFunc(ctx, accountID, amount, currency)
	}
	return &payments.Payout{ID: "po_test_1", Amount: amount}, nil
}
