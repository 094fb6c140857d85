package models

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrUnknownReference means a write named a user or photo that does not exist.
	ErrUnknownReference = errors.New("referenced record does not exist")
)

// SellerState is the onboarding state of a seller's connected account, derived
// from the cached processor flags.
type SellerState int

const (
	SellerUnregistered SellerState = iota
	SellerPending
	SellerChargesEnabled
	SellerFullyOnboarded
)

func (s SellerState) String() string {
	switch s {
	case SellerPending:
		return "pending"
	case SellerChargesEnabled:
		return "charges_enabled"
	case SellerFullyOnboarded:
		return "fully_onboarded"
	default:
		return "unregistered"
	}
}

// CanReceivePayments reports whether the seller may be the destination of a
// payment transfer.
func (s SellerState) CanReceivePayments() bool {
	return s >= SellerChargesEnabled
}

type User struct {
	ID                     uuid.UUID
	Email                  string
	StripeAccountID        sql.NullString
	StripeCustomerID       sql.NullString
	StripeChargesEnabled   bool
	StripeDetailsSubmitted bool
	StripePixEnabled       bool
	CreatedAt              time.Time
}

func (u *User) HasStripeAccount() bool {
	return u.StripeAccountID.Valid && u.StripeAccountID.String != ""
}

func (u *User) SellerState() SellerState {
	switch {
	case !u.HasStripeAccount():
		return SellerUnregistered
	case !u.StripeChargesEnabled:
		return SellerPending
	case !u.StripeDetailsSubmitted:
		return SellerChargesEnabled
	default:
		return SellerFullyOnboarded
	}
}
