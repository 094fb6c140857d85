package payments

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errors.New("invalid price")

var hundred = decimal.NewFromInt(100)

// Pricing converts listing prices into processor amounts and splits them
// between the platform and the seller.
type Pricing struct {
	FeePercent int64
}

func NewPricing(feePercent int64) Pricing {
	return Pricing{FeePercent: feePercent}
}

// MinorUnits returns round(price * 100).
func (p Pricing) MinorUnits(price decimal.Decimal) (int64, error) {
	if !price.IsPositive() {
		return 0, ErrInvalidPrice
	}
	amount := price.Mul(hundred).Round(0)
	if !amount.IsPositive() {
		return 0, ErrInvalidPrice
	}
	return amount.IntPart(), nil
}

// Split returns the platform fee, floored, and the seller's share of amount.
func (p Pricing) Split(amount int64) (fee, net int64) {
	fee = amount * p.FeePercent / 100
	return fee, amount - fee
}

func MajorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}
