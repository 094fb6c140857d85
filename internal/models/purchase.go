package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const PurchaseApproved = "approved"

type Purchase struct {
	ID               uuid.UUID
	PhotoID          uuid.UUID
	BuyerID          uuid.UUID
	SellerID         uuid.UUID
	PaymentReference string
	Amount           decimal.Decimal
	Status           string
	CreatedAt        time.Time
}
