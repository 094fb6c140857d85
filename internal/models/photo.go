package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PhotoStatus string

const (
	PhotoPending  PhotoStatus = "pending"
	PhotoApproved PhotoStatus = "approved"
	PhotoRejected PhotoStatus = "rejected"
)

type PhotoVisibility string

const (
	VisibilityPublic   PhotoVisibility = "public"
	VisibilityUnlisted PhotoVisibility = "unlisted"
	VisibilityPrivate  PhotoVisibility = "private"
)

type Photo struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	Description  string
	Tags         []string
	Price        decimal.Decimal
	OriginalPath string
	PreviewPath  string
	Status       PhotoStatus
	Visibility   PhotoVisibility
	CreatedAt    time.Time
}

// IsPurchasable reports whether buyers may start a checkout for the photo.
func (p *Photo) IsPurchasable() bool {
	return p.Status == PhotoApproved
}

func (p *Photo) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}

// PhotoSummary is the feed projection of a photo.
type PhotoSummary struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Title       string          `json:"title"`
	PreviewPath string          `json:"preview_path"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
}
