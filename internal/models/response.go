package models

import "time"

type URLResponse struct {
	URL string `json:"url"`
}

type PaymentSheetResponse struct {
	PaymentIntent string `json:"paymentIntent"`
	EphemeralKey  string `json:"ephemeralKey"`
	Customer      string `json:"customer"`
}

type AccountStatusResponse struct {
	Connected        bool   `json:"connected"`
	StripeAccountID  string `json:"stripe_account_id,omitempty"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	DetailsSubmitted bool   `json:"details_submitted"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
	OnboardingState  string `json:"onboarding_state"`
}

type BalanceResponse struct {
	Available float64 `json:"available"`
	Pending   float64 `json:"pending"`
}

type WithdrawResponse struct {
	Success  bool    `json:"success"`
	PayoutID string  `json:"payoutId"`
	Amount   float64 `json:"amount"`
}

type DownloadResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}

type PurchaseResponse struct {
	ID        string    `json:"id"`
	PhotoID   string    `json:"photo_id"`
	SellerID  string    `json:"seller_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type PurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

type PreviewResponse struct {
	PreviewPath string `json:"preview_path"`
	PreviewURL  string `json:"preview_url"`
}

type FeedPhoto struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	PreviewURL string  `json:"preview_url"`
	SellerID   string  `json:"seller_id"`
}

type FeedResponse struct {
	Photos  []FeedPhoto `json:"photos"`
	Page    int         `json:"page"`
	HasMore bool        `json:"has_more"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
