package models

// Platform selects where onboarding redirects land: the web app or the
// mobile deep link.
type Platform string

const (
	PlatformWeb    Platform = "web"
	PlatformMobile Platform = "mobile"
)

type ConnectAccountRequest struct {
	Platform Platform `json:"platform,omitempty" example:"web"`
}

type OnboardingLinkRequest struct {
	StripeAccountID string   `json:"stripeAccountId" example:"acct_1PxYz"`
	Platform        Platform `json:"platform,omitempty" example:"mobile"`
}

type PhotoPurchaseRequest struct {
	PhotoID string `json:"photoId" example:"5b3c1f0e-6f3a-4a53-9d2e-2f1f4c1d9a10"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
