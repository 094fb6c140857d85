package handlers

import "github.com/gin-gonic/gin"

type Handlers struct {
	Connect  *ConnectHandler
	Checkout *CheckoutHandler
	Payouts  *PayoutHandler
	Photos   *PhotosHandler
	Webhooks *WebhookHandler
}

// Register mounts every route. auth guards the client routes; webhooks and
// the public feed are left open.
func (h *Handlers) Register(router *gin.Engine, auth gin.HandlerFunc) {
	router.GET("/health", HealthHandler)

	api := router.Group("/api/v1")

	// Webhooks (no bearer auth, verified by signature)
	api.POST("/webhooks/stripe-webhook", h.Webhooks.StripeWebhook)
	api.POST("/webhooks/stripe-account-update", h.Webhooks.StripeAccountUpdate)

	api.GET("/photos", h.Photos.ListPhotos)

	authed := api.Group("")
	authed.Use(auth)

	// Seller onboarding
	authed.POST("/create-connect-account", h.Connect.CreateConnectAccount)
	authed.POST("/create-onboarding-link", h.Connect.CreateOnboardingLink)
	authed.POST("/stripe-check-account-status", h.Connect.CheckAccountStatus)

	// Checkout
	authed.POST("/create-checkout-session", h.Checkout.CreateCheckoutSession)
	authed.POST("/create-payment-intent", h.Checkout.CreatePaymentIntent)

	// Balance and payouts
	authed.POST("/stripe-get-balance", h.Payouts.GetBalance)
	authed.POST("/stripe-withdraw", h.Payouts.Withdraw)

	// Photos
	authed.GET("/photos/:photo_id/download", h.Photos.Download)
	authed.POST("/photos/:photo_id/preview", h.Photos.GeneratePreview)
	authed.GET("/purchases", h.Photos.ListPurchases)
}
