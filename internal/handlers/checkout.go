package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/services"
)

type CheckoutHandler struct {
	checkout *services.CheckoutService
}

func NewCheckoutHandler(checkout *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// CreateCheckoutSession godoc
// @Summary     Start a hosted checkout
// @Description Creates a hosted checkout session for a photo. The platform fee is withheld and the rest is transferred to the seller.
// @Tags        checkout
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.PhotoPurchaseRequest true "Photo to buy"
// @Success     200 {object} models.URLResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /create-checkout-session [post]
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req models.PhotoPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	url, err := h.checkout.CreateCheckoutSession(c.Request.Context(), caller, req.PhotoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.URLResponse{URL: url})
}

// CreatePaymentIntent godoc
// @Summary     Start an in-app payment
// @Description Creates a payment intent for a photo and returns what the native payment sheet needs.
// @Tags        checkout
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.PhotoPurchaseRequest true "Photo to buy"
// @Success     200 {object} models.PaymentSheetResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /create-payment-intent [post]
func (h *CheckoutHandler) CreatePaymentIntent(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req models.PhotoPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	sheet, err := h.checkout.CreatePaymentIntent(c.Request.Context(), caller, req.PhotoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sheet)
}
