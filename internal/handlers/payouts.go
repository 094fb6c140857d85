package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"photo-market-backend/internal/services"
)

type PayoutHandler struct {
	payouts *services.PayoutService
}

func NewPayoutHandler(payouts *services.PayoutService) *PayoutHandler {
	return &PayoutHandler{payouts: payouts}
}

// GetBalance godoc
// @Summary     Seller balance
// @Description Returns the seller's available and pending balance in major units.
// @Tags        payouts
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.BalanceResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /stripe-get-balance [post]
func (h *PayoutHandler) GetBalance(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	balance, err := h.payouts.GetBalance(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// Withdraw godoc
// @Summary     Withdraw balance
// @Description Pays out the seller's entire available balance to their bank account.
// @Tags        payouts
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.WithdrawResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /stripe-withdraw [post]
func (h *PayoutHandler) Withdraw(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	payout, err := h.payouts.Withdraw(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payout)
}
