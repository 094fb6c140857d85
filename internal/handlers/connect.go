package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/services"
)

type ConnectHandler struct {
	connect *services.ConnectService
}

func NewConnectHandler(connect *services.ConnectService) *ConnectHandler {
	return &ConnectHandler{connect: connect}
}

// CreateConnectAccount godoc
// @Summary     Create a seller account
// @Description Creates the caller's connected account on first use and returns an onboarding link for it.
// @Tags        connect
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ConnectAccountRequest false "Redirect target (web or mobile)"
// @Success     200 {object} models.URLResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /create-connect-account [post]
func (h *ConnectHandler) CreateConnectAccount(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	// The body is optional.
	var req models.ConnectAccountRequest
	_ = c.ShouldBindJSON(&req)

	url, err := h.connect.CreateConnectAccount(c.Request.Context(), caller, req.Platform)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.URLResponse{URL: url})
}

// CreateOnboardingLink godoc
// @Summary     Create an onboarding link
// @Description Returns a fresh onboarding link for a connected account owned by the caller.
// @Tags        connect
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.OnboardingLinkRequest true "Connected account"
// @Success     200 {object} models.URLResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /create-onboarding-link [post]
func (h *ConnectHandler) CreateOnboardingLink(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var req models.OnboardingLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	url, err := h.connect.CreateOnboardingLink(c.Request.Context(), caller, req.StripeAccountID, req.Platform)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.URLResponse{URL: url})
}

// CheckAccountStatus godoc
// @Summary     Sync seller account status
// @Description Fetches the connected account from the payment processor and refreshes the cached onboarding flags.
// @Tags        connect
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.AccountStatusResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /stripe-check-account-status [post]
func (h *ConnectHandler) CheckAccountStatus(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	status, err := h.connect.CheckAccountStatus(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
