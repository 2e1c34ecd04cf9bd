package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feneonmalo-star/La-boutique-de-Lea/checkout"
	"github.com/feneonmalo-star/La-boutique-de-Lea/payments"
)

// CheckoutController is the HTTP edge of the checkout workflow. It only
// translates between gin and the checkout service.
type CheckoutController struct {
	svc    *checkout.Service
	logger *zap.Logger
}

func NewCheckoutController(svc *checkout.Service, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{svc: svc, logger: logger}
}

type checkoutRequest struct {
	OriginURL string `json:"origin_url" binding:"required,url"`
}

// CreateSession opens a hosted checkout session for the caller's cart.
func (c *CheckoutController) CreateSession(ctx *gin.Context) {
	var req checkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	session, err := c.svc.CreateSession(ctx.Request.Context(), currentUserID(ctx), req.OriginURL)
	if err != nil {
		c.respondCheckoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// GetStatus reports the (possibly cached) status of a checkout session.
func (c *CheckoutController) GetStatus(ctx *gin.Context) {
	status, err := c.svc.GetStatus(ctx.Request.Context(), ctx.Param("sessionId"))
	if err != nil {
		c.respondCheckoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// HandleWebhook receives provider notifications. The body is passed through
// raw so the signature check covers exactly the delivered bytes.
func (c *CheckoutController) HandleWebhook(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "unable to read request body")
		return
	}

	signature := ctx.GetHeader("Payment-Signature")
	if _, err := c.svc.HandleWebhook(ctx.Request.Context(), body, signature); err != nil {
		if errors.Is(err, payments.ErrInvalidSignature) {
			c.logger.Warn("rejected webhook delivery", zap.Error(err))
			sendErrorResponse(ctx, http.StatusBadRequest, "invalid signature")
			return
		}
		c.respondCheckoutError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"status": "success"})
}

func (c *CheckoutController) respondCheckoutError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		sendErrorResponse(ctx, http.StatusBadRequest, "your cart is empty")
	case errors.Is(err, checkout.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, "transaction not found")
	case errors.Is(err, checkout.ErrGateway):
		c.logger.Error("payment gateway failure", zap.Error(err))
		sendErrorResponse(ctx, http.StatusBadGateway, "payment provider unavailable")
	default:
		c.logger.Error("checkout failure", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}
