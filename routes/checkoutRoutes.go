package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/feneonmalo-star/La-boutique-de-Lea/config"
	"github.com/feneonmalo-star/La-boutique-de-Lea/controllers"
	"github.com/feneonmalo-star/La-boutique-de-Lea/middlewares"
)

func CheckoutRoutes(server *gin.Engine, cfg *config.Config, checkout *controllers.CheckoutController) {
	server.POST("/api/checkout/session", middlewares.RequireSignIn(cfg.JWTSecret), checkout.CreateSession)
	server.GET("/api/checkout/status/:sessionId", middlewares.RequireSignIn(cfg.JWTSecret), checkout.GetStatus)

	// The provider authenticates itself through the signature header, not a
	// bearer token.
	server.POST("/api/webhook/payments", checkout.HandleWebhook)
}
