package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/feneonmalo-star/La-boutique-de-Lea/config"
	"github.com/feneonmalo-star/La-boutique-de-Lea/controllers"
	"github.com/feneonmalo-star/La-boutique-de-Lea/middlewares"
)

func CartRoutes(server *gin.Engine, cfg *config.Config) {
	cart := server.Group("/api/cart")
	cart.Use(middlewares.RequireSignIn(cfg.JWTSecret))
	{
		cart.GET("", controllers.GetCart)
		cart.POST("", controllers.AddToCart)
		cart.DELETE("/:cartItemId", controllers.RemoveFromCart)
		cart.DELETE("", controllers.ClearCart)
	}
}
