package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/feneonmalo-star/La-boutique-de-Lea/config"
	"github.com/feneonmalo-star/La-boutique-de-Lea/controllers"
	"github.com/feneonmalo-star/La-boutique-de-Lea/middlewares"
)

func OrderRoutes(server *gin.Engine, cfg *config.Config) {
	orders := server.Group("/api/orders")
	orders.Use(middlewares.RequireSignIn(cfg.JWTSecret))
	{
		orders.GET("", controllers.GetOrders)
		orders.GET("/:orderId", controllers.GetOrder)
	}
}
