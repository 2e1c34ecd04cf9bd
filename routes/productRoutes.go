package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/feneonmalo-star/La-boutique-de-Lea/config"
	"github.com/feneonmalo-star/La-boutique-de-Lea/controllers"
	"github.com/feneonmalo-star/La-boutique-de-Lea/middlewares"
)

func ProductRoutes(server *gin.Engine, cfg *config.Config) {
	server.GET("/api/products", controllers.GetProducts)
	server.GET("/api/products/:id", controllers.GetProduct)

	admin := server.Group("/api/admin/products")
	admin.Use(middlewares.RequireSignIn(cfg.JWTSecret), middlewares.RequireAdmin())
	{
		admin.POST("", controllers.CreateProduct)
		admin.PUT("/:id", controllers.UpdateProduct)
		admin.DELETE("/:id", controllers.DeleteProduct)
		admin.POST("/:id/images", controllers.UploadProductImage(cfg))
	}
}
