package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/feneonmalo-star/La-boutique-de-Lea/config"
	"github.com/feneonmalo-star/La-boutique-de-Lea/controllers"
	"github.com/feneonmalo-star/La-boutique-de-Lea/middlewares"
)

func AuthRoutes(server *gin.Engine, cfg *config.Config) {
	auth := server.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register(cfg))
		auth.POST("/login", controllers.Login(cfg))
		auth.GET("/me", middlewares.RequireSignIn(cfg.JWTSecret), controllers.GetMe)
	}
}
