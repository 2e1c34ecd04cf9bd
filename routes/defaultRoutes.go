package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/feneonmalo-star/La-boutique-de-Lea/controllers"
	"github.com/feneonmalo-star/La-boutique-de-Lea/middlewares"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/metrics", middlewares.PrometheusHandler())
}
