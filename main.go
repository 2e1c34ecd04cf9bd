package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feneonmalo-star/La-boutique-de-Lea/checkout"
	"github.com/feneonmalo-star/La-boutique-de-Lea/config"
	"github.com/feneonmalo-star/La-boutique-de-Lea/controllers"
	"github.com/feneonmalo-star/La-boutique-de-Lea/initializers"
	"github.com/feneonmalo-star/La-boutique-de-Lea/middlewares"
	"github.com/feneonmalo-star/La-boutique-de-Lea/payments"
	"github.com/feneonmalo-star/La-boutique-de-Lea/repository"
	"github.com/feneonmalo-star/La-boutique-de-Lea/routes"
	"github.com/feneonmalo-star/La-boutique-de-Lea/utils"
)

func main() {
	initializers.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	initializers.ConnectToDB(cfg.DatabaseDSN)
	initializers.SyncDatabase()

	gateway := payments.NewClient(cfg, logger)
	store := repository.New(initializers.DB)

	// Assign only a non-nil *Mailer; a typed-nil pointer inside the
	// interface would defeat the service's nil check.
	var mailer checkout.Mailer
	if m := utils.NewMailer(cfg); m != nil {
		mailer = m
	}
	checkoutSvc := checkout.New(store, gateway, mailer, cfg, logger)
	checkoutCtl := controllers.NewCheckoutController(checkoutSvc, logger)

	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middlewares.RequestLogger(logger))
	server.Use(middlewares.Metrics())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Payment-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, cfg)
	routes.ProductRoutes(server, cfg)
	routes.CartRoutes(server, cfg)
	routes.OrderRoutes(server, cfg)
	routes.CheckoutRoutes(server, cfg, checkoutCtl)

	if err := server.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
