package main

import (
	"log"

	"github.com/BillyRonico412/brestau-sub000/configs"
	"github.com/BillyRonico412/brestau-sub000/middlewares"
	"github.com/BillyRonico412/brestau-sub000/repository"
	"github.com/BillyRonico412/brestau-sub000/routes"
	"github.com/BillyRonico412/brestau-sub000/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// Payment gateway (Stripe Checkout)
	gateway, err := services.NewStripeGateway(
		cfg.StripeSecretKey,
		repository.NewMenuRepository(db),
		cfg.CheckoutSuccessURL,
		cfg.CheckoutCancelURL,
		cfg.Currency,
	)
	if err != nil {
		log.Fatalf("init payment gateway: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, gateway)

	port := cfg.Port
	log.Println("listening on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
