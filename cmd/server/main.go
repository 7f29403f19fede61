package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/salonsuite/salon-api/internal/app"
	"github.com/salonsuite/salon-api/internal/config"
	"github.com/salonsuite/salon-api/internal/database"
	"github.com/salonsuite/salon-api/internal/services"
)

// @title Salon API
// @version 1.0.0
// @description Storefront and booking backend for the salon application
// @host localhost:4000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	media, err := services.NewMediaStore(cfg)
	if err != nil {
		log.Fatalf("Failed to init media store: %v", err)
	}
	if !media.Configured() {
		log.Printf("Cloudinary credentials missing; /upload will be unavailable")
	}

	srv := app.New(cfg, db, media)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = srv.Shutdown()
	}()

	log.Printf("Starting server on port %s", cfg.Port)
	if err := srv.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
