package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/booking-directory/internal/config"
	"github.com/iliyamo/booking-directory/internal/database"
	"github.com/iliyamo/booking-directory/internal/handler"
	"github.com/iliyamo/booking-directory/internal/middleware"
	"github.com/iliyamo/booking-directory/internal/repository"
	"github.com/iliyamo/booking-directory/internal/router"
	queue_publisher "github.com/iliyamo/booking-directory/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	events := queue_publisher.New(cfg.RabbitMQURL)
	if events == nil {
		log.Printf("rabbitmq: RABBITMQ_URL not set, listing events disabled")
	}

	e := echo.New()
	e.HideBanner = true

	// Redis is optional; a nil client turns the limiter into a pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: unavailable, rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterDirectory(e,
		&handler.VenueHandler{VenueRepo: venueRepo, ShowRepo: showRepo, Events: events},
		&handler.ArtistHandler{ArtistRepo: artistRepo, ShowRepo: showRepo, Events: events},
		&handler.ShowHandler{ShowRepo: showRepo, VenueRepo: venueRepo, ArtistRepo: artistRepo, Events: events},
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
