package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/bookit/experience-booking/internal/config"
	"github.com/bookit/experience-booking/internal/database"
	"github.com/bookit/experience-booking/internal/handler"
	"github.com/bookit/experience-booking/internal/mailer"
	"github.com/bookit/experience-booking/internal/middleware"
	"github.com/bookit/experience-booking/internal/pricing"
	"github.com/bookit/experience-booking/internal/queue"
	"github.com/bookit/experience-booking/internal/repository"
	"github.com/bookit/experience-booking/internal/router"
	"github.com/bookit/experience-booking/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	expRepo := repository.NewExperienceRepo(db)
	promoRepo := repository.NewPromoRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	promos := service.NewPromoService(promoRepo)
	calc := pricing.NewCalculator(cfg.TaxRate)
	publisher := queue.NewPublisher(cfg.AMQPURL)
	reservations := service.NewReservationService(expRepo, promos, bookingRepo, publisher, calc)

	// The confirmation consumer runs for the life of the process and
	// reconnects on broker failures; mail delivery never touches the booking
	// request path.
	mail := mailer.NewHTTPMailer(cfg.MailAPIKey, cfg.MailFrom)
	go func() {
		if err := queue.StartBookingConsumer(cfg.AMQPURL, mail); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e,
		handler.NewExperienceHandler(expRepo),
		handler.NewPromoHandler(promos),
		handler.NewBookingHandler(reservations),
		cache, limiter,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
