package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/smartseats/api/internal/config"
	"github.com/smartseats/api/internal/database"
	"github.com/smartseats/api/internal/handler"
	"github.com/smartseats/api/internal/queue"
	"github.com/smartseats/api/internal/repository"
	"github.com/smartseats/api/internal/router"
	"github.com/smartseats/api/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("database: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	eventRepo := repository.NewEventRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	reservationRepo := repository.NewReservationRepo(db)
	allocator := repository.NewSeatAllocator()

	publisher := queue.NewPublisher(cfg.RabbitURL)
	bookings := service.NewReservationService(db, userRepo, eventRepo, reservationRepo, allocator, publisher)
	queries := service.NewQueryService(userRepo, eventRepo, seatRepo, reservationRepo)

	rdb := config.NewRedisClient() // nil when Redis is unreachable; middleware degrades
	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e,
		handler.NewReservationHandler(bookings),
		handler.NewQueryHandler(queries),
		rdb, config.LoadCacheConfig(), config.LoadRateLimitConfig())

	// Background consumer appends confirmed bookings to logs/reservation.log.
	go func() {
		if err := queue.StartReservationConsumer(cfg.RabbitURL); err != nil {
			log.Printf("reservation-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
