package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/homestay/config"
	"github.com/Domenick1991/homestay/internal/bootstrap"
	"github.com/Domenick1991/homestay/internal/cache"
	"github.com/Domenick1991/homestay/internal/kafka"
	"github.com/Domenick1991/homestay/internal/observability"
	"github.com/Domenick1991/homestay/internal/repository"
	"github.com/Domenick1991/homestay/internal/service/booking"
	"github.com/Domenick1991/homestay/internal/service/listings"
	"github.com/Domenick1991/homestay/internal/service/reviews"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	observability.InitLogger("homestay-api", cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Listings.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	listingRepo := repository.NewListingRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	listingService := listings.NewListingService(listingRepo, userRepo, reviewRepo, redisCache)
	reviewService := reviews.NewReviewService(reviewRepo, listingRepo)
	bookingService := booking.NewBookingService(
		bookingRepo,
		listingRepo,
		userRepo,
		listingService,
		producer,
		cfg.Kafka.BookingTopic,
	)

	if err := bootstrap.Run(ctx, cfg, listingService, bookingService, reviewService); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
