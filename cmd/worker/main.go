package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/homestay/config"
	"github.com/Domenick1991/homestay/internal/email"
	"github.com/Domenick1991/homestay/internal/kafka"
	"github.com/Domenick1991/homestay/internal/observability"
	"github.com/Domenick1991/homestay/internal/repository"
	"github.com/Domenick1991/homestay/internal/service/booking"
	"github.com/Domenick1991/homestay/internal/service/listings"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
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

	observability.InitLogger("homestay-worker", cfg.Log.Pretty)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	listingRepo := repository.NewListingRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	listingService := listings.NewListingService(listingRepo, userRepo, reviewRepo, nil)
	bookingService := booking.NewBookingService(
		bookingRepo,
		listingRepo,
		userRepo,
		listingService,
		producer,
		cfg.Kafka.BookingTopic,
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.BookingEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Warn().Err(err).Msg("decode event")
				return nil
			}
			return emailSender.Send(ctx, event)
		}); err != nil {
			log.Warn().Err(err).Msg("consumer stopped")
		}
	}()

	sweepTicker := time.NewTicker(time.Duration(cfg.Worker.CompletionSweepMinutes) * time.Minute)
	defer sweepTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweepTicker.C:
			completed, err := bookingService.CompleteFinishedBookings(ctx)
			if err != nil {
				log.Error().Err(err).Msg("complete bookings sweep")
				continue
			}
			if len(completed) > 0 {
				log.Info().Int("count", len(completed)).Msg("completed finished bookings")
			}
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			return
		}
	}
}
