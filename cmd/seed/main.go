package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/Domenick1991/homestay/config"
	"github.com/Domenick1991/homestay/internal/observability"
	"github.com/Domenick1991/homestay/internal/repository"
	"github.com/Domenick1991/homestay/internal/seed"
	"github.com/Domenick1991/homestay/internal/service/booking"
	"github.com/Domenick1991/homestay/internal/service/listings"
	"github.com/Domenick1991/homestay/internal/service/reviews"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	users := flag.Int("users", 10, "number of users to create")
	listingCount := flag.Int("listings", 20, "number of listings to create")
	bookings := flag.Int("bookings", 30, "number of bookings to create")
	reviewCount := flag.Int("reviews", 40, "number of reviews to create")
	clear := flag.Bool("clear", false, "clear existing data before seeding")
	randSeed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	observability.InitLogger("homestay-seed", cfg.Log.Pretty)

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	listingRepo := repository.NewListingRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	listingService := listings.NewListingService(listingRepo, userRepo, reviewRepo, nil)
	reviewService := reviews.NewReviewService(reviewRepo, listingRepo)
	// No producer: seeding should not flood the notifications topic.
	bookingService := booking.NewBookingService(bookingRepo, listingRepo, userRepo, listingService, nil, "")

	if *randSeed == 0 {
		*randSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*randSeed))

	seeder := seed.NewSeeder(
		userRepo, listingRepo, bookingRepo, reviewRepo,
		listingService, bookingService, reviewService,
		rng, time.Now, log.Logger,
	)

	if *clear {
		log.Info().Msg("clearing existing data")
		if err := seeder.Clear(ctx); err != nil {
			log.Fatal().Err(err).Msg("clear data")
		}
	}

	log.Info().Int64("seed", *randSeed).Msg("starting database seeding")
	if _, err := seeder.Run(ctx, seed.Counts{
		Users:    *users,
		Listings: *listingCount,
		Bookings: *bookings,
		Reviews:  *reviewCount,
	}); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}
