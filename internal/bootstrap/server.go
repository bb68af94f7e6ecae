package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/homestay/api"
	"github.com/Domenick1991/homestay/config"
	"github.com/Domenick1991/homestay/internal/service/booking"
	"github.com/Domenick1991/homestay/internal/service/listings"
	"github.com/Domenick1991/homestay/internal/service/reviews"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, listingSvc listings.ListingUseCase, bookingSvc booking.BookingUseCase, reviewSvc reviews.ReviewUseCase) error {
	engine := gin.New()
	engine.Use(gin.Recovery())

	v1 := engine.Group("/api/v1")
	listingGroup := v1.Group("/listings")
	bookingGroup := v1.Group("/bookings")

	api.NewListingHandler(listingSvc).Register(listingGroup)
	api.NewReviewHandler(reviewSvc).Register(listingGroup)
	api.NewBookingHandler(bookingSvc).Register(bookingGroup, listingGroup)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
