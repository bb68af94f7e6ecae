package email

import (
	"context"

	"github.com/Domenick1991/homestay/internal/kafka"
	"github.com/rs/zerolog/log"
)

// Sender is a stand-in for a real mail integration; it logs what would
// be sent.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Info().
		Str("email", event.GuestEmail).
		Str("event", event.Type).
		Str("booking_id", event.BookingID).
		Str("check_in", event.CheckIn).
		Str("check_out", event.CheckOut).
		Msg("send booking notification")
	return nil
}
