package domain

import (
	"time"

	"github.com/google/uuid"
)

// User identity is managed outside this service; we only keep the fields
// needed for hosting, booking and review attribution.
type User struct {
	ID        uuid.UUID
	Username  string
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
}
