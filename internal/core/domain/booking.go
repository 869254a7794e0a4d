package domain

import (
	"time"
)

// Booking links a user to the room they occupy. A user holds at most one
// booking at a time; the owning user never changes after creation, only
// the room reference does.
type Booking struct {
	ID        int64
	UserID    int64
	RoomID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
