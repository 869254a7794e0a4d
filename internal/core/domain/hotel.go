package domain

import (
	"time"
)

type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AtCapacity reports whether a room holding occupied bookings is full.
// Capacity is an exact bound: a room with occupied == capacity has no
// headroom left.
func (r *Room) AtCapacity(occupied int) bool {
	return occupied >= r.Capacity
}
