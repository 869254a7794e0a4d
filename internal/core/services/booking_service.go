package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventstay/booking/internal/core/domain"
	"github.com/eventstay/booking/internal/core/ports"
)

// RoomView is the stable subset of room fields exposed to callers.
type RoomView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingView is the projection returned for a user's current booking:
// the booking identifier plus the room snapshot, nothing else.
type BookingView struct {
	ID   int64    `json:"id"`
	Room RoomView `json:"Room"`
}

// BookingService allocates rooms to users: it creates bookings and
// reassigns them to other rooms, enforcing entitlement, the
// one-booking-per-user invariant and room capacity.
type BookingService struct {
	entitlement *EntitlementService
	bookings    ports.BookingRepository
	hotels      ports.HotelRepository
	cache       *redis.Client
}

func NewBookingService(entitlement *EntitlementService, bookings ports.BookingRepository, hotels ports.HotelRepository, cache *redis.Client) *BookingService {
	return &BookingService{
		entitlement: entitlement,
		bookings:    bookings,
		hotels:      hotels,
		cache:       cache,
	}
}

// GetBooking returns the caller's current booking together with its
// room snapshot.
func (s *BookingService) GetBooking(ctx context.Context, userID int64) (*BookingView, error) {
	if _, _, err := s.entitlement.CheckEntitlement(ctx, userID); err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	room, err := s.hotels.GetRoomByID(ctx, booking.RoomID)
	if err != nil {
		return nil, err
	}

	return &BookingView{
		ID: booking.ID,
		Room: RoomView{
			ID:        room.ID,
			Name:      room.Name,
			Capacity:  room.Capacity,
			HotelID:   room.HotelID,
			CreatedAt: room.CreatedAt,
			UpdatedAt: room.UpdatedAt,
		},
	}, nil
}

// CreateBooking books a room for the caller and returns the new booking
// id. Entitlement is checked before any room lookup so an ineligible
// caller learns nothing about the catalog, and the one-booking-per-user
// invariant is enforced before any room data is touched.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID int64) (int64, error) {
	if roomID <= 0 {
		return 0, fmt.Errorf("invalid room id %d: %w", roomID, domain.ErrBadRequest)
	}

	if _, _, err := s.entitlement.CheckEntitlement(ctx, userID); err != nil {
		return 0, err
	}

	if _, err := s.bookings.GetByUserID(ctx, userID); err == nil {
		return 0, fmt.Errorf("user %d already has a booking: %w", userID, domain.ErrForbidden)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}

	room, err := s.hotels.GetRoomByID(ctx, roomID)
	if err != nil {
		return 0, err
	}

	if err := s.checkRoomAvailable(ctx, room); err != nil {
		return 0, err
	}

	booking, err := s.bookings.Create(ctx, userID, roomID)
	if err != nil {
		return 0, fmt.Errorf("create booking: %w", err)
	}

	s.invalidateRooms(ctx, room.HotelID)

	return booking.ID, nil
}

// UpdateBooking moves the caller's booking to another room. Ownership
// is verified before capacity so a user cannot probe room fullness
// through bookings they do not own, and reassigning to the current room
// is rejected rather than treated as a no-op.
func (s *BookingService) UpdateBooking(ctx context.Context, userID, bookingID, roomID int64) (int64, error) {
	if _, _, err := s.entitlement.CheckEntitlement(ctx, userID); err != nil {
		return 0, err
	}

	if roomID <= 0 {
		return 0, fmt.Errorf("invalid room id %d: %w", roomID, domain.ErrBadRequest)
	}
	if bookingID <= 0 {
		return 0, fmt.Errorf("invalid booking id %d: %w", bookingID, domain.ErrBadRequest)
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return 0, err
	}

	if booking.UserID != userID {
		return 0, fmt.Errorf("booking %d is not owned by user %d: %w", bookingID, userID, domain.ErrUnauthorized)
	}

	if booking.RoomID == roomID {
		return 0, fmt.Errorf("booking %d already assigned to room %d: %w", bookingID, roomID, domain.ErrForbidden)
	}

	room, err := s.hotels.GetRoomByID(ctx, roomID)
	if err != nil {
		return 0, err
	}

	if err := s.checkRoomAvailable(ctx, room); err != nil {
		return 0, err
	}

	if err := s.bookings.UpdateRoom(ctx, bookingID, roomID); err != nil {
		return 0, fmt.Errorf("reassign booking %d: %w", bookingID, err)
	}

	s.invalidateRooms(ctx, room.HotelID)
	if old, err := s.hotels.GetRoomByID(ctx, booking.RoomID); err == nil && old.HotelID != room.HotelID {
		s.invalidateRooms(ctx, old.HotelID)
	}

	return booking.ID, nil
}

// checkRoomAvailable compares the room's booking count against its
// capacity. The count and the later insert are not covered by a single
// transaction, so two concurrent requests can both pass this check at
// capacity-1; a strict bound needs a conditional write at the storage
// layer.
func (s *BookingService) checkRoomAvailable(ctx context.Context, room *domain.Room) error {
	count, err := s.bookings.CountByRoomID(ctx, room.ID)
	if err != nil {
		return fmt.Errorf("count bookings for room %d: %w", room.ID, err)
	}

	if room.AtCapacity(count) {
		return fmt.Errorf("room %d is at capacity (%d): %w", room.ID, room.Capacity, domain.ErrForbidden)
	}

	return nil
}

func (s *BookingService) invalidateRooms(ctx context.Context, hotelID int64) {
	if err := s.cache.Del(ctx, hotelRoomsCacheKey(hotelID)).Err(); err != nil {
		log.Printf("Failed to invalidate rooms cache for hotel %d: %v", hotelID, err)
	}
}
