package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventstay/booking/internal/core/domain"
	"github.com/eventstay/booking/internal/core/ports"
)

const (
	hotelsCacheKey = "hotels"
	catalogTTL     = 5 * time.Minute
	roomsTTL       = 1 * time.Minute
)

func hotelRoomsCacheKey(hotelID int64) string {
	return fmt.Sprintf("hotels:rooms:%d", hotelID)
}

// RoomAvailability is a room together with how many bookings it
// currently holds.
type RoomAvailability struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	Booked    int       `json:"booked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HotelRoomsView is a hotel with its rooms and their occupancy.
type HotelRoomsView struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Image     string             `json:"image"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Rooms     []RoomAvailability `json:"Rooms"`
}

// HotelService serves the entitlement-gated hotel catalog. Reads go
// through a redis read-through cache; the booking service invalidates
// the per-hotel rooms key whenever occupancy changes.
type HotelService struct {
	entitlement *EntitlementService
	hotels      ports.HotelRepository
	bookings    ports.BookingRepository
	cache       *redis.Client
}

func NewHotelService(entitlement *EntitlementService, hotels ports.HotelRepository, bookings ports.BookingRepository, cache *redis.Client) *HotelService {
	return &HotelService{
		entitlement: entitlement,
		hotels:      hotels,
		bookings:    bookings,
		cache:       cache,
	}
}

// GetHotels lists all hotels for an entitled caller.
func (s *HotelService) GetHotels(ctx context.Context, userID int64) ([]domain.Hotel, error) {
	if _, _, err := s.entitlement.CheckEntitlement(ctx, userID); err != nil {
		return nil, err
	}

	// Entitlement first, cache second: the cached payload must never be
	// served to an ineligible caller.
	if cached, err := s.cache.Get(ctx, hotelsCacheKey).Result(); err == nil {
		var hotels []domain.Hotel
		if err := json.Unmarshal([]byte(cached), &hotels); err == nil {
			return hotels, nil
		}
	}

	hotels, err := s.hotels.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	s.cacheJSON(ctx, hotelsCacheKey, hotels, catalogTTL)

	return hotels, nil
}

// GetHotelRooms returns the hotel with its rooms and current occupancy.
func (s *HotelService) GetHotelRooms(ctx context.Context, userID, hotelID int64) (*HotelRoomsView, error) {
	if hotelID <= 0 {
		return nil, fmt.Errorf("invalid hotel id %d: %w", hotelID, domain.ErrBadRequest)
	}

	if _, _, err := s.entitlement.CheckEntitlement(ctx, userID); err != nil {
		return nil, err
	}

	key := hotelRoomsCacheKey(hotelID)
	if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
		var view HotelRoomsView
		if err := json.Unmarshal([]byte(cached), &view); err == nil {
			return &view, nil
		}
	}

	hotel, err := s.hotels.GetHotelByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	rooms, err := s.hotels.ListRoomsByHotel(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("list rooms for hotel %d: %w", hotelID, err)
	}

	view := &HotelRoomsView{
		ID:        hotel.ID,
		Name:      hotel.Name,
		Image:     hotel.Image,
		CreatedAt: hotel.CreatedAt,
		UpdatedAt: hotel.UpdatedAt,
		Rooms:     make([]RoomAvailability, 0, len(rooms)),
	}

	for _, room := range rooms {
		booked, err := s.bookings.CountByRoomID(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("count bookings for room %d: %w", room.ID, err)
		}
		view.Rooms = append(view.Rooms, RoomAvailability{
			ID:        room.ID,
			Name:      room.Name,
			Capacity:  room.Capacity,
			HotelID:   room.HotelID,
			Booked:    booked,
			CreatedAt: room.CreatedAt,
			UpdatedAt: room.UpdatedAt,
		})
	}

	s.cacheJSON(ctx, key, view, roomsTTL)

	return view, nil
}

func (s *HotelService) cacheJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("Failed to cache %s: %v", key, err)
	}
}
