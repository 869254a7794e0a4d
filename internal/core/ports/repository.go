package ports

import (
	"context"

	"github.com/eventstay/booking/internal/core/domain"
)

// Repositories return domain.ErrNotFound (possibly wrapped) when the
// requested record does not exist.

type EnrollmentRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
}

type TicketRepository interface {
	// GetByEnrollmentID loads the enrollment's ticket with its ticket
	// type populated.
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}

type HotelRepository interface {
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	GetHotelByID(ctx context.Context, hotelID int64) (*domain.Hotel, error)
	ListRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	GetRoomByID(ctx context.Context, roomID int64) (*domain.Room, error)
}

type BookingRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error)
	GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error)
	CountByRoomID(ctx context.Context, roomID int64) (int, error)
	Create(ctx context.Context, userID, roomID int64) (*domain.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID int64) error
}
