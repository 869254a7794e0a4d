package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eventstay/booking/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	query := `
	SELECT id, user_id, room_id, created_at, updated_at
	FROM bookings
	WHERE user_id = $1
	`

	return r.scanBooking(r.db.QueryRowContext(ctx, query, userID))
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	query := `
	SELECT id, user_id, room_id, created_at, updated_at
	FROM bookings
	WHERE id = $1
	`

	return r.scanBooking(r.db.QueryRowContext(ctx, query, bookingID))
}

func (r *BookingRepository) CountByRoomID(ctx context.Context, roomID int64) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, roomID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *BookingRepository) Create(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	query := `
	INSERT INTO bookings (user_id, room_id, created_at, updated_at)
	VALUES ($1, $2, NOW(), NOW())
	RETURNING id, user_id, room_id, created_at, updated_at
	`

	booking, err := r.scanBooking(r.db.QueryRowContext(ctx, query, userID, roomID))
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int64) error {
	query := `
	UPDATE bookings
	SET room_id = $1, updated_at = NOW()
	WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, roomID, bookingID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *BookingRepository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	return &booking, nil
}
