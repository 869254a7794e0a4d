package postgres

import (
	"context"
	"database/sql"

	"github.com/eventstay/booking/internal/core/domain"
)

type HotelRepository struct {
	db *sql.DB
}

func NewHotelRepository(db *sql.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	query := `
	SELECT id, name, image, created_at, updated_at
	FROM hotels
	ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var hotels []domain.Hotel
	for rows.Next() {
		var hotel domain.Hotel
		if err := rows.Scan(
			&hotel.ID,
			&hotel.Name,
			&hotel.Image,
			&hotel.CreatedAt,
			&hotel.UpdatedAt,
		); err != nil {
			return nil, err
		}

		hotels = append(hotels, hotel)
	}

	return hotels, rows.Err()
}

func (r *HotelRepository) GetHotelByID(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	query := `
	SELECT id, name, image, created_at, updated_at
	FROM hotels
	WHERE id = $1
	`

	var hotel domain.Hotel
	err := r.db.QueryRowContext(ctx, query, hotelID).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Image,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	return &hotel, nil
}

func (r *HotelRepository) ListRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	query := `
	SELECT id, name, capacity, hotel_id, created_at, updated_at
	FROM rooms
	WHERE hotel_id = $1
	ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, hotelID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			&room.HotelID,
			&room.CreatedAt,
			&room.UpdatedAt,
		); err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *HotelRepository) GetRoomByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	query := `
	SELECT id, name, capacity, hotel_id, created_at, updated_at
	FROM rooms
	WHERE id = $1
	`

	var room domain.Room
	err := r.db.QueryRowContext(ctx, query, roomID).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	return &room, nil
}
