package postgres

import (
	"context"
	"database/sql"

	"github.com/eventstay/booking/internal/core/domain"
)

type EnrollmentRepository struct {
	db *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	query := `
	SELECT id, user_id, name, created_at, updated_at
	FROM enrollments
	WHERE user_id = $1
	`

	var enrollment domain.Enrollment
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.Name,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	return &enrollment, nil
}

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	query := `
	SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
	       tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
	FROM tickets t
	JOIN ticket_types tt ON tt.id = t.ticket_type_id
	WHERE t.enrollment_id = $1
	`

	var ticket domain.Ticket
	err := r.db.QueryRowContext(ctx, query, enrollmentID).Scan(
		&ticket.ID,
		&ticket.EnrollmentID,
		&ticket.TicketTypeID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.TicketType.ID,
		&ticket.TicketType.Name,
		&ticket.TicketType.Price,
		&ticket.TicketType.IsRemote,
		&ticket.TicketType.IncludesHotel,
		&ticket.TicketType.CreatedAt,
		&ticket.TicketType.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}

		return nil, err
	}

	return &ticket, nil
}
