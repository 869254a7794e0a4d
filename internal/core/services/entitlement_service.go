package services

import (
	"context"
	"fmt"

	"github.com/eventstay/booking/internal/core/domain"
	"github.com/eventstay/booking/internal/core/ports"
)

// EntitlementService decides whether a user may book a room at all. It
// is the single source of truth for that rule: both the read and the
// write paths of the booking service, and the hotel catalog, go through
// CheckEntitlement.
type EntitlementService struct {
	enrollments ports.EnrollmentRepository
	tickets     ports.TicketRepository
}

func NewEntitlementService(enrollments ports.EnrollmentRepository, tickets ports.TicketRepository) *EntitlementService {
	return &EntitlementService{
		enrollments: enrollments,
		tickets:     tickets,
	}
}

// CheckEntitlement resolves the user's enrollment and ticket and
// verifies the ticket grants hotel access. It performs no writes.
func (s *EntitlementService) CheckEntitlement(ctx context.Context, userID int64) (*domain.Enrollment, *domain.Ticket, error) {
	enrollment, err := s.enrollments.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve enrollment for user %d: %w", userID, err)
	}

	ticket, err := s.tickets.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve ticket for enrollment %d: %w", enrollment.ID, err)
	}

	if !ticket.GrantsHotelAccess() {
		return nil, nil, fmt.Errorf("ticket %d does not grant hotel access: %w", ticket.ID, domain.ErrForbidden)
	}

	return enrollment, ticket, nil
}
