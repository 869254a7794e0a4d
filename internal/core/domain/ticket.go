package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

// Enrollment identifies the registrant behind a platform user. It is
// created by the registration flow and read-only here.
type Enrollment struct {
	ID        int64
	UserID    int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketType struct {
	ID            int64
	Name          string
	Price         decimal.Decimal
	IsRemote      bool
	IncludesHotel bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Ticket is the attendance ticket tied to an enrollment. Its status is
// mutated only by the payment flow; this service just reads it.
type Ticket struct {
	ID           int64
	EnrollmentID int64
	TicketTypeID int64
	Status       TicketStatus
	TicketType   TicketType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GrantsHotelAccess reports whether the ticket entitles its holder to
// book a room: it must be paid for an in-person ticket type that ships
// with hotel accommodation.
func (t *Ticket) GrantsHotelAccess() bool {
	return t.Status == TicketPaid && !t.TicketType.IsRemote && t.TicketType.IncludesHotel
}
