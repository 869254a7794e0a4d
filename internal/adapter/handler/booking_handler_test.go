package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eventstay/booking/internal/adapter/handler"
	"github.com/eventstay/booking/internal/core/domain"
	"github.com/eventstay/booking/internal/core/ports/mocks"
	"github.com/eventstay/booking/internal/core/services"
)

type handlerMocks struct {
	enrollments *mocks.EnrollmentRepository
	tickets     *mocks.TicketRepository
	bookings    *mocks.BookingRepository
	hotels      *mocks.HotelRepository
	redis       redismock.ClientMock
}

func newBookingHandler(t *testing.T) (*handler.BookingHandler, *handlerMocks) {
	m := &handlerMocks{
		enrollments: mocks.NewEnrollmentRepository(t),
		tickets:     mocks.NewTicketRepository(t),
		bookings:    mocks.NewBookingRepository(t),
		hotels:      mocks.NewHotelRepository(t),
	}

	db, mockRedis := redismock.NewClientMock()
	m.redis = mockRedis

	entitlement := services.NewEntitlementService(m.enrollments, m.tickets)
	service := services.NewBookingService(entitlement, m.bookings, m.hotels, db)

	return handler.NewBookingHandler(service), m
}

func (m *handlerMocks) entitle(userID int64) {
	enrollmentID := userID * 100
	m.enrollments.On("GetByUserID", mock.Anything, userID).Return(&domain.Enrollment{ID: enrollmentID, UserID: userID}, nil)
	m.tickets.On("GetByEnrollmentID", mock.Anything, enrollmentID).Return(&domain.Ticket{
		EnrollmentID: enrollmentID,
		Status:       domain.TicketPaid,
		TicketType:   domain.TicketType{IsRemote: false, IncludesHotel: true},
	}, nil)
}

func authed(r *http.Request, userID int64) *http.Request {
	return r.WithContext(handler.WithUserID(r.Context(), userID))
}

func TestCreateBookingHandler_Created(t *testing.T) {
	h, m := newBookingHandler(t)

	m.entitle(1)
	m.bookings.On("GetByUserID", mock.Anything, int64(1)).Return(nil, domain.ErrNotFound)
	m.hotels.On("GetRoomByID", mock.Anything, int64(5)).Return(&domain.Room{ID: 5, Capacity: 2, HotelID: 7}, nil)
	m.bookings.On("CountByRoomID", mock.Anything, int64(5)).Return(0, nil)
	m.bookings.On("Create", mock.Anything, int64(1), int64(5)).Return(&domain.Booking{ID: 42, UserID: 1, RoomID: 5}, nil)
	m.redis.ExpectDel("hotels:rooms:7").SetVal(1)

	req := authed(httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(`{"roomId": 5}`)), 1)
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookingId": 42}`, rec.Body.String())
}

func TestCreateBookingHandler_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing roomId", `{}`},
		{"non-positive roomId", `{"roomId": 0}`},
		{"non-numeric roomId", `{"roomId": "abc"}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newBookingHandler(t)

			req := authed(httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(tt.body)), 1)
			rec := httptest.NewRecorder()

			h.CreateBooking(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateBookingHandler_NoUserInContext(t *testing.T) {
	h, _ := newBookingHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(`{"roomId": 5}`))
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBookingHandler_RoomFull(t *testing.T) {
	h, m := newBookingHandler(t)

	m.entitle(1)
	m.bookings.On("GetByUserID", mock.Anything, int64(1)).Return(nil, domain.ErrNotFound)
	m.hotels.On("GetRoomByID", mock.Anything, int64(5)).Return(&domain.Room{ID: 5, Capacity: 1, HotelID: 7}, nil)
	m.bookings.On("CountByRoomID", mock.Anything, int64(5)).Return(1, nil)

	req := authed(httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(`{"roomId": 5}`)), 1)
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetBookingHandler_NotFound(t *testing.T) {
	h, m := newBookingHandler(t)

	m.entitle(1)
	m.bookings.On("GetByUserID", mock.Anything, int64(1)).Return(nil, domain.ErrNotFound)

	req := authed(httptest.NewRequest(http.MethodGet, "/booking", nil), 1)
	rec := httptest.NewRecorder()

	h.GetBooking(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBookingHandler_NotOwner(t *testing.T) {
	h, m := newBookingHandler(t)

	m.entitle(1)
	m.bookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{ID: 42, UserID: 2, RoomID: 5}, nil)

	req := authed(httptest.NewRequest(http.MethodPut, "/booking/42", strings.NewReader(`{"roomId": 6}`)), 1)
	req.SetPathValue("bookingId", "42")
	rec := httptest.NewRecorder()

	h.UpdateBooking(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateBookingHandler_NonNumericBookingID(t *testing.T) {
	h, m := newBookingHandler(t)

	req := authed(httptest.NewRequest(http.MethodPut, "/booking/abc", strings.NewReader(`{"roomId": 6}`)), 1)
	req.SetPathValue("bookingId", "abc")
	rec := httptest.NewRecorder()

	h.UpdateBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	m.bookings.AssertNotCalled(t, "UpdateRoom")
}
