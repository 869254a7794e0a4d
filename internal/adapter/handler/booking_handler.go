package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/eventstay/booking/internal/core/services"
	"github.com/eventstay/booking/internal/platform/monitoring"
)

type BookingRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}

type BookingResponse struct {
	BookingID int64 `json:"bookingId"`
}

type BookingHandler struct {
	svc      *services.BookingService
	validate *validator.Validate
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

// GetBooking handles GET /booking.
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	booking, err := h.svc.GetBooking(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

// CreateBooking handles POST /booking.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	req, ok := h.bindBookingRequest(w, r)
	if !ok {
		return
	}

	bookingID, err := h.svc.CreateBooking(r.Context(), userID, req.RoomID)
	if err != nil {
		monitoring.BookingRejected("create")
		writeError(w, err)
		return
	}

	monitoring.BookingCreated()
	writeJSON(w, http.StatusOK, BookingResponse{BookingID: bookingID})
}

// UpdateBooking handles PUT /booking/{bookingId}.
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	bookingID, err := strconv.ParseInt(r.PathValue("bookingId"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
		return
	}

	req, ok := h.bindBookingRequest(w, r)
	if !ok {
		return
	}

	id, err := h.svc.UpdateBooking(r.Context(), userID, bookingID, req.RoomID)
	if err != nil {
		monitoring.BookingRejected("update")
		writeError(w, err)
		return
	}

	monitoring.BookingReassigned()
	writeJSON(w, http.StatusOK, BookingResponse{BookingID: id})
}

func (h *BookingHandler) bindBookingRequest(w http.ResponseWriter, r *http.Request) (BookingRequest, bool) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return req, false
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "roomId must be a positive integer"})
		return req, false
	}

	return req, true
}
