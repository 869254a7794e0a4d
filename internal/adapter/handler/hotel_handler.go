package handler

import (
	"net/http"
	"strconv"

	"github.com/eventstay/booking/internal/core/services"
)

type HotelHandler struct {
	svc *services.HotelService
}

func NewHotelHandler(svc *services.HotelService) *HotelHandler {
	return &HotelHandler{svc: svc}
}

// GetHotels handles GET /hotels.
func (h *HotelHandler) GetHotels(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	hotels, err := h.svc.GetHotels(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, hotels)
}

// GetHotelRooms handles GET /hotels/{hotelId}.
func (h *HotelHandler) GetHotelRooms(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	hotelID, err := strconv.ParseInt(r.PathValue("hotelId"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid hotel id"})
		return
	}

	hotel, err := h.svc.GetHotelRooms(r.Context(), userID, hotelID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, hotel)
}
