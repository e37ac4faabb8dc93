package api

import (
	"encoding/json"
	"net/http"

	"jetsetgo/internal/entities"
	"jetsetgo/internal/service"
)

type ReservationHandler struct {
	service service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: svc}
}

func (h *ReservationHandler) ReserveDriver(w http.ResponseWriter, r *http.Request) {
	var req entities.DriverReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	id, err := h.service.CreateDriverReservation(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.CreateBookingResponse{ID: id, Message: "Reservation created"})
}

func (h *ReservationHandler) ReserveLounge(w http.ResponseWriter, r *http.Request) {
	var req entities.LoungeReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	id, err := h.service.CreateLoungeReservation(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.CreateBookingResponse{ID: id, Message: "Reservation created"})
}

func (h *ReservationHandler) ReserveParking(w http.ResponseWriter, r *http.Request) {
	var req entities.ParkingReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	id, err := h.service.CreateParkingReservation(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.CreateBookingResponse{ID: id, Message: "Reservation created"})
}

func (h *ReservationHandler) ReserveCompanion(w http.ResponseWriter, r *http.Request) {
	var req entities.CompanionReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	id, err := h.service.CreateCompanionReservation(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.CreateBookingResponse{ID: id, Message: "Reservation created"})
}

func (h *ReservationHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	bookings, err := h.service.ListBookingsByEmail(req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
