package entities

import (
	"net/mail"
	"time"

	"jetsetgo/internal/apperrors"
	"jetsetgo/internal/db"
)

type DriverReservationRequest struct {
	Email      string `json:"email"`
	City       string `json:"city"`
	Street     string `json:"street"`
	Postcode   string `json:"postcode"`
	Terminal   string `json:"terminal"`
	PickupTime string `json:"pickup_time"`
	Driver     string `json:"driver"`
}

func (r *DriverReservationRequest) Validate() error {
	if err := requireEmail(r.Email); err != nil {
		return err
	}
	if r.City == "" {
		return apperrors.NewValidation("city", "City is required")
	}
	if r.Street == "" {
		return apperrors.NewValidation("street", "Street is required")
	}
	if r.Postcode == "" {
		return apperrors.NewValidation("postcode", "Postcode is required")
	}
	if r.Terminal == "" {
		return apperrors.NewValidation("terminal", "Terminal is required")
	}
	if r.PickupTime == "" {
		return apperrors.NewValidation("pickup_time", "Pickup time is required")
	}
	if r.Driver == "" {
		return apperrors.NewValidation("driver", "Driver is required")
	}
	return nil
}

type LoungeReservationRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LoungeName    string `json:"lounge_name"`
	DepartureTime string `json:"departure_time"`
}

func (r *LoungeReservationRequest) Validate() error {
	if r.Name == "" {
		return apperrors.NewValidation("name", "name is required")
	}
	if err := requireEmail(r.Email); err != nil {
		return err
	}
	if r.Phone == "" {
		return apperrors.NewValidation("phone", "phone is required")
	}
	if r.LoungeName == "" {
		return apperrors.NewValidation("lounge_name", "lounge_name is required")
	}
	if _, err := time.Parse(time.RFC3339, r.DepartureTime); err != nil {
		return apperrors.NewValidation("departure_time", "departure_time must be an ISO 8601 timestamp")
	}
	return nil
}

type ParkingReservationRequest struct {
	UserName        string `json:"user_name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	VehicleNumber   string `json:"vehicle_number"`
	ReservationDate string `json:"reservation_date"`
	StartTime       string `json:"start_time"`
	ParkingSlot     string `json:"parking_slot"`
	TimePeriod      string `json:"time_period"`
}

func (r *ParkingReservationRequest) Validate() error {
	if r.UserName == "" {
		return apperrors.NewValidation("user_name", "user_name is required")
	}
	if r.Phone == "" {
		return apperrors.NewValidation("phone", "phone is required")
	}
	if err := requireEmail(r.Email); err != nil {
		return err
	}
	if r.VehicleNumber == "" {
		return apperrors.NewValidation("vehicle_number", "vehicle_number is required")
	}
	if _, err := time.Parse("2006-01-02", r.ReservationDate); err != nil {
		return apperrors.NewValidation("reservation_date", "reservation_date must be an ISO 8601 date (YYYY-MM-DD)")
	}
	if r.StartTime == "" {
		return apperrors.NewValidation("start_time", "start_time is required")
	}
	if r.ParkingSlot == "" {
		return apperrors.NewValidation("parking_slot", "parking_slot is required")
	}
	if r.TimePeriod == "" {
		return apperrors.NewValidation("time_period", "time_period is required")
	}
	return nil
}

type CompanionReservationRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Staff         string `json:"staff"`
	PassengerType string `json:"passenger_type"`
}

func (r *CompanionReservationRequest) Validate() error {
	if r.Name == "" {
		return apperrors.NewValidation("name", "name is required")
	}
	if err := requireEmail(r.Email); err != nil {
		return err
	}
	if r.Phone == "" {
		return apperrors.NewValidation("phone", "phone is required")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return apperrors.NewValidation("date", "date must be an ISO 8601 date (YYYY-MM-DD)")
	}
	if r.Time == "" {
		return apperrors.NewValidation("time", "time is required")
	}
	if r.Staff == "" {
		return apperrors.NewValidation("staff", "staff is required")
	}
	if r.PassengerType == "" {
		return apperrors.NewValidation("passenger_type", "passenger_type is required")
	}
	return nil
}

type BookingsRequest struct {
	Email string `json:"email"`
}

func (r *BookingsRequest) Validate() error {
	return requireEmail(r.Email)
}

// BookingsResponse is the aggregate of a user's reservations keyed by kind.
type BookingsResponse struct {
	Driver    []db.DriverReservation    `json:"driver"`
	Lounge    []db.LoungeReservation    `json:"lounge"`
	Parking   []db.ParkingReservation   `json:"parking"`
	Companion []db.CompanionReservation `json:"companion"`
}

type CreateBookingResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

func requireEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return apperrors.NewValidation("email", "Valid email is required")
	}
	return nil
}
