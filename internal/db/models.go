package db

type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"-"` // bcrypt hash, never serialized
}

// Date and time fields on reservations are stored as the strings the client
// submitted, so reads return them unchanged.

type DriverReservation struct {
	ID         int    `json:"id"`
	Email      string `json:"email"`
	City       string `json:"city"`
	Street     string `json:"street"`
	Postcode   string `json:"postcode"`
	Terminal   string `json:"terminal"`
	PickupTime string `json:"pickup_time"`
	Driver     string `json:"driver"`
}

type LoungeReservation struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LoungeName    string `json:"lounge_name"`
	DepartureTime string `json:"departure_time"`
}

type ParkingReservation struct {
	ID              int    `json:"id"`
	UserName        string `json:"user_name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	VehicleNumber   string `json:"vehicle_number"`
	ReservationDate string `json:"reservation_date"`
	StartTime       string `json:"start_time"`
	ParkingSlot     string `json:"parking_slot"`
	TimePeriod      string `json:"time_period"`
}

type CompanionReservation struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Staff         string `json:"staff"`
	PassengerType string `json:"passenger_type"`
}
