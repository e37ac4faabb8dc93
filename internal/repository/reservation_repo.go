package repository

import (
	"database/sql"
	"errors"

	"jetsetgo/internal/apperrors"
	"jetsetgo/internal/db"

	"github.com/lib/pq"
)

type ReservationRepository interface {
	CreateDriver(res *db.DriverReservation) (int, error)
	CreateLounge(res *db.LoungeReservation) (int, error)
	CreateParking(res *db.ParkingReservation) (int, error)
	CreateCompanion(res *db.CompanionReservation) (int, error)
	CountParkingBySlotAndDate(slot, date string) (int, error)
	ListDriverByEmail(email string) ([]db.DriverReservation, error)
	ListLoungeByEmail(email string) ([]db.LoungeReservation, error)
	ListParkingByEmail(email string) ([]db.ParkingReservation, error)
	ListCompanionByEmail(email string) ([]db.CompanionReservation, error)
}

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(database *sql.DB) ReservationRepository {
	return &reservationRepository{db: database}
}

func (r *reservationRepository) CreateDriver(res *db.DriverReservation) (int, error) {
	var id int
	err := r.db.QueryRow(
		`INSERT INTO driver_reservations (email, city, street, postcode, terminal, pickup_time, driver)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		res.Email, res.City, res.Street, res.Postcode, res.Terminal, res.PickupTime, res.Driver).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *reservationRepository) CreateLounge(res *db.LoungeReservation) (int, error) {
	var id int
	err := r.db.QueryRow(
		`INSERT INTO lounge_reservations (name, email, phone, lounge_name, departure_time)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		res.Name, res.Email, res.Phone, res.LoungeName, res.DepartureTime).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *reservationRepository) CreateParking(res *db.ParkingReservation) (int, error) {
	var id int
	err := r.db.QueryRow(
		`INSERT INTO parking_reservations
		 (user_name, phone, email, vehicle_number, reservation_date, start_time, parking_slot, time_period)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		res.UserName, res.Phone, res.Email, res.VehicleNumber, res.ReservationDate,
		res.StartTime, res.ParkingSlot, res.TimePeriod).Scan(&id)
	if err != nil {
		// The unique index on (parking_slot, reservation_date) closes the
		// race between the conflict probe and this insert.
		if isUniqueViolation(err) {
			return 0, apperrors.ErrSlotTaken
		}
		return 0, err
	}
	return id, nil
}

func (r *reservationRepository) CreateCompanion(res *db.CompanionReservation) (int, error) {
	var id int
	err := r.db.QueryRow(
		`INSERT INTO companion_reservations (name, email, phone, date, time, staff, passenger_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		res.Name, res.Email, res.Phone, res.Date, res.Time, res.Staff, res.PassengerType).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *reservationRepository) CountParkingBySlotAndDate(slot, date string) (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM parking_reservations WHERE parking_slot = $1 AND reservation_date = $2",
		slot, date).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reservationRepository) ListDriverByEmail(email string) ([]db.DriverReservation, error) {
	rows, err := r.db.Query(
		`SELECT id, email, city, street, postcode, terminal, pickup_time, driver
		 FROM driver_reservations WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []db.DriverReservation
	for rows.Next() {
		var res db.DriverReservation
		if err := rows.Scan(&res.ID, &res.Email, &res.City, &res.Street, &res.Postcode,
			&res.Terminal, &res.PickupTime, &res.Driver); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) ListLoungeByEmail(email string) ([]db.LoungeReservation, error) {
	rows, err := r.db.Query(
		`SELECT id, name, email, phone, lounge_name, departure_time
		 FROM lounge_reservations WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []db.LoungeReservation
	for rows.Next() {
		var res db.LoungeReservation
		if err := rows.Scan(&res.ID, &res.Name, &res.Email, &res.Phone,
			&res.LoungeName, &res.DepartureTime); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) ListParkingByEmail(email string) ([]db.ParkingReservation, error) {
	rows, err := r.db.Query(
		`SELECT id, user_name, phone, email, vehicle_number, reservation_date, start_time, parking_slot, time_period
		 FROM parking_reservations WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []db.ParkingReservation
	for rows.Next() {
		var res db.ParkingReservation
		if err := rows.Scan(&res.ID, &res.UserName, &res.Phone, &res.Email, &res.VehicleNumber,
			&res.ReservationDate, &res.StartTime, &res.ParkingSlot, &res.TimePeriod); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) ListCompanionByEmail(email string) ([]db.CompanionReservation, error) {
	rows, err := r.db.Query(
		`SELECT id, name, email, phone, date, time, staff, passenger_type
		 FROM companion_reservations WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []db.CompanionReservation
	for rows.Next() {
		var res db.CompanionReservation
		if err := rows.Scan(&res.ID, &res.Name, &res.Email, &res.Phone,
			&res.Date, &res.Time, &res.Staff, &res.PassengerType); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// Postgres class 23505: unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
