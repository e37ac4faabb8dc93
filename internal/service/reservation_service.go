package service

import (
	"fmt"

	"jetsetgo/internal/apperrors"
	"jetsetgo/internal/db"
	"jetsetgo/internal/entities"
	"jetsetgo/internal/repository"
)

type ReservationService interface {
	CreateDriverReservation(req *entities.DriverReservationRequest) (int, error)
	CreateLoungeReservation(req *entities.LoungeReservationRequest) (int, error)
	CreateParkingReservation(req *entities.ParkingReservationRequest) (int, error)
	CreateCompanionReservation(req *entities.CompanionReservationRequest) (int, error)
	ListBookingsByEmail(email string) (*entities.BookingsResponse, error)
}

// Notifier dispatches booking confirmations out of band. A send failure must
// never fail the booking that triggered it.
type Notifier interface {
	SendBookingConfirmation(kind, email, name, phone, summary string)
}

type reservationService struct {
	repo   repository.ReservationRepository
	sender Notifier
}

func NewReservationService(repo repository.ReservationRepository, sender Notifier) ReservationService {
	return &reservationService{repo: repo, sender: sender}
}

func (s *reservationService) CreateDriverReservation(req *entities.DriverReservationRequest) (int, error) {
	id, err := s.repo.CreateDriver(&db.DriverReservation{
		Email:      req.Email,
		City:       req.City,
		Street:     req.Street,
		Postcode:   req.Postcode,
		Terminal:   req.Terminal,
		PickupTime: req.PickupTime,
		Driver:     req.Driver,
	})
	if err != nil {
		return 0, err
	}
	s.notify("driver", req.Email, "", "",
		fmt.Sprintf("Pickup at %s, %s (%s), terminal %s, %s with driver %s.",
			req.Street, req.City, req.Postcode, req.Terminal, req.PickupTime, req.Driver))
	return id, nil
}

func (s *reservationService) CreateLoungeReservation(req *entities.LoungeReservationRequest) (int, error) {
	id, err := s.repo.CreateLounge(&db.LoungeReservation{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		LoungeName:    req.LoungeName,
		DepartureTime: req.DepartureTime,
	})
	if err != nil {
		return 0, err
	}
	s.notify("lounge", req.Email, req.Name, req.Phone,
		fmt.Sprintf("Lounge %s, departure %s.", req.LoungeName, req.DepartureTime))
	return id, nil
}

// CreateParkingReservation rejects a booking when the slot is already taken
// on that date. The probe and insert are separate statements; the unique
// index behind the repository catches concurrent bookings the probe missed.
func (s *reservationService) CreateParkingReservation(req *entities.ParkingReservationRequest) (int, error) {
	count, err := s.repo.CountParkingBySlotAndDate(req.ParkingSlot, req.ReservationDate)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, apperrors.ErrSlotTaken
	}

	id, err := s.repo.CreateParking(&db.ParkingReservation{
		UserName:        req.UserName,
		Phone:           req.Phone,
		Email:           req.Email,
		VehicleNumber:   req.VehicleNumber,
		ReservationDate: req.ReservationDate,
		StartTime:       req.StartTime,
		ParkingSlot:     req.ParkingSlot,
		TimePeriod:      req.TimePeriod,
	})
	if err != nil {
		return 0, err
	}
	s.notify("parking", req.Email, req.UserName, req.Phone,
		fmt.Sprintf("Slot %s on %s from %s (%s), vehicle %s.",
			req.ParkingSlot, req.ReservationDate, req.StartTime, req.TimePeriod, req.VehicleNumber))
	return id, nil
}

func (s *reservationService) CreateCompanionReservation(req *entities.CompanionReservationRequest) (int, error) {
	id, err := s.repo.CreateCompanion(&db.CompanionReservation{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Date:          req.Date,
		Time:          req.Time,
		Staff:         req.Staff,
		PassengerType: req.PassengerType,
	})
	if err != nil {
		return 0, err
	}
	s.notify("companion", req.Email, req.Name, req.Phone,
		fmt.Sprintf("%s at %s with %s (%s passenger).", req.Date, req.Time, req.Staff, req.PassengerType))
	return id, nil
}

// ListBookingsByEmail fans out one read per reservation kind. Any failed
// read fails the whole aggregate; no partial result is returned.
func (s *reservationService) ListBookingsByEmail(email string) (*entities.BookingsResponse, error) {
	driver, err := s.repo.ListDriverByEmail(email)
	if err != nil {
		return nil, err
	}
	lounge, err := s.repo.ListLoungeByEmail(email)
	if err != nil {
		return nil, err
	}
	parking, err := s.repo.ListParkingByEmail(email)
	if err != nil {
		return nil, err
	}
	companion, err := s.repo.ListCompanionByEmail(email)
	if err != nil {
		return nil, err
	}

	// Kinds with no bookings serialize as [] rather than null.
	if driver == nil {
		driver = []db.DriverReservation{}
	}
	if lounge == nil {
		lounge = []db.LoungeReservation{}
	}
	if parking == nil {
		parking = []db.ParkingReservation{}
	}
	if companion == nil {
		companion = []db.CompanionReservation{}
	}

	return &entities.BookingsResponse{
		Driver:    driver,
		Lounge:    lounge,
		Parking:   parking,
		Companion: companion,
	}, nil
}

func (s *reservationService) notify(kind, email, name, phone, summary string) {
	if s.sender == nil {
		return
	}
	s.sender.SendBookingConfirmation(kind, email, name, phone, summary)
}
