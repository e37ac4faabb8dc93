package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverReservationRequest_Validate(t *testing.T) {
	valid := DriverReservationRequest{
		Email:      "ada@example.com",
		City:       "Rome",
		Street:     "Via Appia 1",
		Postcode:   "00100",
		Terminal:   "T3",
		PickupTime: "2024-05-01T09:00:00Z",
		Driver:     "Marco",
	}
	assert.NoError(t, valid.Validate())

	missingCity := valid
	missingCity.City = ""
	assert.Error(t, missingCity.Validate())

	badEmail := valid
	badEmail.Email = "nope"
	assert.Error(t, badEmail.Validate())
}

func TestLoungeReservationRequest_Validate(t *testing.T) {
	valid := LoungeReservationRequest{
		Name:          "Ada",
		Email:         "ada@example.com",
		Phone:         "+39123456789",
		LoungeName:    "SkyLounge",
		DepartureTime: "2024-05-01T12:30:00Z",
	}
	assert.NoError(t, valid.Validate())

	badTime := valid
	badTime.DepartureTime = "tomorrow at noon"
	assert.Error(t, badTime.Validate())

	missingLounge := valid
	missingLounge.LoungeName = ""
	assert.Error(t, missingLounge.Validate())
}

func TestParkingReservationRequest_Validate(t *testing.T) {
	valid := ParkingReservationRequest{
		UserName:        "Ada",
		Phone:           "+39123456789",
		Email:           "ada@example.com",
		VehicleNumber:   "AB123CD",
		ReservationDate: "2024-05-01",
		StartTime:       "09:00",
		ParkingSlot:     "A1",
		TimePeriod:      "4h",
	}
	assert.NoError(t, valid.Validate())

	badDate := valid
	badDate.ReservationDate = "01/05/2024"
	assert.Error(t, badDate.Validate())

	missingSlot := valid
	missingSlot.ParkingSlot = ""
	assert.Error(t, missingSlot.Validate())
}

func TestCompanionReservationRequest_Validate(t *testing.T) {
	valid := CompanionReservationRequest{
		Name:          "Ada",
		Email:         "ada@example.com",
		Phone:         "+39123456789",
		Date:          "2024-05-01",
		Time:          "10:00",
		Staff:         "Giulia",
		PassengerType: "senior",
	}
	assert.NoError(t, valid.Validate())

	badDate := valid
	badDate.Date = "May 1st"
	assert.Error(t, badDate.Validate())

	missingStaff := valid
	missingStaff.Staff = ""
	assert.Error(t, missingStaff.Validate())
}
