package appointment

import "time"

// SlotsPerDay is the booking capacity of one mechanic for one calendar date.
const SlotsPerDay = 4

// StatusConfirmed is the only status the booking flow assigns.
const StatusConfirmed = "confirmed"

// DateLayout is the wire format for appointment dates.
const DateLayout = "2006-01-02"

// Appointment ties a client to one mechanic on one date.
type Appointment struct {
	ID              int64  `json:"id"`
	ClientName      string `json:"client_name"`
	ClientAddress   string `json:"client_address"`
	ClientPhone     string `json:"client_phone"`
	CarLicense      string `json:"car_license"`
	CarEngine       string `json:"car_engine"`
	AppointmentDate string `json:"appointment_date"`
	MechanicID      int64  `json:"mechanic_id"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// AllDigits reports whether s is non-empty and contains only ASCII digits.
func AllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsFutureDate reports whether date is a valid calendar date strictly after now's date.
// Comparison is on the YYYY-MM-DD form, matching how dates are stored.
func IsFutureDate(date string, now time.Time) bool {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return false
	}
	return date > now.Format(DateLayout)
}
