package reservation

import (
	"time"
	"unicode/utf8"

	"github.com/barberbook/reservation-api/internal/httperr"
	"github.com/barberbook/reservation-api/internal/validators"
)

// ===============================
// Booking Validation
// ===============================

type BookingInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BarberID      string
	ServiceType   string
	Date          string
	Time          string
	Price         *float64
}

// ValidateBooking checks every rule the create transition requires and
// collects field-level errors instead of stopping at the first one.
func ValidateBooking(in BookingInput) error {
	ve := &httperr.ValidationError{}

	if n := utf8.RuneCountInString(in.CustomerName); n < 2 || n > 100 {
		ve.Add("customerName", "must be between 2 and 100 characters")
	}

	if !validators.IsEmailValid(in.CustomerEmail) {
		ve.Add("customerEmail", "must be a valid email address")
	}

	if in.CustomerPhone == "" {
		ve.Add("customerPhone", "is required")
	}

	if in.BarberID == "" {
		ve.Add("barberId", "is required")
	}

	if !IsValidServiceType(in.ServiceType) {
		ve.Add("serviceType", "must be one of haircut, shave, beard-trim, full-service")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		ve.Add("appointmentDate", "must be a valid date in YYYY-MM-DD format")
	}

	if _, err := time.Parse("15:04:05", in.Time); err != nil {
		ve.Add("appointmentTime", "must be a valid time in HH:MM:SS format")
	}

	if in.Price != nil && *in.Price < 0 {
		ve.Add("price", "must be a non-negative decimal")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
