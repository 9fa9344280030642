package reservation

import (
	"time"

	"github.com/barberbook/reservation-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel moves the reservation to cancelled. Re-applying the transition
// is deliberately unguarded: the status stays cancelled.
func Cancel(r *models.Reservation, now time.Time) {
	r.Status = string(StatusCancelled)
	r.CancelledAt = &now
}

// DerivePricing fills price and duration from the service table for any
// value the caller did not supply.
func DerivePricing(r *models.Reservation, price *float64, duration *int) {
	info, ok := ServiceFor(r.ServiceType)

	switch {
	case price != nil:
		r.Price = *price
	case ok:
		r.Price = info.Price
	}

	switch {
	case duration != nil:
		r.Duration = *duration
	case ok:
		r.Duration = info.DurationMin
	}
}
