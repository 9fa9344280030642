package reservation

import (
	"context"

	"github.com/barberbook/reservation-api/internal/audit"
	domain "github.com/barberbook/reservation-api/internal/domain/reservation"
	"github.com/barberbook/reservation-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateReservationInput is a partial patch: nil fields are left untouched.
type UpdateReservationInput struct {
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string

	BarberID   *string
	BarberName *string

	ServiceType *string

	Date *string
	Time *string

	Price    *float64
	Duration *int

	Status *string
	Notes  *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	id string,
	in UpdateReservationInput,
) (*models.Reservation, error) {

	res, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CustomerName != nil {
		res.CustomerName = *in.CustomerName
	}
	if in.CustomerEmail != nil {
		res.CustomerEmail = *in.CustomerEmail
	}
	if in.CustomerPhone != nil {
		res.CustomerPhone = *in.CustomerPhone
	}
	if in.BarberID != nil {
		res.BarberID = *in.BarberID
	}
	if in.BarberName != nil {
		res.BarberName = *in.BarberName
	}
	if in.Date != nil {
		res.AppointmentDate = *in.Date
	}
	if in.Time != nil {
		res.AppointmentTime = *in.Time
	}
	if in.Status != nil {
		res.Status = *in.Status
	}
	if in.Notes != nil {
		res.Notes = *in.Notes
	}

	serviceChanged := in.ServiceType != nil && *in.ServiceType != res.ServiceType
	if in.ServiceType != nil {
		res.ServiceType = *in.ServiceType
	}

	// a changed service re-derives price/duration unless explicitly overridden
	if serviceChanged {
		domain.DerivePricing(res, in.Price, in.Duration)
	} else {
		if in.Price != nil {
			res.Price = *in.Price
		}
		if in.Duration != nil {
			res.Duration = *in.Duration
		}
	}

	if err := uc.repo.Update(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_updated",
		Entity:   "reservation",
		EntityID: res.ID,
	})

	return res, nil
}
