package reservation

import (
	"context"

	domain "github.com/barberbook/reservation-api/internal/domain/reservation"
)

type Availability struct {
	Date           string   `json:"date"`
	BarberID       string   `json:"barberId"`
	AvailableSlots []string `json:"availableSlots"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute computes the bookable slots for a barber on a date: the fixed
// grid minus every time held by a pending or confirmed reservation. A day
// with nothing free is an empty list, not an error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID string,
	date string,
) (*Availability, error) {

	booked, err := uc.repo.ListBookedTimes(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	return &Availability{
		Date:           date,
		BarberID:       barberID,
		AvailableSlots: domain.AvailableSlots(booked),
	}, nil
}
