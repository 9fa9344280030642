package reservation

import (
	"context"

	"github.com/barberbook/reservation-api/internal/models"
)

type ListFilter struct {
	Status string
	Date   string
}

type Repository interface {
	// -------- Reservation (create / read) --------
	Create(
		ctx context.Context,
		r *models.Reservation,
	) error

	FindByID(
		ctx context.Context,
		id string,
	) (*models.Reservation, error)

	FindAll(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Reservation, error)

	// -------- Reservation (state change) --------
	Update(
		ctx context.Context,
		r *models.Reservation,
	) error

	// -------- Availability --------
	ListBookedTimes(
		ctx context.Context,
		barberID string,
		date string,
	) ([]string, error)
}
