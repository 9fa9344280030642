package reservation

import (
	"context"

	domain "github.com/barberbook/reservation-api/internal/domain/reservation"
	"github.com/barberbook/reservation-api/internal/models"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Reservation, error) {
	return uc.repo.FindAll(ctx, filter)
}
