package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barberbook/reservation-api/internal/domain/reservation"
	"github.com/barberbook/reservation-api/internal/httperr"
	"github.com/barberbook/reservation-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Reservation (create / read)
// --------------------------------------------------

func (r *ReservationGormRepository) Create(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&res).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("reservation", id)
		}
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) FindAll(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).Model(&models.Reservation{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		q = q.Where("appointment_date = ?", filter.Date)
	}

	var reservations []models.Reservation
	if err := q.
		Order("appointment_date DESC, appointment_time DESC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// --------------------------------------------------
// Reservation (state change)
// --------------------------------------------------

func (r *ReservationGormRepository) Update(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ReservationGormRepository) ListBookedTimes(
	ctx context.Context,
	barberID string,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"barber_id = ? AND appointment_date = ? AND status IN ?",
			barberID,
			date,
			domain.BlockingStatuses(),
		).
		Order("appointment_time ASC").
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
