package reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberbook/reservation-api/internal/audit"
	domain "github.com/barberbook/reservation-api/internal/domain/reservation"
	"github.com/barberbook/reservation-api/internal/models"
	"github.com/barberbook/reservation-api/internal/notification"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	BarberID   string
	BarberName string

	ServiceType string

	Date string
	Time string

	Price    *float64
	Duration *int

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo     domain.Repository
	notifier *notification.Dispatcher
	audit    *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	notifier *notification.Dispatcher,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	if err := domain.ValidateBooking(domain.BookingInput{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		BarberID:      in.BarberID,
		ServiceType:   in.ServiceType,
		Date:          in.Date,
		Time:          in.Time,
		Price:         in.Price,
	}); err != nil {
		return nil, err
	}

	barberName := in.BarberName
	if barber, ok := domain.FindBarber(in.BarberID); ok && barberName == "" {
		barberName = barber.Name
	}

	res := &models.Reservation{
		ID:              uuid.NewString(),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		BarberID:        in.BarberID,
		BarberName:      barberName,
		ServiceType:     in.ServiceType,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	domain.DerivePricing(res, in.Price, in.Duration)

	if err := uc.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	// best-effort, never rolls back the booking
	uc.notifier.Dispatch(notification.Delivery{
		Channel: notification.ChannelEmail,
		Message: notification.ConfirmationMessage(res),
	})

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: res.ID,
	})

	return res, nil
}
