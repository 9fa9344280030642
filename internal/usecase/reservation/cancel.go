package reservation

import (
	"context"
	"time"

	"github.com/barberbook/reservation-api/internal/audit"
	domain "github.com/barberbook/reservation-api/internal/domain/reservation"
	"github.com/barberbook/reservation-api/internal/models"
	"github.com/barberbook/reservation-api/internal/notification"
)

type CancelReservation struct {
	repo     domain.Repository
	notifier *notification.Dispatcher
	audit    *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	notifier *notification.Dispatcher,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	res, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	domain.Cancel(res, time.Now())

	if err := uc.repo.Update(ctx, res); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notification.Delivery{
		Channel: notification.ChannelEmail,
		Message: notification.CancellationMessage(res),
	})

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: res.ID,
	})

	return res, nil
}
