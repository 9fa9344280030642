package notification

import (
	"fmt"

	"github.com/barberbook/reservation-api/internal/models"
)

func ConfirmationMessage(r *models.Reservation) Message {
	return Message{
		Recipient: r.CustomerEmail,
		Subject:   "Your reservation is booked",
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour reservation is booked.\n\n"+
				"Service: %s\nBarber: %s\nDate: %s\nTime: %s\nPrice: $%.2f\n\n"+
				"See you soon!",
			r.CustomerName,
			r.ServiceType,
			r.BarberName,
			r.AppointmentDate,
			r.AppointmentTime,
			r.Price,
		),
	}
}

func CancellationMessage(r *models.Reservation) Message {
	return Message{
		Recipient: r.CustomerEmail,
		Subject:   "Your reservation has been cancelled",
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour reservation for %s with %s on %s at %s has been cancelled.\n\n"+
				"We hope to see you another time.",
			r.CustomerName,
			r.ServiceType,
			r.BarberName,
			r.AppointmentDate,
			r.AppointmentTime,
		),
	}
}
