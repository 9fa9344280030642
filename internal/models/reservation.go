package models

import "time"

type Reservation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customerName"`
	CustomerEmail string `gorm:"size:100;not null" json:"customerEmail"`
	CustomerPhone string `gorm:"size:30;not null" json:"customerPhone"`

	BarberID   string `gorm:"size:36;index:idx_reservations_barber_date" json:"barberId"`
	BarberName string `gorm:"size:100" json:"barberName"`

	ServiceType string `gorm:"size:30;not null" json:"serviceType"`

	AppointmentDate string `gorm:"size:10;index:idx_reservations_barber_date" json:"appointmentDate"`
	AppointmentTime string `gorm:"size:8" json:"appointmentTime"`

	Duration int     `json:"duration"`
	Price    float64 `json:"price"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
