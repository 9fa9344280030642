package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/barberbook/reservation-api/internal/domain/reservation"
	"github.com/barberbook/reservation-api/internal/httpresp"
)

type BarberHandler struct{}

func NewBarberHandler() *BarberHandler {
	return &BarberHandler{}
}

func (h *BarberHandler) List(c *gin.Context) {
	httpresp.OK(c, domain.Barbers())
}
