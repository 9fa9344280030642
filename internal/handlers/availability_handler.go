package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberbook/reservation-api/internal/httperr"
	"github.com/barberbook/reservation-api/internal/httpresp"
	ucReservation "github.com/barberbook/reservation-api/internal/usecase/reservation"
)

type AvailabilityHandler struct {
	availabilityUC *ucReservation.GetAvailability
}

func NewAvailabilityHandler(availabilityUC *ucReservation.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUC: availabilityUC}
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberID := c.Query("barberId")
	date := c.Query("date")

	ve := &httperr.ValidationError{}
	if barberID == "" {
		ve.Add("barberId", "is required")
	}
	if date == "" {
		ve.Add("date", "is required")
	}
	if ve.HasErrors() {
		httperr.BadRequest(c, "missing required parameters", ve.Fields)
		return
	}

	availability, err := h.availabilityUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, availability)
}
