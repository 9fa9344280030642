package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/barberbook/reservation-api/internal/domain/reservation"
	"github.com/barberbook/reservation-api/internal/httperr"
	"github.com/barberbook/reservation-api/internal/httpresp"
	ucReservation "github.com/barberbook/reservation-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC *ucReservation.CreateReservation
	cancelUC *ucReservation.CancelReservation
	updateUC *ucReservation.UpdateReservation
	getUC    *ucReservation.GetReservation
	listUC   *ucReservation.ListReservations
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	cancelUC *ucReservation.CancelReservation,
	updateUC *ucReservation.UpdateReservation,
	getUC *ucReservation.GetReservation,
	listUC *ucReservation.ListReservations,
) *ReservationHandler {
	return &ReservationHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		updateUC: updateUC,
		getUC:    getUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerPhone string   `json:"customerPhone"`
	BarberID      string   `json:"barberId"`
	BarberName    string   `json:"barberName"`
	ServiceType   string   `json:"serviceType"`
	Date          string   `json:"appointmentDate"`
	Time          string   `json:"appointmentTime"`
	Price         *float64 `json:"price"`
	Duration      *int     `json:"duration"`
	Notes         string   `json:"notes"`
}

type UpdateReservationRequest struct {
	CustomerName  *string  `json:"customerName"`
	CustomerEmail *string  `json:"customerEmail"`
	CustomerPhone *string  `json:"customerPhone"`
	BarberID      *string  `json:"barberId"`
	BarberName    *string  `json:"barberName"`
	ServiceType   *string  `json:"serviceType"`
	Date          *string  `json:"appointmentDate"`
	Time          *string  `json:"appointmentTime"`
	Price         *float64 `json:"price"`
	Duration      *int     `json:"duration"`
	Status        *string  `json:"status"`
	Notes         *string  `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body", nil)
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		BarberID:      req.BarberID,
		BarberName:    req.BarberName,
		ServiceType:   req.ServiceType,
		Date:          req.Date,
		Time:          req.Time,
		Price:         req.Price,
		Duration:      req.Duration,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, res, "reservation created")
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}

	reservations, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"count":        len(reservations),
		"reservations": reservations,
	})
}

// ======================================================
// GET / UPDATE / CANCEL
// ======================================================

func (h *ReservationHandler) Get(c *gin.Context) {
	res, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) Update(c *gin.Context) {
	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body", nil)
		return
	}

	res, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), ucReservation.UpdateReservationInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		BarberID:      req.BarberID,
		BarberName:    req.BarberName,
		ServiceType:   req.ServiceType,
		Date:          req.Date,
		Time:          req.Time,
		Price:         req.Price,
		Duration:      req.Duration,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	res, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, res, "reservation cancelled")
}
