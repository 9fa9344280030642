package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/barberbook/reservation-api/internal/audit"
	"github.com/barberbook/reservation-api/internal/config"
	"github.com/barberbook/reservation-api/internal/handlers"
	infraRepo "github.com/barberbook/reservation-api/internal/infra/repository"
	"github.com/barberbook/reservation-api/internal/notification"
	ucReservation "github.com/barberbook/reservation-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifierDispatcher := notification.NewDispatcher(map[string]notification.Notifier{
		notification.ChannelEmail: notification.NewEmailNotifier(notification.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}),
		notification.ChannelSMS:   notification.NewStubNotifier(notification.ChannelSMS),
		notification.ChannelPush:  notification.NewStubNotifier(notification.ChannelPush),
	})

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		notifierDispatcher,
		auditDispatcher,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		notifierDispatcher,
		auditDispatcher,
	)

	updateReservationUC := ucReservation.NewUpdateReservation(
		reservationRepo,
		auditDispatcher,
	)

	getReservationUC := ucReservation.NewGetReservation(reservationRepo)

	listReservationsUC := ucReservation.NewListReservations(reservationRepo)

	availabilityUC := ucReservation.NewGetAvailability(reservationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		cancelReservationUC,
		updateReservationUC,
		getReservationUC,
		listReservationsUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	barberHandler := handlers.NewBarberHandler()

	// ======================================================
	// API (JSON)
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/reservations", reservationHandler.Create)
		api.GET("/reservations", reservationHandler.List)
		api.GET("/reservations/:id", reservationHandler.Get)
		api.PUT("/reservations/:id", reservationHandler.Update)
		api.DELETE("/reservations/:id", reservationHandler.Cancel)

		api.GET("/available-slots", availabilityHandler.Get)
		api.GET("/barbers", barberHandler.List)
	}
}
