package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/junsalon/salon-api/internal/audit"
	"github.com/junsalon/salon-api/internal/config"
	"github.com/junsalon/salon-api/internal/handlers"
	infraRepo "github.com/junsalon/salon-api/internal/infra/repository"
	"github.com/junsalon/salon-api/internal/middleware"
	"github.com/junsalon/salon-api/internal/slots"
	ucBooking "github.com/junsalon/salon-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	table *slots.Table,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db, log)

	auditLogger := audit.New(db, log)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	dayAvailabilityUC := ucBooking.NewGetDayAvailability(bookingRepo, table)
	timeAvailabilityUC := ucBooking.NewGetTimeAvailability(dayAvailabilityUC)

	bookAppointmentUC := ucBooking.NewBookAppointment(
		bookingRepo,
		table,
		auditDispatcher,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
	)

	getAppointmentUC := ucBooking.NewGetAppointment(bookingRepo)
	listByContactUC := ucBooking.NewListByContact(bookingRepo, cfg.Timezone)
	listByRangeUC := ucBooking.NewListByDateRange(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)

	availabilityHandler := handlers.NewAvailabilityHandler(
		dayAvailabilityUC,
		timeAvailabilityUC,
		cfg.Timezone,
	)

	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		bookAppointmentUC,
		cancelAppointmentUC,
		getAppointmentUC,
		listByContactUC,
		listByRangeUC,
		cfg.Timezone,
	)

	contactHandler := handlers.NewContactHandler(bookingRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// METRICS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/availability", availabilityHandler.Day)
			publicAPI.GET("/availability/free", availabilityHandler.Free)
			publicAPI.POST("/bookings", bookingHandler.Create)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// OPERATOR API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/bookings", bookingHandler.ListByRange)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			secured.GET("/contacts", contactHandler.List)
			secured.GET("/contacts/find", contactHandler.FindByPhone)
			secured.GET("/contacts/:id/bookings", bookingHandler.ListByContact)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
