package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/junsalon/salon-api/internal/domain/booking"
	"github.com/junsalon/salon-api/internal/dto"
	"github.com/junsalon/salon-api/internal/httperr"
	"github.com/junsalon/salon-api/internal/httpresp"
	ucBooking "github.com/junsalon/salon-api/internal/usecase/booking"
	"github.com/junsalon/salon-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo        domain.Repository
	bookUC      *ucBooking.BookAppointment
	cancelUC    *ucBooking.CancelAppointment
	getUC       *ucBooking.GetAppointment
	byContactUC *ucBooking.ListByContact
	byRangeUC   *ucBooking.ListByDateRange
	tz          string
}

func NewBookingHandler(
	repo domain.Repository,
	bookUC *ucBooking.BookAppointment,
	cancelUC *ucBooking.CancelAppointment,
	getUC *ucBooking.GetAppointment,
	byContactUC *ucBooking.ListByContact,
	byRangeUC *ucBooking.ListByDateRange,
	tz string,
) *BookingHandler {
	return &BookingHandler{
		repo:        repo,
		bookUC:      bookUC,
		cancelUC:    cancelUC,
		getUC:       getUC,
		byContactUC: byContactUC,
		byRangeUC:   byRangeUC,
		tz:          tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ContactName  string `json:"contact_name" binding:"required"`
	ContactPhone string `json:"contact_phone" binding:"required"`
	ContactEmail string `json:"contact_email"`

	TimeSlotID  uint   `json:"time_slot_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Description string `json:"description"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	date, err := parseSalonDate(h.tz, req.Date)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid date.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.ContactEmail))
	if email != "" {
		if !validators.HasEmailSyntax(email) {
			httperr.BadRequest(c, "invalid_email", "Malformed email address.")
			return
		}
		if !validators.IsEmailDomainValid(email) {
			httperr.BadRequest(c, "invalid_email_domain", "Email domain does not resolve.")
			return
		}
	}

	contact, err := h.repo.GetOrCreateContact(
		c.Request.Context(),
		req.ContactName,
		req.ContactPhone,
		email,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_resolve_contact", "Could not resolve contact.")
		return
	}

	rec, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		ContactID:   contact.ID,
		TimeSlotID:  req.TimeSlotID,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			httperr.Conflict(c, httperr.CodeSlotTaken, "Slot is no longer available.")
		case httperr.IsBusiness(err, httperr.CodeSlotUnknown):
			httperr.BadRequest(c, httperr.CodeSlotUnknown, "Unknown time slot.")
		case httperr.IsBusiness(err, httperr.CodeInvalidDate):
			httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid date.")
		default:
			httperr.Internal(c, "failed_to_create_booking", "Could not create booking.")
		}
		return
	}

	c.JSON(201, gin.H{
		"id":      rec.ID,
		"booking": dto.FromBookingRecord(rec),
	})
}

// ======================================================
// GET BY ID
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	rec, err := h.getUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeBookingNotFound) {
			httperr.NotFound(c, httperr.CodeBookingNotFound, "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_booking", "Could not load booking.")
		return
	}

	httpresp.OK(c, dto.FromBookingRecord(rec))
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	ok, err := h.cancelUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "failed_to_cancel_booking", "Could not cancel booking.")
		return
	}

	if !ok {
		httperr.NotFound(c, httperr.CodeBookingNotFound, "No active booking with that id.")
		return
	}

	c.JSON(200, gin.H{"cancelled": true})
}

// ======================================================
// LIST BY DATE RANGE (operator calendar)
// ======================================================

func (h *BookingHandler) ListByRange(c *gin.Context) {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_range", "Start and end dates are required.")
		return
	}

	start, err := parseSalonDate(h.tz, startStr)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid start date.")
		return
	}

	end, err := parseSalonDate(h.tz, endStr)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid end date.")
		return
	}

	recs, err := h.byRangeUC.Execute(c.Request.Context(), start, end)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidDate) {
			httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid range.")
			return
		}
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, dto.FromBookingRecords(recs))
}

// ======================================================
// LIST BY CONTACT (upcoming)
// ======================================================

func (h *BookingHandler) ListByContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_contact_id", "Invalid contact id.")
		return
	}

	recs, err := h.byContactUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, dto.FromBookingRecords(recs))
}
