package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/junsalon/salon-api/internal/httperr"
	"github.com/junsalon/salon-api/internal/httpresp"
	ucBooking "github.com/junsalon/salon-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	dayUC  *ucBooking.GetDayAvailability
	timeUC *ucBooking.GetTimeAvailability
	tz     string
}

func NewAvailabilityHandler(
	dayUC *ucBooking.GetDayAvailability,
	timeUC *ucBooking.GetTimeAvailability,
	tz string,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		dayUC:  dayUC,
		timeUC: timeUC,
		tz:     tz,
	}
}

// ======================================================
// DAY (all slots, marked booked/free)
// ======================================================

func (h *AvailabilityHandler) Day(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseSalonDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid date.")
		return
	}

	entries, err := h.dayUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_load_availability", "Could not load availability.")
		return
	}

	httpresp.List(c, entries)
}

// ======================================================
// FREE (free slots only)
// ======================================================

func (h *AvailabilityHandler) Free(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseSalonDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDate, "Invalid date.")
		return
	}

	entries, err := h.timeUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_load_availability", "Could not load availability.")
		return
	}

	httpresp.List(c, entries)
}
