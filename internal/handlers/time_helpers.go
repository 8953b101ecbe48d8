package handlers

import (
	"time"

	domain "github.com/junsalon/salon-api/internal/domain/booking"
	"github.com/junsalon/salon-api/internal/timezone"
)

// parseSalonDate parses a YYYY-MM-DD query value as a calendar date in the
// salon's timezone, normalized to midnight.
func parseSalonDate(tz string, dateStr string) (time.Time, error) {
	loc := timezone.Location(tz)

	d, err := domain.ParseDate(dateStr, loc)
	if err != nil {
		return time.Time{}, err
	}

	return domain.NormalizeDate(d, loc), nil
}
