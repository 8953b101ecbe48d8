package booking

import "github.com/junsalon/salon-api/internal/slots"

// DayAvailability marks one configured slot as booked or free for a date.
type DayAvailability struct {
	Slot   slots.TimeSlot `json:"slot"`
	Booked bool           `json:"booked"`
}

// TimeAvailability is the free subset of the day, same ordering.
type TimeAvailability struct {
	Slot slots.TimeSlot `json:"slot"`
}
