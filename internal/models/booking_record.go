package models

import "time"

type BookingRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ContactID uint    `gorm:"not null;index" json:"contact_id"`
	Contact   Contact `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"contact"`

	TimeSlotID uint `gorm:"not null" json:"time_slot_id"`

	// Calendar date of the appointment, normalized to midnight in the
	// salon timezone. The time-of-day lives in the slot table.
	Date time.Time `gorm:"not null;index" json:"date"`

	Description string `gorm:"size:255" json:"description"`

	CreatedDate time.Time `json:"created_date"`
	Cancelled   bool      `gorm:"default:false" json:"cancelled"`
}
