package models

import "github.com/BruksfildServices01/barber-client/internal/slots"

// WorkingSchedule is a barber's declared block of availability on one date.
// TimeSlots is an ascending contiguous run at the slot granularity. ID is
// zero until the server confirms the entry.
type WorkingSchedule struct {
	ID        uint             `json:"id,omitempty"`
	BarberID  uint             `json:"barberId"`
	Date      string           `json:"date"` // YYYY-MM-DD
	TimeSlots []slots.TimeSlot `json:"timeSlots"`
}
