package models

import "github.com/BruksfildServices01/barber-client/internal/slots"

// Appointment is the booking request sent to POST /appointments. The client
// keeps nothing of it after submission beyond the slot-consumption side
// effect on the fetched availability list.
type Appointment struct {
	BarberID    uint           `json:"barberId" validate:"required"`
	Service     ServiceType    `json:"service" validate:"required"`
	Date        string         `json:"date" validate:"required,datetime=2006-01-02"`
	Time        slots.TimeSlot `json:"time" validate:"required"`
	ClientName  string         `json:"clientName" validate:"required"`
	ClientPhone string         `json:"clientPhone" validate:"required,min=6"`
}
