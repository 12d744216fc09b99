// Package availability derives the bookable slot list for a barber and date
// from the working-schedule entries the service returns. The projector is a
// pure filter/flatten: it knows nothing about already-booked appointments,
// the server is expected to stop returning consumed slots.
package availability

import (
	"context"

	"github.com/BruksfildServices01/barber-client/internal/api"
	"github.com/BruksfildServices01/barber-client/internal/models"
	"github.com/BruksfildServices01/barber-client/internal/slots"
)

// Project flattens the slots of every entry whose date matches the target
// date exactly, deduplicated and ascending.
func Project(entries []models.WorkingSchedule, date string) []slots.TimeSlot {
	var flat []slots.TimeSlot
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		flat = append(flat, e.TimeSlots...)
	}
	return slots.Sorted(flat)
}

type Projector struct {
	api *api.Client
}

func NewProjector(c *api.Client) *Projector {
	return &Projector{api: c}
}

func (p *Projector) Fetch(ctx context.Context, barberID uint, date string) ([]slots.TimeSlot, error) {
	entries, err := p.api.ListWorkingSchedules(ctx, barberID)
	if err != nil {
		return nil, err
	}
	return Project(entries, date), nil
}
