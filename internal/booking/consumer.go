// Package booking submits appointments and applies the optimistic slot
// consumption to the availability list already on screen. The consumed list
// is display-only; the authoritative list is whatever the next refetch
// projects.
package booking

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/api"
	"github.com/BruksfildServices01/barber-client/internal/clienterr"
	"github.com/BruksfildServices01/barber-client/internal/models"
	"github.com/BruksfildServices01/barber-client/internal/slots"
)

// SlotsConsumed is how many contiguous slots a service of the given duration
// occupies: ceil(duration / granularity).
func SlotsConsumed(durationMinutes int, granularity time.Duration) int {
	if durationMinutes <= 0 {
		return 0
	}
	step := int(granularity / time.Minute)
	if step <= 0 {
		step = int(slots.Granularity / time.Minute)
	}
	return (durationMinutes + step - 1) / step
}

// ConsumeAt removes n entries from list starting at the position of start.
// Removal is positional, by index and count, not by recomputed time values;
// if the list was re-sorted or refetched since the slot was chosen the wrong
// window can be cut. Kept as-is: the list is always consumed straight off
// the projector output. When start is not in the list nothing is removed.
func ConsumeAt(list []slots.TimeSlot, start slots.TimeSlot, n int) []slots.TimeSlot {
	idx := slots.Index(list, start)
	if idx == -1 || n <= 0 {
		return list
	}

	end := idx + n
	if end > len(list) {
		end = len(list)
	}

	out := make([]slots.TimeSlot, 0, len(list)-(end-idx))
	out = append(out, list[:idx]...)
	out = append(out, list[end:]...)
	return out
}

type Consumer struct {
	api      *api.Client
	validate *validator.Validate
	log      zerolog.Logger
}

func NewConsumer(c *api.Client, log zerolog.Logger) *Consumer {
	return &Consumer{
		api:      c,
		validate: validator.New(),
		log:      log,
	}
}

// Book validates and submits the appointment, then returns the availability
// list with the consumed window removed. On any error the list comes back
// unchanged.
func (c *Consumer) Book(ctx context.Context, appt models.Appointment, durationMinutes int, available []slots.TimeSlot) ([]slots.TimeSlot, error) {
	if err := c.validate.Struct(appt); err != nil {
		return available, clienterr.Wrap(clienterr.CodeValidationConflict, "invalid appointment", err)
	}

	if err := c.api.CreateAppointment(ctx, appt); err != nil {
		return available, err
	}

	n := SlotsConsumed(durationMinutes, slots.Granularity)
	consumed := ConsumeAt(available, appt.Time, n)

	c.log.Info().
		Uint("barber_id", appt.BarberID).
		Str("date", appt.Date).
		Str("time", string(appt.Time)).
		Int("slots_consumed", n).
		Msg("appointment booked")

	return consumed, nil
}
