// Package schedule turns a calendar drag selection into a create or delete
// against the barber's working schedule. Each drag is one atomic
// decide-and-request cycle; there is no retry loop and no coalescing of
// overlapping drags.
package schedule

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/api"
	"github.com/BruksfildServices01/barber-client/internal/clienterr"
	"github.com/BruksfildServices01/barber-client/internal/models"
	"github.com/BruksfildServices01/barber-client/internal/slots"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionDeleted Action = "deleted"
)

// Outcome reports what a reconciliation did. Entry carries the
// server-confirmed entry on create, and the removed entry on delete.
type Outcome struct {
	Action Action
	Entry  models.WorkingSchedule
}

type Reconciler struct {
	api *api.Client
	log zerolog.Logger
}

func NewReconciler(c *api.Client, log zerolog.Logger) *Reconciler {
	return &Reconciler{api: c, log: log}
}

// Reconcile expands [start, end) into slots, looks for an existing entry on
// the same date with exactly that slot set, and deletes it when found or
// creates a new entry otherwise. A failed request leaves remote and local
// state untouched.
//
// Only exact set equality counts as a match: a drag that partially overlaps
// an entry falls through to the create branch and can produce overlapping
// entries. The service owns that; entries are never merged or split here.
func (r *Reconciler) Reconcile(ctx context.Context, barberID uint, start, end time.Time) (*Outcome, error) {
	selected := slots.ExpandRange(start, end, slots.Granularity)
	if len(selected) == 0 {
		return nil, clienterr.New(clienterr.CodeValidationConflict, "empty_selection")
	}

	date := start.Format("2006-01-02")

	entries, err := r.api.ListWorkingSchedules(ctx, barberID)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.Date != date {
			continue
		}
		if !slots.SetEquals(entry.TimeSlots, selected) {
			continue
		}

		if err := r.api.DeleteWorkingSchedule(ctx, barberID, entry.ID); err != nil {
			r.log.Error().Err(err).Uint("schedule_id", entry.ID).Msg("schedule delete failed")
			return nil, err
		}

		r.log.Info().Uint("schedule_id", entry.ID).Str("date", date).Msg("schedule entry deleted")
		return &Outcome{Action: ActionDeleted, Entry: entry}, nil
	}

	created, err := r.api.CreateWorkingSchedule(ctx, models.WorkingSchedule{
		BarberID:  barberID,
		Date:      date,
		TimeSlots: selected,
	})
	if err != nil {
		r.log.Error().Err(err).Str("date", date).Msg("schedule create failed")
		return nil, err
	}

	r.log.Info().Uint("schedule_id", created.ID).Str("date", date).Int("slots", len(selected)).Msg("schedule entry created")
	return &Outcome{Action: ActionCreated, Entry: *created}, nil
}
