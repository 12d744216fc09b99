package cli

import (
	"fmt"
	"time"

	sched "github.com/BruksfildServices01/barber-client/internal/schedule"
)

type ScheduleShowCmd struct {
	Barber uint   `help:"Barber id (defaults to the logged-in barber)."`
	Date   string `help:"Only entries on this date (YYYY-MM-DD)."`
}

func (cmd *ScheduleShowCmd) Run(c *Context) error {
	barberID, err := c.barberID(cmd.Barber)
	if err != nil {
		return err
	}

	ctx, cancel := c.ctx()
	defer cancel()

	entries, err := c.API.ListWorkingSchedules(ctx, barberID)
	if err != nil {
		return err
	}

	printTitle("Working schedule")
	for _, e := range entries {
		if cmd.Date != "" && e.Date != cmd.Date {
			continue
		}
		if len(e.TimeSlots) == 0 {
			continue
		}
		fmt.Printf("  #%d %s  %s – %s (%d slots)\n",
			e.ID, e.Date, e.TimeSlots[0], e.TimeSlots[len(e.TimeSlots)-1], len(e.TimeSlots))
	}
	return nil
}

// ScheduleSelectCmd is the calendar drag: a date plus a [from, to) range.
// Selecting an existing block removes it; anything else declares a new one.
type ScheduleSelectCmd struct {
	Date   string `arg:"" help:"Calendar day (YYYY-MM-DD)."`
	From   string `arg:"" help:"Range start (HH:MM)."`
	To     string `arg:"" help:"Range end (HH:MM, exclusive)."`
	Barber uint   `help:"Barber id (defaults to the logged-in barber)."`
}

func (cmd *ScheduleSelectCmd) Run(c *Context) error {
	barberID, err := c.barberID(cmd.Barber)
	if err != nil {
		return err
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", cmd.Date+" "+cmd.From, time.Local)
	if err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	end, err := time.ParseInLocation("2006-01-02 15:04", cmd.Date+" "+cmd.To, time.Local)
	if err != nil {
		return fmt.Errorf("invalid end: %w", err)
	}

	ctx, cancel := c.ctx()
	defer cancel()

	outcome, err := c.Reconciler.Reconcile(ctx, barberID, start, end)
	if err != nil {
		return err
	}

	switch outcome.Action {
	case sched.ActionDeleted:
		fmt.Printf("removed schedule entry #%d (%s)\n", outcome.Entry.ID, outcome.Entry.Date)
	case sched.ActionCreated:
		fmt.Printf("declared schedule entry #%d (%s, %d slots)\n",
			outcome.Entry.ID, outcome.Entry.Date, len(outcome.Entry.TimeSlots))
	}
	return nil
}
