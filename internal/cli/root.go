package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/api"
	"github.com/BruksfildServices01/barber-client/internal/availability"
	"github.com/BruksfildServices01/barber-client/internal/booking"
	"github.com/BruksfildServices01/barber-client/internal/clienterr"
	"github.com/BruksfildServices01/barber-client/internal/profile"
	sched "github.com/BruksfildServices01/barber-client/internal/schedule"
	"github.com/BruksfildServices01/barber-client/internal/session"
	"github.com/BruksfildServices01/barber-client/internal/slots"
)

// Context carries the wired client into every command's Run.
type Context struct {
	API        *api.Client
	Gate       *session.Gate
	Projector  *availability.Projector
	Reconciler *sched.Reconciler
	Consumer   *booking.Consumer
	Services   *profile.ServiceManager
	Account    *profile.AccountManager
	Log        zerolog.Logger

	Timeout time.Duration
}

func (c *Context) ctx() (context.Context, context.CancelFunc) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// barberID returns the explicit flag value, or the logged-in barber.
func (c *Context) barberID(flag uint) (uint, error) {
	if flag != 0 {
		return flag, nil
	}
	if !c.Gate.LoggedIn() {
		return 0, clienterr.New(clienterr.CodeAuthExpired, "not logged in, pass --barber or run login")
	}
	return c.Gate.BarberID(), nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	slotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func printTitle(s string) {
	fmt.Println(titleStyle.Render(s))
}

func printSlots(list []slots.TimeSlot) {
	if len(list) == 0 {
		fmt.Println(faintStyle.Render("no open slots"))
		return
	}
	for _, s := range list {
		fmt.Println("  " + slotStyle.Render(string(s)))
	}
}
