package cli

import (
	"fmt"

	"github.com/BruksfildServices01/barber-client/internal/models"
	"github.com/BruksfildServices01/barber-client/internal/slots"
)

type SlotsCmd struct {
	Barber uint   `arg:"" help:"Barber id."`
	Date   string `arg:"" help:"Date (YYYY-MM-DD)."`
}

func (cmd *SlotsCmd) Run(c *Context) error {
	ctx, cancel := c.ctx()
	defer cancel()

	available, err := c.Projector.Fetch(ctx, cmd.Barber, cmd.Date)
	if err != nil {
		return err
	}

	printTitle("Open slots " + cmd.Date)
	printSlots(available)
	return nil
}

type BookCmd struct {
	Barber  uint   `arg:"" help:"Barber id."`
	Service string `arg:"" help:"Service type (e.g. HAIRCUT)."`
	Date    string `arg:"" help:"Date (YYYY-MM-DD)."`
	Time    string `arg:"" help:"Start slot (HH:MM)."`
	Name    string `required:"" help:"Client name."`
	Phone   string `required:"" help:"Client phone."`
}

func (cmd *BookCmd) Run(c *Context) error {
	start, err := slots.Parse(cmd.Time)
	if err != nil {
		return err
	}

	ctx, cancel := c.ctx()
	defer cancel()

	services, err := c.API.ListServices(ctx, cmd.Barber)
	if err != nil {
		return err
	}

	duration := 0
	for _, svc := range services {
		if svc.Service == models.ServiceType(cmd.Service) {
			duration = svc.DefaultDurationInMinutes
			break
		}
	}
	if duration == 0 {
		return fmt.Errorf("barber %d does not offer %s", cmd.Barber, cmd.Service)
	}

	available, err := c.Projector.Fetch(ctx, cmd.Barber, cmd.Date)
	if err != nil {
		return err
	}

	remaining, err := c.Consumer.Book(ctx, models.Appointment{
		BarberID:    cmd.Barber,
		Service:     models.ServiceType(cmd.Service),
		Date:        cmd.Date,
		Time:        start,
		ClientName:  cmd.Name,
		ClientPhone: cmd.Phone,
	}, duration, available)
	if err != nil {
		return err
	}

	fmt.Printf("booked %s at %s\n", models.ServiceType(cmd.Service).Display(), cmd.Time)
	printTitle("Remaining slots")
	printSlots(remaining)
	return nil
}
