package cli

import (
	"fmt"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

type ServicesListCmd struct {
	Barber uint `help:"Barber id (defaults to the logged-in barber)."`
}

func (cmd *ServicesListCmd) Run(c *Context) error {
	barberID, err := c.barberID(cmd.Barber)
	if err != nil {
		return err
	}

	ctx, cancel := c.ctx()
	defer cancel()

	services, err := c.API.ListServices(ctx, barberID)
	if err != nil {
		return err
	}

	printTitle("Services")
	if len(services) == 0 {
		fmt.Println(faintStyle.Render("no services found"))
		return nil
	}
	for _, svc := range services {
		fmt.Printf("  #%d %s — %d min\n", svc.ID, svc.Service.Display(), svc.DefaultDurationInMinutes)
	}
	return nil
}

type ServicesAddCmd struct {
	Type     string `arg:"" help:"Service type (e.g. HAIRCUT, BEARD)."`
	Duration int    `help:"Default duration in minutes." default:"30"`
	Barber   uint   `help:"Barber id (defaults to the logged-in barber)."`
}

func (cmd *ServicesAddCmd) Run(c *Context) error {
	barberID, err := c.barberID(cmd.Barber)
	if err != nil {
		return err
	}

	ctx, cancel := c.ctx()
	defer cancel()

	existing, err := c.API.ListServices(ctx, barberID)
	if err != nil {
		return err
	}

	svc, err := c.Services.Add(ctx, barberID, models.ServiceType(cmd.Type), cmd.Duration, existing)
	if err != nil {
		return err
	}

	fmt.Printf("added #%d %s (%d min)\n", svc.ID, svc.Service.Display(), svc.DefaultDurationInMinutes)
	return nil
}

type ServicesUpdateCmd struct {
	ID       uint `arg:"" help:"Service id."`
	Duration int  `arg:"" help:"New default duration in minutes."`
	Barber   uint `help:"Barber id (defaults to the logged-in barber)."`
}

func (cmd *ServicesUpdateCmd) Run(c *Context) error {
	barberID, err := c.barberID(cmd.Barber)
	if err != nil {
		return err
	}

	ctx, cancel := c.ctx()
	defer cancel()

	services, err := c.API.ListServices(ctx, barberID)
	if err != nil {
		return err
	}

	for _, svc := range services {
		if svc.ID != cmd.ID {
			continue
		}
		updated, err := c.Services.UpdateDuration(ctx, barberID, svc, cmd.Duration)
		if err != nil {
			return err
		}
		fmt.Printf("updated #%d %s to %d min\n", updated.ID, updated.Service.Display(), updated.DefaultDurationInMinutes)
		return nil
	}

	return fmt.Errorf("service %d not found for barber %d", cmd.ID, barberID)
}

type ServicesRemoveCmd struct {
	ID     uint `arg:"" help:"Service id."`
	Barber uint `help:"Barber id (defaults to the logged-in barber)."`
}

func (cmd *ServicesRemoveCmd) Run(c *Context) error {
	barberID, err := c.barberID(cmd.Barber)
	if err != nil {
		return err
	}

	ctx, cancel := c.ctx()
	defer cancel()

	if err := c.Services.Remove(ctx, barberID, cmd.ID); err != nil {
		return err
	}
	fmt.Printf("removed service %d\n", cmd.ID)
	return nil
}
