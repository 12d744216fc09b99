package cli

import (
	"fmt"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

type ProfileShowCmd struct {
	Barber uint `help:"Barber id (defaults to the logged-in barber)."`
}

func (cmd *ProfileShowCmd) Run(c *Context) error {
	barberID, err := c.barberID(cmd.Barber)
	if err != nil {
		return err
	}

	ctx, cancel := c.ctx()
	defer cancel()

	b, err := c.Account.Get(ctx, barberID)
	if err != nil {
		return err
	}

	printTitle(b.Name)
	fmt.Println("  location:", b.Location)
	fmt.Println("  contact: ", b.ContactInformation)
	return nil
}

type ProfileUpdateCmd struct {
	Name     string `help:"New display name."`
	Location string `help:"New location."`
	Contact  string `help:"New contact information."`
	Barber   uint   `help:"Barber id (defaults to the logged-in barber)."`
}

func (cmd *ProfileUpdateCmd) Run(c *Context) error {
	barberID, err := c.barberID(cmd.Barber)
	if err != nil {
		return err
	}

	ctx, cancel := c.ctx()
	defer cancel()

	err = c.Account.Update(ctx, barberID, models.BarberUpdate{
		Name:               cmd.Name,
		Location:           cmd.Location,
		ContactInformation: cmd.Contact,
	})
	if err != nil {
		return err
	}

	fmt.Println("profile updated")
	return nil
}

type PasswdCmd struct {
	Current string `arg:"" help:"Current password."`
	New     string `arg:"" help:"New password."`
	Confirm string `arg:"" help:"New password again."`
	Barber  uint   `help:"Barber id (defaults to the logged-in barber)."`
}

func (cmd *PasswdCmd) Run(c *Context) error {
	barberID, err := c.barberID(cmd.Barber)
	if err != nil {
		return err
	}

	ctx, cancel := c.ctx()
	defer cancel()

	if err := c.Account.ChangePassword(ctx, barberID, cmd.Current, cmd.New, cmd.Confirm); err != nil {
		return err
	}

	fmt.Println("password updated")
	return nil
}
