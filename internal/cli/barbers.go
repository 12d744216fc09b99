package cli

import (
	"fmt"
	"strings"
)

type BarbersListCmd struct{}

func (cmd *BarbersListCmd) Run(c *Context) error {
	ctx, cancel := c.ctx()
	defer cancel()

	barbers, err := c.API.ListBarbers(ctx)
	if err != nil {
		return err
	}

	printTitle("Barbers")
	for _, b := range barbers {
		line := fmt.Sprintf("  #%d %s — %s (rating %.1f)", b.ID, b.Name, b.Location, b.Rating)
		if len(b.Specialties) > 0 {
			line += faintStyle.Render("  [" + strings.Join(b.Specialties, ", ") + "]")
		}
		fmt.Println(line)
	}
	return nil
}

type BarbersShowCmd struct {
	ID uint `arg:"" help:"Barber id."`
}

func (cmd *BarbersShowCmd) Run(c *Context) error {
	ctx, cancel := c.ctx()
	defer cancel()

	b, err := c.API.GetBarber(ctx, cmd.ID)
	if err != nil {
		return err
	}

	printTitle(b.Name)
	fmt.Println("  location:", b.Location)
	fmt.Println("  contact: ", b.ContactInformation)
	fmt.Printf("  rating:   %.1f\n", b.Rating)
	if b.Description != "" {
		fmt.Println("  " + faintStyle.Render(b.Description))
	}
	return nil
}
