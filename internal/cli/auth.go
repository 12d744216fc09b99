package cli

import (
	"fmt"

	"github.com/BruksfildServices01/barber-client/internal/api"
	"github.com/BruksfildServices01/barber-client/internal/clienterr"
	"github.com/BruksfildServices01/barber-client/internal/validators"
)

type LoginCmd struct {
	Email    string `arg:"" help:"Account email."`
	Password string `arg:"" help:"Account password."`
}

func (cmd *LoginCmd) Run(c *Context) error {
	ctx, cancel := c.ctx()
	defer cancel()

	sess, err := c.API.LoginAndStore(ctx, validators.NormalizeEmail(cmd.Email), cmd.Password)
	if err != nil {
		return err
	}

	fmt.Printf("logged in as barber %d (%s)\n", sess.BarberID, sess.Role)
	return nil
}

type LogoutCmd struct{}

func (cmd *LogoutCmd) Run(c *Context) error {
	ctx, cancel := c.ctx()
	defer cancel()

	if err := c.Gate.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

type RegisterCmd struct {
	FirstName string `arg:"" help:"First name."`
	LastName  string `arg:"" help:"Last name."`
	Email     string `arg:"" help:"Email address."`
	Password  string `arg:"" help:"Password (min 6 chars)."`
	Role      string `help:"Account role." enum:"ADMIN,BARBER" default:"BARBER"`
}

func (cmd *RegisterCmd) Run(c *Context) error {
	email := validators.NormalizeEmail(cmd.Email)
	if !validators.IsEmailDomainValid(email) {
		return clienterr.New(clienterr.CodeValidationConflict, "email domain does not resolve")
	}

	ctx, cancel := c.ctx()
	defer cancel()

	err := c.API.Register(ctx, api.RegisterRequest{
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Email:     email,
		Password:  cmd.Password,
		Role:      cmd.Role,
	})
	if err != nil {
		return err
	}

	fmt.Println("registered; log in to continue")
	return nil
}

type WhoamiCmd struct{}

func (cmd *WhoamiCmd) Run(c *Context) error {
	sess := c.Gate.Current()
	if sess == nil {
		fmt.Println("not logged in")
		return nil
	}

	fmt.Printf("barber %d role=%s\n", sess.BarberID, sess.Role)
	if exp := c.Gate.ExpiresAt(); !exp.IsZero() {
		fmt.Println(faintStyle.Render("token expires " + exp.Format("2006-01-02 15:04:05")))
	}
	return nil
}
