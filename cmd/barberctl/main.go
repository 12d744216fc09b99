package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/api"
	"github.com/BruksfildServices01/barber-client/internal/availability"
	"github.com/BruksfildServices01/barber-client/internal/booking"
	"github.com/BruksfildServices01/barber-client/internal/cli"
	"github.com/BruksfildServices01/barber-client/internal/config"
	"github.com/BruksfildServices01/barber-client/internal/profile"
	"github.com/BruksfildServices01/barber-client/internal/schedule"
	"github.com/BruksfildServices01/barber-client/internal/session"
	"github.com/BruksfildServices01/barber-client/internal/store"
)

var CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Login    cli.LoginCmd    `cmd:"" help:"Log in and persist the session."`
	Logout   cli.LogoutCmd   `cmd:"" help:"Clear the stored session."`
	Register cli.RegisterCmd `cmd:"" help:"Register a new barber account."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show the current session."`

	Barbers struct {
		List cli.BarbersListCmd `cmd:"" help:"List all barbers." default:"1"`
		Show cli.BarbersShowCmd `cmd:"" help:"Show one barber's details."`
	} `cmd:"" help:"Browse the barber directory."`

	Services struct {
		List   cli.ServicesListCmd   `cmd:"" help:"List a barber's services." default:"1"`
		Add    cli.ServicesAddCmd    `cmd:"" help:"Add a service offering."`
		Update cli.ServicesUpdateCmd `cmd:"" help:"Change a service's default duration."`
		Remove cli.ServicesRemoveCmd `cmd:"" help:"Remove a service offering."`
	} `cmd:"" help:"Manage offered services."`

	Schedule struct {
		Show   cli.ScheduleShowCmd   `cmd:"" help:"Show declared working-schedule entries." default:"1"`
		Select cli.ScheduleSelectCmd `cmd:"" help:"Select a time range: toggles the matching block."`
	} `cmd:"" help:"Edit the working schedule."`

	Slots   cli.SlotsCmd `cmd:"" help:"Show open slots for a barber and date."`
	Book    cli.BookCmd  `cmd:"" help:"Book an appointment."`
	Profile struct {
		Show   cli.ProfileShowCmd   `cmd:"" help:"Show the profile." default:"1"`
		Update cli.ProfileUpdateCmd `cmd:"" help:"Update profile fields."`
	} `cmd:"" help:"View and edit the barber profile."`
	Passwd cli.PasswdCmd `cmd:"" help:"Change the account password."`
}

func main() {
	_ = godotenv.Load()

	kctx := kong.Parse(&CLI,
		kong.Name("barberctl"),
		kong.Description("Client for the barbershop scheduling service."),
		kong.UsageOnError(),
	)

	level := zerolog.WarnLevel
	if CLI.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	cfg := config.Load()

	var st store.Store
	if cfg.RedisAddr != "" {
		st = store.NewRedis(cfg.RedisAddr, cfg.RedisDB, logger)
	} else {
		st = store.NewMemory(logger)
	}
	defer st.Close()

	gate, err := session.NewGate(context.Background(), st, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading session")
	}

	client := api.New(cfg, gate, logger)

	err = kctx.Run(&cli.Context{
		API:        client,
		Gate:       gate,
		Projector:  availability.NewProjector(client),
		Reconciler: schedule.NewReconciler(client, logger),
		Consumer:   booking.NewConsumer(client, logger),
		Services:   profile.NewServiceManager(client, logger),
		Account:    profile.NewAccountManager(client, logger),
		Log:        logger,
		Timeout:    cfg.HTTPTimeout,
	})
	kctx.FatalIfErrorf(err)
}
