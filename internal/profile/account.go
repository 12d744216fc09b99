package profile

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/api"
	"github.com/BruksfildServices01/barber-client/internal/clienterr"
	"github.com/BruksfildServices01/barber-client/internal/models"
)

type AccountManager struct {
	api *api.Client
	log zerolog.Logger
}

func NewAccountManager(c *api.Client, log zerolog.Logger) *AccountManager {
	return &AccountManager{api: c, log: log}
}

func (m *AccountManager) Get(ctx context.Context, barberID uint) (*models.Barber, error) {
	return m.api.GetBarber(ctx, barberID)
}

func (m *AccountManager) Update(ctx context.Context, barberID uint, upd models.BarberUpdate) error {
	if err := m.api.UpdateBarber(ctx, barberID, upd); err != nil {
		return err
	}
	m.log.Info().Uint("barber_id", barberID).Msg("profile updated")
	return nil
}

// ChangePassword checks the confirmation locally before touching the
// network, then issues the password update.
func (m *AccountManager) ChangePassword(ctx context.Context, barberID uint, current, next, confirm string) error {
	if next != confirm {
		return clienterr.New(clienterr.CodeValidationConflict, "new password and confirmation do not match")
	}
	if err := m.api.ChangePassword(ctx, barberID, current, next); err != nil {
		return err
	}
	m.log.Info().Uint("barber_id", barberID).Msg("password updated")
	return nil
}
