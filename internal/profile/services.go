// Package profile covers the barber's own account surface: offered services,
// profile fields, and the password change.
package profile

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/api"
	"github.com/BruksfildServices01/barber-client/internal/clienterr"
	"github.com/BruksfildServices01/barber-client/internal/models"
)

type ServiceManager struct {
	api *api.Client
	log zerolog.Logger
}

func NewServiceManager(c *api.Client, log zerolog.Logger) *ServiceManager {
	return &ServiceManager{api: c, log: log}
}

// Add creates a new service offering. A type already present among existing
// is rejected here, before any network call; duplicate (barber, type) pairs
// are invalid.
func (m *ServiceManager) Add(ctx context.Context, barberID uint, t models.ServiceType, durationMinutes int, existing []models.Service) (*models.Service, error) {
	if !t.Valid() {
		return nil, clienterr.New(clienterr.CodeValidationConflict, fmt.Sprintf("unknown service type %q", t))
	}
	if !models.ValidDuration(durationMinutes) {
		return nil, clienterr.New(clienterr.CodeValidationConflict, fmt.Sprintf("duration %d is not selectable", durationMinutes))
	}
	for _, svc := range existing {
		if svc.Service == t {
			return nil, clienterr.New(clienterr.CodeValidationConflict, "this service already exists")
		}
	}

	created, err := m.api.CreateService(ctx, barberID, t, durationMinutes)
	if err != nil {
		return nil, err
	}

	m.log.Info().Uint("service_id", created.ID).Str("type", string(t)).Msg("service added")
	return created, nil
}

func (m *ServiceManager) UpdateDuration(ctx context.Context, barberID uint, svc models.Service, durationMinutes int) (*models.Service, error) {
	if !models.ValidDuration(durationMinutes) {
		return nil, clienterr.New(clienterr.CodeValidationConflict, fmt.Sprintf("duration %d is not selectable", durationMinutes))
	}
	return m.api.UpdateService(ctx, barberID, svc.ID, svc.Service, durationMinutes)
}

func (m *ServiceManager) Remove(ctx context.Context, barberID, serviceID uint) error {
	if err := m.api.DeleteService(ctx, barberID, serviceID); err != nil {
		return err
	}
	m.log.Info().Uint("service_id", serviceID).Msg("service removed")
	return nil
}
