package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

type serviceBody struct {
	Service                  models.ServiceType `json:"service"`
	DefaultDurationInMinutes int                `json:"defaultDurationInMinutes"`
}

func (c *Client) ListServices(ctx context.Context, barberID uint) ([]models.Service, error) {
	var out []models.Service
	path := fmt.Sprintf("/barbers/%d/barberservs", barberID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateService(ctx context.Context, barberID uint, t models.ServiceType, durationMinutes int) (*models.Service, error) {
	var out models.Service
	path := fmt.Sprintf("/barbers/%d/barberservs", barberID)
	body := serviceBody{Service: t, DefaultDurationInMinutes: durationMinutes}
	if err := c.do(ctx, http.MethodPost, path, body, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, barberID, serviceID uint, t models.ServiceType, durationMinutes int) (*models.Service, error) {
	var out models.Service
	path := fmt.Sprintf("/barbers/%d/barberservs/%d", barberID, serviceID)
	body := serviceBody{Service: t, DefaultDurationInMinutes: durationMinutes}
	if err := c.do(ctx, http.MethodPut, path, body, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, barberID, serviceID uint) error {
	path := fmt.Sprintf("/barbers/%d/barberservs/%d", barberID, serviceID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}
