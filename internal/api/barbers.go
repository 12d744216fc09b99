package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

func (c *Client) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	var out []models.Barber
	if err := c.do(ctx, http.MethodGet, "/barbers", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	var out models.Barber
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/barbers/%d", id), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBarber(ctx context.Context, id uint, upd models.BarberUpdate) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/barbers/%d", id), upd, nil, true)
}
