package api

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

func (c *Client) CreateAppointment(ctx context.Context, appt models.Appointment) error {
	return c.do(ctx, http.MethodPost, "/appointments", appt, nil, false)
}
