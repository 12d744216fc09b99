package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

// ListWorkingSchedules fetches every schedule entry the barber has declared.
// The route is readable without credentials (booking consults it too); the
// bearer header rides along whenever a session is held.
func (c *Client) ListWorkingSchedules(ctx context.Context, barberID uint) ([]models.WorkingSchedule, error) {
	var out []models.WorkingSchedule
	path := fmt.Sprintf("/barbers/%d/workingschedules", barberID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateWorkingSchedule(ctx context.Context, entry models.WorkingSchedule) (*models.WorkingSchedule, error) {
	var out models.WorkingSchedule
	path := fmt.Sprintf("/barbers/%d/workingschedules", entry.BarberID)
	if err := c.do(ctx, http.MethodPost, path, entry, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWorkingSchedule(ctx context.Context, barberID, scheduleID uint) error {
	path := fmt.Sprintf("/barbers/%d/workingschedules/%d", barberID, scheduleID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}
