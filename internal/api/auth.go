package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

type AuthResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	BarberID     uint   `json:"barberId"`
	Role         string `json:"role"`
}

func (c *Client) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var out AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/authenticate", body, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=ADMIN BARBER"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", req, nil, true)
}

func (c *Client) ChangePassword(ctx context.Context, barberID uint, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/user/%d/password", barberID), body, nil, true)
}

// LoginAndStore authenticates and persists the resulting session through the
// gate, defaulting the role when the server omits it.
func (c *Client) LoginAndStore(ctx context.Context, email, password string) (*models.Session, error) {
	res, err := c.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := models.Session{
		Token:        res.Token,
		RefreshToken: res.RefreshToken,
		BarberID:     res.BarberID,
		Role:         res.Role,
	}
	if err := c.gate.Login(ctx, sess); err != nil {
		return nil, err
	}
	return c.gate.Current(), nil
}
