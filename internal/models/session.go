package models

const (
	RoleAdmin  = "ADMIN"
	RoleBarber = "BARBER"
)

// Session is the authenticated state held across interactions. Lifecycle is
// bound to login/logout/refresh; cleared on logout.
type Session struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
	BarberID     uint   `json:"barberId"`
	Role         string `json:"role,omitempty"`
}
