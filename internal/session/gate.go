// Package session holds the authenticated state the API client consults for
// attaching credentials. The gate is an explicit, injectable object; nothing
// here is package-global.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/models"
	"github.com/BruksfildServices01/barber-client/internal/store"
)

type Gate struct {
	store store.Store
	log   zerolog.Logger

	mu  sync.RWMutex
	cur *models.Session
}

// NewGate loads any persisted session and then follows store change events,
// so a login or logout done by another process is picked up here too.
func NewGate(ctx context.Context, st store.Store, log zerolog.Logger) (*Gate, error) {
	g := &Gate{store: st, log: log}

	sess, err := st.Load(ctx)
	if err != nil {
		return nil, err
	}
	g.cur = sess

	go g.follow(st.Subscribe())
	return g, nil
}

func (g *Gate) follow(ch <-chan store.Change) {
	for ev := range ch {
		g.mu.Lock()
		g.cur = ev.Session
		g.mu.Unlock()
	}
}

func (g *Gate) Login(ctx context.Context, sess models.Session) error {
	if sess.Role == "" {
		sess.Role = models.RoleBarber
	}

	g.mu.Lock()
	cp := sess
	g.cur = &cp
	g.mu.Unlock()

	return g.store.Save(ctx, sess)
}

func (g *Gate) Logout(ctx context.Context) error {
	g.mu.Lock()
	g.cur = nil
	g.mu.Unlock()

	return g.store.Clear(ctx)
}

// UpdateToken replaces the bearer token after a successful refresh, keeping
// the rest of the session intact.
func (g *Gate) UpdateToken(ctx context.Context, token string) error {
	g.mu.Lock()
	if g.cur == nil {
		g.mu.Unlock()
		return nil
	}
	g.cur.Token = token
	sess := *g.cur
	g.mu.Unlock()

	return g.store.Save(ctx, sess)
}

func (g *Gate) Current() *models.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.cur == nil {
		return nil
	}
	cp := *g.cur
	return &cp
}

func (g *Gate) LoggedIn() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cur != nil && g.cur.Token != ""
}

func (g *Gate) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.cur == nil {
		return ""
	}
	return g.cur.Token
}

func (g *Gate) RefreshToken() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.cur == nil {
		return ""
	}
	return g.cur.RefreshToken
}

func (g *Gate) BarberID() uint {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.cur == nil {
		return 0
	}
	return g.cur.BarberID
}

func (g *Gate) Role() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.cur == nil {
		return ""
	}
	return g.cur.Role
}

// ExpiresAt decodes the exp claim of the held token without verifying the
// signature; the server remains the authority. Zero time when there is no
// token or no exp claim. The gate never refreshes preemptively off this.
func (g *Gate) ExpiresAt() time.Time {
	token := g.Token()
	if token == "" {
		return time.Time{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
