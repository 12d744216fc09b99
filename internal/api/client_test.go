package api

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/clienterr"
	"github.com/BruksfildServices01/barber-client/internal/config"
	"github.com/BruksfildServices01/barber-client/internal/fakeapi"
	"github.com/BruksfildServices01/barber-client/internal/models"
	"github.com/BruksfildServices01/barber-client/internal/session"
	"github.com/BruksfildServices01/barber-client/internal/store"
)

func newTestClient(t *testing.T, srv *fakeapi.Server) (*Client, *session.Gate) {
	t.Helper()

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	logger := zerolog.Nop()
	st := store.NewMemory(logger)
	t.Cleanup(func() { st.Close() })

	gate, err := session.NewGate(context.Background(), st, logger)
	if err != nil {
		t.Fatalf("building gate: %v", err)
	}

	cfg := &config.Config{APIBaseURL: ts.URL + "/api", HTTPTimeout: 5 * time.Second}
	return New(cfg, gate, logger), gate
}

func TestExpiredGet_RefreshesOnceAndRetries(t *testing.T) {
	srv := fakeapi.New("test-secret")
	barberID := srv.SeedBarber("Ivo")

	client, gate := newTestClient(t, srv)

	stale := srv.IssueToken(barberID)
	err := gate.Login(context.Background(), models.Session{
		Token:        stale,
		RefreshToken: srv.IssueRefreshToken(barberID),
		BarberID:     barberID,
	})
	if err != nil {
		t.Fatalf("seeding session: %v", err)
	}
	srv.RevokeToken(stale)

	barber, err := client.GetBarber(context.Background(), barberID)
	if err != nil {
		t.Fatalf("expected refresh-and-retry to succeed, got %v", err)
	}
	if barber.ID != barberID {
		t.Errorf("wrong barber returned: %d", barber.ID)
	}

	if n := srv.Requests("POST /api/refresh"); n != 1 {
		t.Errorf("expected exactly 1 refresh call, got %d", n)
	}
	if n := srv.Requests("GET /api/barbers/:id"); n != 2 {
		t.Errorf("expected original + one retry = 2 GETs, got %d", n)
	}
	if gate.Token() == stale {
		t.Error("gate still holds the revoked token")
	}
}

func TestExpiredGet_FailedRefreshSurfacesAuthExpired(t *testing.T) {
	srv := fakeapi.New("test-secret")
	barberID := srv.SeedBarber("Ivo")

	client, gate := newTestClient(t, srv)

	stale := srv.IssueToken(barberID)
	err := gate.Login(context.Background(), models.Session{
		Token:        stale,
		RefreshToken: "bogus-refresh-token",
		BarberID:     barberID,
	})
	if err != nil {
		t.Fatalf("seeding session: %v", err)
	}
	srv.RevokeToken(stale)

	_, err = client.GetBarber(context.Background(), barberID)
	if !clienterr.IsAuthExpired(err) {
		t.Fatalf("expected auth_expired, got %v", err)
	}

	if n := srv.Requests("POST /api/refresh"); n != 1 {
		t.Errorf("expected exactly 1 refresh attempt, got %d", n)
	}
	if n := srv.Requests("GET /api/barbers/:id"); n != 1 {
		t.Errorf("GET must not be retried after a failed refresh, got %d", n)
	}
}

func TestExpiredWrite_IsNotRetried(t *testing.T) {
	srv := fakeapi.New("test-secret")
	barberID := srv.SeedBarber("Ivo")

	client, gate := newTestClient(t, srv)

	stale := srv.IssueToken(barberID)
	err := gate.Login(context.Background(), models.Session{
		Token:        stale,
		RefreshToken: srv.IssueRefreshToken(barberID),
		BarberID:     barberID,
	})
	if err != nil {
		t.Fatalf("seeding session: %v", err)
	}
	srv.RevokeToken(stale)

	err = client.UpdateBarber(context.Background(), barberID, models.BarberUpdate{Name: "New Name"})
	if !clienterr.IsAuthExpired(err) {
		t.Fatalf("expected auth_expired on a write, got %v", err)
	}

	if n := srv.Requests("POST /api/refresh"); n != 0 {
		t.Errorf("writes must not trigger refresh, got %d refresh calls", n)
	}
	if n := srv.Requests("PUT /api/barbers/:id"); n != 1 {
		t.Errorf("write must be attempted exactly once, got %d", n)
	}
}

func TestNotFoundMapsToTaxonomy(t *testing.T) {
	srv := fakeapi.New("test-secret")
	barberID := srv.SeedBarber("Ivo")

	client, gate := newTestClient(t, srv)
	err := gate.Login(context.Background(), models.Session{
		Token:    srv.IssueToken(barberID),
		BarberID: barberID,
	})
	if err != nil {
		t.Fatalf("seeding session: %v", err)
	}

	_, err = client.GetBarber(context.Background(), 9999)
	if !clienterr.IsNotFound(err) {
		t.Fatalf("expected not_found for a stale id, got %v", err)
	}
}

func TestTransportFailureMapsToNetworkFailure(t *testing.T) {
	logger := zerolog.Nop()
	st := store.NewMemory(logger)
	t.Cleanup(func() { st.Close() })

	gate, err := session.NewGate(context.Background(), st, logger)
	if err != nil {
		t.Fatalf("building gate: %v", err)
	}

	// nothing listens here
	cfg := &config.Config{APIBaseURL: "http://127.0.0.1:1/api", HTTPTimeout: time.Second}
	client := New(cfg, gate, logger)

	_, err = client.ListBarbers(context.Background())
	if !clienterr.IsNetworkFailure(err) {
		t.Fatalf("expected network_failure, got %v", err)
	}
}

func TestAuthenticate_StoresSession(t *testing.T) {
	srv := fakeapi.New("test-secret")
	client, gate := newTestClient(t, srv)

	err := client.Register(context.Background(), RegisterRequest{
		FirstName: "Ivo",
		LastName:  "Barber",
		Email:     "ivo@example.com",
		Password:  "secret1",
		Role:      models.RoleBarber,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	sess, err := client.LoginAndStore(context.Background(), "ivo@example.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if sess.Token == "" || sess.BarberID == 0 {
		t.Fatalf("incomplete session: %+v", sess)
	}
	if !gate.LoggedIn() {
		t.Error("gate should report logged in")
	}
	if exp := gate.ExpiresAt(); exp.IsZero() || !exp.After(time.Now()) {
		t.Errorf("token expiry not readable: %v", exp)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	srv := fakeapi.New("test-secret")
	client, _ := newTestClient(t, srv)

	err := client.Register(context.Background(), RegisterRequest{
		FirstName: "Ivo",
		LastName:  "Barber",
		Email:     "ivo@example.com",
		Password:  "secret1",
		Role:      models.RoleBarber,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err = client.Authenticate(context.Background(), "ivo@example.com", "wrong")
	if !clienterr.IsAuthExpired(err) {
		t.Fatalf("expected credentials rejection, got %v", err)
	}
}
