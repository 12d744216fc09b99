package profile

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/api"
	"github.com/BruksfildServices01/barber-client/internal/clienterr"
	"github.com/BruksfildServices01/barber-client/internal/config"
	"github.com/BruksfildServices01/barber-client/internal/fakeapi"
	"github.com/BruksfildServices01/barber-client/internal/models"
	"github.com/BruksfildServices01/barber-client/internal/session"
	"github.com/BruksfildServices01/barber-client/internal/store"
)

func newTestManagers(t *testing.T, srv *fakeapi.Server, barberID uint) (*ServiceManager, *AccountManager, *api.Client) {
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
	err = gate.Login(context.Background(), models.Session{
		Token:    srv.IssueToken(barberID),
		BarberID: barberID,
	})
	if err != nil {
		t.Fatalf("seeding session: %v", err)
	}

	cfg := &config.Config{APIBaseURL: ts.URL + "/api", HTTPTimeout: 5 * time.Second}
	client := api.New(cfg, gate, logger)
	return NewServiceManager(client, logger), NewAccountManager(client, logger), client
}

func TestAdd_DuplicateTypeRejectedLocally(t *testing.T) {
	srv := fakeapi.New("test-secret")
	barberID := srv.SeedBarber("Ivo")
	srv.SeedService(barberID, models.Haircut, 30)

	mgr, _, client := newTestManagers(t, srv, barberID)

	existing, err := client.ListServices(context.Background(), barberID)
	if err != nil {
		t.Fatalf("listing services: %v", err)
	}

	_, err = mgr.Add(context.Background(), barberID, models.Haircut, 45, existing)
	if !clienterr.IsValidationConflict(err) {
		t.Fatalf("expected validation_conflict, got %v", err)
	}

	if n := srv.Requests("POST /api/barbers/:id/barberservs"); n != 0 {
		t.Errorf("duplicate add must not reach the server, saw %d creates", n)
	}
}

func TestAdd_NewTypeCreated(t *testing.T) {
	srv := fakeapi.New("test-secret")
	barberID := srv.SeedBarber("Ivo")
	srv.SeedService(barberID, models.Haircut, 30)

	mgr, _, client := newTestManagers(t, srv, barberID)

	existing, err := client.ListServices(context.Background(), barberID)
	if err != nil {
		t.Fatalf("listing services: %v", err)
	}

	svc, err := mgr.Add(context.Background(), barberID, models.Beard, 45, existing)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if svc.ID == 0 {
		t.Error("created service must carry the server id")
	}
	if svc.Service != models.Beard || svc.DefaultDurationInMinutes != 45 {
		t.Errorf("unexpected service: %+v", svc)
	}
}

func TestAdd_InvalidTypeAndDuration(t *testing.T) {
	srv := fakeapi.New("test-secret")
	barberID := srv.SeedBarber("Ivo")

	mgr, _, _ := newTestManagers(t, srv, barberID)

	if _, err := mgr.Add(context.Background(), barberID, "MANICURE", 30, nil); !clienterr.IsValidationConflict(err) {
		t.Errorf("unknown type must be rejected, got %v", err)
	}
	if _, err := mgr.Add(context.Background(), barberID, models.Haircut, 37, nil); !clienterr.IsValidationConflict(err) {
		t.Errorf("off-menu duration must be rejected, got %v", err)
	}
}

func TestUpdateDuration(t *testing.T) {
	srv := fakeapi.New("test-secret")
	barberID := srv.SeedBarber("Ivo")
	serviceID := srv.SeedService(barberID, models.Haircut, 30)

	mgr, _, client := newTestManagers(t, srv, barberID)

	updated, err := mgr.UpdateDuration(context.Background(), barberID, models.Service{
		ID:      serviceID,
		Service: models.Haircut,
	}, 60)
	if err != nil {
		t.Fatalf("UpdateDuration failed: %v", err)
	}
	if updated.DefaultDurationInMinutes != 60 {
		t.Errorf("expected 60 min, got %d", updated.DefaultDurationInMinutes)
	}

	services, err := client.ListServices(context.Background(), barberID)
	if err != nil {
		t.Fatalf("listing services: %v", err)
	}
	if len(services) != 1 || services[0].DefaultDurationInMinutes != 60 {
		t.Errorf("server state not updated: %+v", services)
	}
}

func TestRemove(t *testing.T) {
	srv := fakeapi.New("test-secret")
	barberID := srv.SeedBarber("Ivo")
	serviceID := srv.SeedService(barberID, models.Haircut, 30)

	mgr, _, client := newTestManagers(t, srv, barberID)

	if err := mgr.Remove(context.Background(), barberID, serviceID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	services, err := client.ListServices(context.Background(), barberID)
	if err != nil {
		t.Fatalf("listing services: %v", err)
	}
	if len(services) != 0 {
		t.Errorf("service still present: %+v", services)
	}
}

func TestChangePassword_MismatchRejectedLocally(t *testing.T) {
	srv := fakeapi.New("test-secret")
	barberID := srv.SeedBarber("Ivo")

	_, acct, _ := newTestManagers(t, srv, barberID)

	err := acct.ChangePassword(context.Background(), barberID, "old", "new-password", "different")
	if !clienterr.IsValidationConflict(err) {
		t.Fatalf("expected validation_conflict, got %v", err)
	}

	if n := srv.Requests("PUT /api/user/:id/password"); n != 0 {
		t.Errorf("mismatched confirmation must not reach the server, saw %d calls", n)
	}
}

func TestServiceTypeDisplay(t *testing.T) {
	if got := models.HaircutAndBeard.Display(); got != "Haircut And Beard" {
		t.Errorf("expected %q, got %q", "Haircut And Beard", got)
	}
	if got := models.Haircut.Display(); got != "Haircut" {
		t.Errorf("expected %q, got %q", "Haircut", got)
	}
}
