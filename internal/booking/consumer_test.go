package booking

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/api"
	"github.com/BruksfildServices01/barber-client/internal/config"
	"github.com/BruksfildServices01/barber-client/internal/fakeapi"
	"github.com/BruksfildServices01/barber-client/internal/models"
	"github.com/BruksfildServices01/barber-client/internal/session"
	"github.com/BruksfildServices01/barber-client/internal/slots"
	"github.com/BruksfildServices01/barber-client/internal/store"
)

func TestSlotsConsumed(t *testing.T) {
	cases := []struct {
		duration int
		want     int
	}{
		{15, 1},
		{30, 1},
		{45, 2},
		{60, 2},
		{75, 3},
		{190, 7},
		{0, 0},
	}

	for _, c := range cases {
		if got := SlotsConsumed(c.duration, 30*time.Minute); got != c.want {
			t.Errorf("SlotsConsumed(%d) = %d, expected %d", c.duration, got, c.want)
		}
	}
}

func TestConsumeAt_PositionalWindow(t *testing.T) {
	list := []slots.TimeSlot{"09:00", "09:30", "10:00", "10:30"}

	got := ConsumeAt(list, "09:30", 3)

	if len(got) != 1 || got[0] != "09:00" {
		t.Fatalf("expected [09:00], got %v", got)
	}
}

func TestConsumeAt_ClampsPastEnd(t *testing.T) {
	list := []slots.TimeSlot{"09:00", "09:30"}

	got := ConsumeAt(list, "09:30", 4)

	if len(got) != 1 || got[0] != "09:00" {
		t.Fatalf("expected [09:00], got %v", got)
	}
}

func TestConsumeAt_MissingStartIsNoop(t *testing.T) {
	list := []slots.TimeSlot{"09:00", "09:30"}

	got := ConsumeAt(list, "14:00", 2)

	if len(got) != 2 {
		t.Fatalf("missing start slot must leave the list unchanged, got %v", got)
	}
}

func newTestConsumer(t *testing.T, srv *fakeapi.Server) *Consumer {
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
	return NewConsumer(api.New(cfg, gate, logger), logger)
}

func TestBook_ConsumesSlotsOptimistically(t *testing.T) {
	srv := fakeapi.New("test-secret")
	barberID := srv.SeedBarber("Ivo")
	srv.SeedService(barberID, models.Haircut, 75)
	srv.SeedSchedule(models.WorkingSchedule{
		BarberID:  barberID,
		Date:      "2026-09-14",
		TimeSlots: []slots.TimeSlot{"09:00", "09:30", "10:00", "10:30"},
	})

	consumer := newTestConsumer(t, srv)
	available := []slots.TimeSlot{"09:00", "09:30", "10:00", "10:30"}

	remaining, err := consumer.Book(context.Background(), models.Appointment{
		BarberID:    barberID,
		Service:     models.Haircut,
		Date:        "2026-09-14",
		Time:        "09:30",
		ClientName:  "Ana",
		ClientPhone: "555-0101",
	}, 75, available)
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	if len(remaining) != 1 || remaining[0] != "09:00" {
		t.Fatalf("expected [09:00] after consuming 3 slots from index 1, got %v", remaining)
	}
}

func TestBook_InvalidRequestNeverHitsNetwork(t *testing.T) {
	srv := fakeapi.New("test-secret")
	consumer := newTestConsumer(t, srv)

	available := []slots.TimeSlot{"09:00"}
	_, err := consumer.Book(context.Background(), models.Appointment{
		BarberID: 1,
		Service:  models.Haircut,
		Date:     "2026-09-14",
		Time:     "09:00",
		// client name and phone missing
	}, 30, available)
	if err == nil {
		t.Fatal("expected validation error")
	}

	if n := srv.Requests("POST /api/appointments"); n != 0 {
		t.Errorf("invalid appointment reached the server %d times", n)
	}
}

func TestBook_ServerRejectionLeavesListUnchanged(t *testing.T) {
	srv := fakeapi.New("test-secret")
	barberID := srv.SeedBarber("Ivo")
	// no schedule seeded: the fake answers 409

	consumer := newTestConsumer(t, srv)
	available := []slots.TimeSlot{"09:00", "09:30"}

	remaining, err := consumer.Book(context.Background(), models.Appointment{
		BarberID:    barberID,
		Service:     models.Haircut,
		Date:        "2026-09-14",
		Time:        "09:00",
		ClientName:  "Ana",
		ClientPhone: "555-0101",
	}, 30, available)
	if err == nil {
		t.Fatal("expected booking rejection")
	}

	if len(remaining) != 2 {
		t.Errorf("failed booking must not consume slots, got %v", remaining)
	}
}
