package store

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

func waitChange(t *testing.T, ch <-chan Change) Change {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
		return Change{}
	}
}

func TestMemory_SaveLoadClear(t *testing.T) {
	st := NewMemory(zerolog.Nop())
	defer st.Close()

	ctx := context.Background()

	if sess, err := st.Load(ctx); err != nil || sess != nil {
		t.Fatalf("empty store should load nil, got %v, %v", sess, err)
	}

	want := models.Session{Token: "tok", BarberID: 7, Role: models.RoleBarber}
	if err := st.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sess, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sess == nil || sess.Token != "tok" || sess.BarberID != 7 {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if err := st.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if sess, _ := st.Load(ctx); sess != nil {
		t.Errorf("cleared store should load nil, got %+v", sess)
	}
}

func TestMemory_SubscribersSeeChanges(t *testing.T) {
	st := NewMemory(zerolog.Nop())
	defer st.Close()

	ch := st.Subscribe()
	ctx := context.Background()

	if err := st.Save(ctx, models.Session{Token: "tok", BarberID: 3}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	ev := waitChange(t, ch)
	if ev.Session == nil || ev.Session.BarberID != 3 {
		t.Fatalf("unexpected save event: %+v", ev)
	}

	if err := st.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	ev = waitChange(t, ch)
	if ev.Session != nil {
		t.Fatalf("clear event should carry nil session, got %+v", ev.Session)
	}
}

func TestMemory_SlowSubscriberNeverBlocksSaves(t *testing.T) {
	st := NewMemory(zerolog.Nop())
	defer st.Close()

	// subscribed but never drained
	_ = st.Subscribe()

	ctx := context.Background()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			_ = st.Save(ctx, models.Session{Token: "tok", BarberID: uint(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("saves blocked on an undrained subscriber")
	}
}

func TestMemory_CloseEndsSubscription(t *testing.T) {
	st := NewMemory(zerolog.Nop())
	ch := st.Subscribe()

	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	select {
	case _, ok := <-ch:
		if ok {
			// a buffered event may still arrive; drain until close
			for range ch {
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("subscription channel not closed")
	}
}
