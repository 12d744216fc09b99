// Package store persists the session record and notifies subscribers when it
// changes, including changes made by another process sharing the backend.
package store

import (
	"context"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

// Change is emitted on every save or clear. Session is nil after a clear.
type Change struct {
	Session *models.Session
}

type Store interface {
	Save(ctx context.Context, s models.Session) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error

	// Subscribe returns a channel of change events. The channel is closed
	// when the store is closed. A slow subscriber loses events rather than
	// blocking the writer.
	Subscribe() <-chan Change

	Close() error
}
