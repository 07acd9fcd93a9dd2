package store

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNoSnapshot = errors.New("no state snapshot stored")

const (
	DriverBadger   = "badger"
	DriverPostgres = "postgres"
)

// Store persists the opaque state snapshot across restarts.
type Store interface {
	// Save overwrites the stored snapshot.
	Save(ctx context.Context, snapshot []byte) error
	// Load returns the stored snapshot or ErrNoSnapshot.
	Load(ctx context.Context) ([]byte, error)
	Close() error
}
