package store

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/timshannon/badgerhold/v4"
)

const snapshotKey = "wallet_state"

type snapshotRecord struct {
	Data    []byte
	SavedAt time.Time
}

// Badger keeps the snapshot in an embedded badger database.
type Badger struct {
	db *badgerhold.Store
}

// NewBadger opens the database in dir, or an in-memory one when dir is empty.
func NewBadger(dir string) (*Badger, error) {
	isInMemory := len(dir) == 0

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder: badgerhold.DefaultEncode,
		Decoder: badgerhold.DefaultDecode,
		Options: opts,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open badger snapshot store")
	}

	log.Debug().Str("dir", dir).Bool("in_memory", isInMemory).Msg("Opened badger snapshot store")

	return &Badger{db: db}, nil
}

func (b *Badger) Save(_ context.Context, snapshot []byte) error {
	rec := snapshotRecord{
		Data:    snapshot,
		SavedAt: time.Now().UTC(),
	}

	if err := b.db.Upsert(snapshotKey, &rec); err != nil {
		return errors.Wrap(err, "failed to save state snapshot")
	}

	return nil
}

func (b *Badger) Load(_ context.Context) ([]byte, error) {
	var rec snapshotRecord
	if err := b.db.Get(snapshotKey, &rec); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, ErrNoSnapshot
		}
		return nil, errors.Wrap(err, "failed to load state snapshot")
	}

	return rec.Data, nil
}

func (b *Badger) Close() error {
	return b.db.Close()
}
