package store

import (
	"context"
	"database/sql"
	"embed"

	"github.com/dlmiddlecote/sqlstats"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	migrate "github.com/rubenv/sql-migrate"

	// Import postgres driver for database/sql package
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const migrationTable = "migrations"

// the table only ever holds this row
const snapshotRowID = 1

// Postgres keeps the snapshot in a single-row table.
type Postgres struct {
	db *sql.DB
}

// Migrations returns the embedded schema migrations.
func Migrations() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFS,
		Root:       "migrations",
	}
}

// Migrate applies all pending migrations and returns how many were applied.
func Migrate(db *sql.DB) (int, error) {
	migrate.SetTable(migrationTable)

	n, err := migrate.Exec(db, "postgres", Migrations(), migrate.Up)
	if err != nil {
		return 0, errors.Wrap(err, "failed to apply migrations")
	}

	return n, nil
}

// OpenPostgresDB opens and pings the database at dsn.
func OpenPostgresDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres connection")
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping postgres")
	}

	return db, nil
}

// NewPostgres migrates db and wraps it. When reg is set, connection pool
// statistics are exported to it.
func NewPostgres(db *sql.DB, reg prometheus.Registerer) (*Postgres, error) {
	n, err := Migrate(db)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("applied", n).Msg("Postgres snapshot store migrated")

	if reg != nil {
		if err := reg.Register(sqlstats.NewStatsCollector("wallet", db)); err != nil {
			return nil, errors.Wrap(err, "failed to register sql stats collector")
		}
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Save(ctx context.Context, snapshot []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO wallet_state_snapshots (id, data, saved_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, saved_at = EXCLUDED.saved_at`,
		snapshotRowID, snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to save state snapshot")
	}

	return nil
}

func (p *Postgres) Load(ctx context.Context) ([]byte, error) {
	var data []byte

	err := p.db.QueryRowContext(ctx, `SELECT data FROM wallet_state_snapshots WHERE id = $1`, snapshotRowID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, errors.Wrap(err, "failed to load state snapshot")
	}

	return data, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
