package secrets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cardwise/pkg/platform/sentinel"
)

// PostgresSchema creates the secrets table. It is idempotent.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS secrets (
	name       TEXT PRIMARY KEY,
	sealed     BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// PostgresBackend stores sealed secrets in a dedicated table through
// database/sql (lib/pq driver).
type PostgresBackend struct {
	db *sql.DB
}

func NewPostgresBackend(db *sql.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

// Migrate applies PostgresSchema.
func (b *PostgresBackend) Migrate(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("apply secrets schema: %w", err)
	}
	return nil
}

func (b *PostgresBackend) Put(ctx context.Context, name string, sealed []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO secrets (name, sealed, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET sealed = EXCLUDED.sealed, updated_at = EXCLUDED.updated_at
	`, name, sealed)
	if err != nil {
		return fmt.Errorf("upsert secret: %w", err)
	}
	return nil
}

func (b *PostgresBackend) Get(ctx context.Context, name string) ([]byte, error) {
	var sealed []byte
	err := b.db.QueryRowContext(ctx, `SELECT sealed FROM secrets WHERE name = $1`, name).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select secret: %w", err)
	}
	return sealed, nil
}

func (b *PostgresBackend) Delete(ctx context.Context, name string) error {
	if _, err := b.db.ExecContext(ctx, `DELETE FROM secrets WHERE name = $1`, name); err != nil {
		return fmt.Errorf("delete secret: %w", err)
	}
	return nil
}
