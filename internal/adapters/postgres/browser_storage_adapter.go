package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier - подмножество pgxpool.Pool, которое нужно адаптеру.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BrowserStorageAdapter хранит значения сессий в таблице browser_storage.
type BrowserStorageAdapter struct {
	pool querier
}

func NewBrowserStorageAdapter(pool querier) *BrowserStorageAdapter {
	return &BrowserStorageAdapter{pool: pool}
}

const createBrowserStorageTable = `CREATE TABLE IF NOT EXISTS browser_storage (
	session_id UUID NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (session_id, key)
)`

// EnsureSchema создает таблицу при первом запуске.
func (a *BrowserStorageAdapter) EnsureSchema(ctx context.Context) error {
	if _, err := a.pool.Exec(ctx, createBrowserStorageTable); err != nil {
		return fmt.Errorf("BrowserStorageAdapter: failed to create browser_storage table: %w", err)
	}
	return nil
}

func (a *BrowserStorageAdapter) GetItem(ctx context.Context, sessionID uuid.UUID, key string) (string, bool, error) {
	query := `SELECT value FROM browser_storage WHERE session_id = $1 AND key = $2`

	var value string
	err := a.pool.QueryRow(ctx, query, sessionID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("BrowserStorageAdapter: failed to get item %q: %w", key, err)
	}
	return value, true, nil
}

func (a *BrowserStorageAdapter) SetItem(ctx context.Context, sessionID uuid.UUID, key, value string) error {
	query := `INSERT INTO browser_storage (session_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := a.pool.Exec(ctx, query, sessionID, key, value); err != nil {
		return fmt.Errorf("BrowserStorageAdapter: failed to set item %q: %w", key, err)
	}
	return nil
}

func (a *BrowserStorageAdapter) RemoveItem(ctx context.Context, sessionID uuid.UUID, key string) error {
	query := `DELETE FROM browser_storage WHERE session_id = $1 AND key = $2`

	if _, err := a.pool.Exec(ctx, query, sessionID, key); err != nil {
		return fmt.Errorf("BrowserStorageAdapter: failed to remove item %q: %w", key, err)
	}
	return nil
}
