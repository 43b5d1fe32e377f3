package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePool эмулирует таблицу browser_storage в памяти.
type fakePool struct {
	rows    map[string]string
	execErr error
	queries []string
}

func newFakePool() *fakePool {
	return &fakePool{rows: make(map[string]string)}
}

func rowKey(args []any) string {
	return args[0].(uuid.UUID).String() + "/" + args[1].(string)
}

func (p *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	p.queries = append(p.queries, sql)
	if p.execErr != nil {
		return pgconn.CommandTag{}, p.execErr
	}
	switch {
	case strings.HasPrefix(sql, "INSERT"):
		p.rows[rowKey(args)] = args[2].(string)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case strings.HasPrefix(sql, "DELETE"):
		delete(p.rows, rowKey(args))
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func (p *fakePool) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	p.queries = append(p.queries, sql)
	value, ok := p.rows[rowKey(args)]
	return fakeRow{value: value, found: ok}
}

type fakeRow struct {
	value string
	found bool
}

func (r fakeRow) Scan(dest ...any) error {
	if !r.found {
		return pgx.ErrNoRows
	}
	*(dest[0].(*string)) = r.value
	return nil
}

func TestBrowserStorageAdapter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := newFakePool()
	adapter := NewBrowserStorageAdapter(pool)
	sid := uuid.New()

	require.NoError(t, adapter.EnsureSchema(ctx))
	assert.Contains(t, pool.queries[0], "CREATE TABLE IF NOT EXISTS browser_storage")

	_, found, err := adapter.GetItem(ctx, sid, "filters")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, adapter.SetItem(ctx, sid, "filters", `{"bedrooms":2}`))
	value, found, err := adapter.GetItem(ctx, sid, "filters")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"bedrooms":2}`, value)

	require.NoError(t, adapter.RemoveItem(ctx, sid, "filters"))
	_, found, err = adapter.GetItem(ctx, sid, "filters")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBrowserStorageAdapter_ExecErrorIsWrapped(t *testing.T) {
	pool := newFakePool()
	pool.execErr = errors.New("connection reset")
	adapter := NewBrowserStorageAdapter(pool)

	err := adapter.SetItem(context.Background(), uuid.New(), "filters", "{}")
	require.Error(t, err)
	assert.ErrorIs(t, err, pool.execErr)
	assert.Contains(t, err.Error(), "failed to set item")
}
