package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/porquinho-server/internal/config"
	"github.com/carson-networks/porquinho-server/internal/storage/sqlconfig"
)

func TestNewStorage_LocalOnly(t *testing.T) {
	env := &config.Config{SQLitePath: filepath.Join(t.TempDir(), "porquinho.db")}

	store, err := NewStorage(env)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.False(t, store.HasRemote())
	require.NotNil(t, store.Local)

	ctx := context.Background()
	require.NoError(t, store.Local.Upsert(ctx, &sqlconfig.RecordUpsert{
		Month:          "2024-03",
		Income:         decimal.RequireFromString("5000"),
		Expenses:       decimal.RequireFromString("3200.50"),
		SavingsBalance: decimal.RequireFromString("12000"),
	}))

	rows, err := store.Local.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRunSQLiteMigrations_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "porquinho.db")

	first, err := RunSQLiteMigrations(path)
	require.NoError(t, err)
	assert.Equal(t, uint(0), first.PreVersion)
	assert.Equal(t, uint(1), first.PostVersion)

	second, err := RunSQLiteMigrations(path)
	require.NoError(t, err)
	assert.Equal(t, uint(1), second.PreVersion)
	assert.Equal(t, uint(1), second.PostVersion)
}
