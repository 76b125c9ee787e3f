package sqlconfig_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/porquinho-server/internal/storage"
	"github.com/carson-networks/porquinho-server/internal/storage/sqlconfig"
)

func newSQLiteTable(t *testing.T) *sqlconfig.SQLiteRecordTable {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.db")
	_, err := storage.RunSQLiteMigrations(path)
	require.NoError(t, err)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	return sqlconfig.NewSQLiteRecordTable(db)
}

func upsert(month, income, expenses, balance string) *sqlconfig.RecordUpsert {
	return &sqlconfig.RecordUpsert{
		Month:          month,
		Income:         decimal.RequireFromString(income),
		Expenses:       decimal.RequireFromString(expenses),
		SavingsBalance: decimal.RequireFromString(balance),
	}
}

func TestSQLiteRecordTable_UpsertReplacesMonth(t *testing.T) {
	table := newSQLiteTable(t)
	ctx := context.Background()

	require.NoError(t, table.Upsert(ctx, upsert("2024-03", "5000", "3000", "10000")))
	require.NoError(t, table.Upsert(ctx, upsert("2024-03", "5500.25", "2800", "12700.25")))

	rows, err := table.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-03", rows[0].ID)
	assert.Equal(t, "2024-03", rows[0].Month)
	assert.True(t, rows[0].Income.Equal(decimal.RequireFromString("5500.25")))
	assert.True(t, rows[0].Expenses.Equal(decimal.RequireFromString("2800")))
	assert.True(t, rows[0].SavingsBalance.Equal(decimal.RequireFromString("12700.25")))
	assert.False(t, rows[0].UpdatedAt.IsZero())
}

func TestSQLiteRecordTable_ListOrderedByMonth(t *testing.T) {
	table := newSQLiteTable(t)
	ctx := context.Background()

	for _, month := range []string{"2024-11", "2023-12", "2024-02", "2024-01"} {
		require.NoError(t, table.Upsert(ctx, upsert(month, "1", "1", "1")))
	}

	rows, err := table.List(ctx)
	require.NoError(t, err)

	months := make([]string, len(rows))
	for i, row := range rows {
		months[i] = row.Month
	}
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-02", "2024-11"}, months)
}

func TestSQLiteRecordTable_FindByMonth(t *testing.T) {
	table := newSQLiteTable(t)
	ctx := context.Background()
	require.NoError(t, table.Upsert(ctx, upsert("2024-05", "4200", "3900.99", "800")))

	row, err := table.FindByMonth(ctx, "2024-05")
	require.NoError(t, err)
	assert.True(t, row.Expenses.Equal(decimal.RequireFromString("3900.99")))

	_, err = table.FindByMonth(ctx, "2024-06")
	assert.ErrorIs(t, err, sqlconfig.ErrRecordNotFound)
}

func TestSQLiteRecordTable_Delete(t *testing.T) {
	table := newSQLiteTable(t)
	ctx := context.Background()
	require.NoError(t, table.Upsert(ctx, upsert("2024-05", "1", "1", "1")))

	require.NoError(t, table.Delete(ctx, "2024-05"))
	require.NoError(t, table.Delete(ctx, "2024-05"))

	rows, err := table.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSQLiteRecordTable_EmptyList(t *testing.T) {
	table := newSQLiteTable(t)

	rows, err := table.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rows)
}
