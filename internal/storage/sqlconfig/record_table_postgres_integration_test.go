//go:build integration

package sqlconfig_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/porquinho-server/internal/storage"
	"github.com/carson-networks/porquinho-server/internal/storage/sqlconfig"
)

func newPostgresTable(t *testing.T) *sqlconfig.PostgresRecordTable {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("porquinho"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("testpassword"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	result, err := storage.RunPostgresMigrations(dsn)
	require.NoError(t, err)
	require.Equal(t, uint(1), result.PostVersion)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlconfig.NewPostgresRecordTable(db)
}

func TestPostgresRecordTable(t *testing.T) {
	table := newPostgresTable(t)
	ctx := context.Background()

	require.NoError(t, table.Upsert(ctx, upsert("2024-03", "5000", "3000", "10000")))
	require.NoError(t, table.Upsert(ctx, upsert("2024-01", "4000", "3500", "9000")))
	require.NoError(t, table.Upsert(ctx, upsert("2024-03", "5100", "2900", "11200.40")))

	rows, err := table.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01", rows[0].Month)
	assert.Equal(t, "2024-03", rows[1].Month)
	assert.True(t, rows[1].SavingsBalance.Equal(decimal.RequireFromString("11200.40")))

	row, err := table.FindByMonth(ctx, "2024-01")
	require.NoError(t, err)
	assert.True(t, row.Income.Equal(decimal.RequireFromString("4000")))

	require.NoError(t, table.Delete(ctx, "2024-01"))
	_, err = table.FindByMonth(ctx, "2024-01")
	assert.ErrorIs(t, err, sqlconfig.ErrRecordNotFound)
}

func TestPostgresRecordTable_RejectsBadMonth(t *testing.T) {
	table := newPostgresTable(t)

	err := table.Upsert(context.Background(), upsert("2024-13", "1", "1", "1"))

	assert.Error(t, err)
}
