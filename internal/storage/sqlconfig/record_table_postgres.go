package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IRecordTable = (*PostgresRecordTable)(nil)

// PostgresRecordTable is the remote tier.
type PostgresRecordTable struct {
	exec bob.Executor
}

type postgresRecordRow struct {
	ID             string          `db:"id"`
	Month          string          `db:"month"`
	Income         decimal.Decimal `db:"income"`
	Expenses       decimal.Decimal `db:"expenses"`
	SavingsBalance decimal.Decimal `db:"savings_balance"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

func NewPostgresRecordTable(db *sql.DB) *PostgresRecordTable {
	return &PostgresRecordTable{exec: bob.NewDB(db)}
}

// List returns all records ordered by month.
func (t *PostgresRecordTable) List(ctx context.Context) ([]*Record, error) {
	q := psql.Select(
		sm.Columns(recordColumns...),
		sm.From(recordTableName),
		sm.OrderBy("month").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[postgresRecordRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Record, len(rows))
	for i, row := range rows {
		result[i] = postgresRowToRecord(row)
	}
	return result, nil
}

// FindByMonth retrieves a single month, ErrRecordNotFound when absent.
func (t *PostgresRecordTable) FindByMonth(ctx context.Context, month string) (*Record, error) {
	q := psql.Select(
		sm.Columns(recordColumns...),
		sm.From(recordTableName),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[postgresRecordRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return postgresRowToRecord(row), nil
}

// Upsert inserts the month or replaces the existing one in place.
func (t *PostgresRecordTable) Upsert(ctx context.Context, upsert *RecordUpsert) error {
	q := psql.Insert(
		im.Into(recordTableName, "id", "month", "income", "expenses", "savings_balance", "updated_at"),
		im.Values(
			psql.Arg(upsert.Month),
			psql.Arg(upsert.Month),
			psql.Arg(upsert.Income),
			psql.Arg(upsert.Expenses),
			psql.Arg(upsert.SavingsBalance),
			psql.Arg(time.Now().UTC()),
		),
		im.OnConflict("id").DoUpdate(
			im.SetExcluded("month", "income", "expenses", "savings_balance", "updated_at"),
		),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *PostgresRecordTable) Delete(ctx context.Context, month string) error {
	q := psql.Delete(
		dm.From(recordTableName),
		dm.Where(psql.Quote("month").EQ(psql.Arg(month))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func postgresRowToRecord(row postgresRecordRow) *Record {
	return &Record{
		ID:             row.ID,
		Month:          row.Month,
		Income:         row.Income,
		Expenses:       row.Expenses,
		SavingsBalance: row.SavingsBalance,
		UpdatedAt:      row.UpdatedAt,
	}
}
