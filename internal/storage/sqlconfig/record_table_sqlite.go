package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"
)

var _ IRecordTable = (*SQLiteRecordTable)(nil)

// SQLiteRecordTable is the local tier. Amounts are stored as TEXT so no
// precision is lost, updated_at as unix milliseconds.
type SQLiteRecordTable struct {
	exec bob.Executor
}

type sqliteRecordRow struct {
	ID             string `db:"id"`
	Month          string `db:"month"`
	Income         string `db:"income"`
	Expenses       string `db:"expenses"`
	SavingsBalance string `db:"savings_balance"`
	UpdatedAt      int64  `db:"updated_at"`
}

func NewSQLiteRecordTable(db *sql.DB) *SQLiteRecordTable {
	return &SQLiteRecordTable{exec: bob.NewDB(db)}
}

func (t *SQLiteRecordTable) List(ctx context.Context) ([]*Record, error) {
	q := sqlite.Select(
		sm.Columns(recordColumns...),
		sm.From(recordTableName),
		sm.OrderBy("month").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[sqliteRecordRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Record, len(rows))
	for i, row := range rows {
		rec, err := sqliteRowToRecord(row)
		if err != nil {
			return nil, err
		}
		result[i] = rec
	}
	return result, nil
}

func (t *SQLiteRecordTable) FindByMonth(ctx context.Context, month string) (*Record, error) {
	q := sqlite.Select(
		sm.Columns(recordColumns...),
		sm.From(recordTableName),
		sm.Where(sqlite.Quote("month").EQ(sqlite.Arg(month))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[sqliteRecordRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return sqliteRowToRecord(row)
}

func (t *SQLiteRecordTable) Upsert(ctx context.Context, upsert *RecordUpsert) error {
	q := sqlite.Insert(
		im.OrReplace(),
		im.Into(recordTableName, "id", "month", "income", "expenses", "savings_balance", "updated_at"),
		im.Values(
			sqlite.Arg(upsert.Month),
			sqlite.Arg(upsert.Month),
			sqlite.Arg(upsert.Income.String()),
			sqlite.Arg(upsert.Expenses.String()),
			sqlite.Arg(upsert.SavingsBalance.String()),
			sqlite.Arg(time.Now().UnixMilli()),
		),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *SQLiteRecordTable) Delete(ctx context.Context, month string) error {
	q := sqlite.Delete(
		dm.From(recordTableName),
		dm.Where(sqlite.Quote("month").EQ(sqlite.Arg(month))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func sqliteRowToRecord(row sqliteRecordRow) (*Record, error) {
	income, err := decimal.NewFromString(row.Income)
	if err != nil {
		return nil, err
	}
	expenses, err := decimal.NewFromString(row.Expenses)
	if err != nil {
		return nil, err
	}
	balance, err := decimal.NewFromString(row.SavingsBalance)
	if err != nil {
		return nil, err
	}
	return &Record{
		ID:             row.ID,
		Month:          row.Month,
		Income:         income,
		Expenses:       expenses,
		SavingsBalance: balance,
		UpdatedAt:      time.UnixMilli(row.UpdatedAt).UTC(),
	}, nil
}
