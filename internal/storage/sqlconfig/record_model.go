package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const recordTableName = "monthly_records"

// ErrRecordNotFound is returned when no record exists for a month.
var ErrRecordNotFound = errors.New("record not found")

// Record represents one month of the ledger. ID always equals Month.
type Record struct {
	ID             string
	Month          string
	Income         decimal.Decimal
	Expenses       decimal.Decimal
	SavingsBalance decimal.Decimal
	UpdatedAt      time.Time
}

// RecordUpsert is the input for writing a month. An existing month is replaced.
type RecordUpsert struct {
	Month          string
	Income         decimal.Decimal
	Expenses       decimal.Decimal
	SavingsBalance decimal.Decimal
}

// IRecordTable defines the storage operations shared by the remote and local tiers.
//
//go:generate mockery --name IRecordTable --output mock_IRecordTable.go
type IRecordTable interface {
	// List returns every record ordered by month ascending.
	List(ctx context.Context) ([]*Record, error)
	FindByMonth(ctx context.Context, month string) (*Record, error)
	Upsert(ctx context.Context, upsert *RecordUpsert) error
	// Delete is a no-op for a month that does not exist.
	Delete(ctx context.Context, month string) error
}

var recordColumns = []any{"id", "month", "income", "expenses", "savings_balance", "updated_at"}
