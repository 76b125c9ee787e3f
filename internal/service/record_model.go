package service

import (
	"errors"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrRecordNotFound is returned when neither tier holds the month.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidRecord wraps every validation failure on a write.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrRemoteUnavailable is returned by operations that need the remote tier
	// when it is not configured.
	ErrRemoteUnavailable = errors.New("remote storage not configured")
)

var monthPattern = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)

// Amounts must fit NUMERIC(14,2) on the remote tier: below 10^12 and at most
// two fractional digits, so both tiers hold the same value.
var (
	maxAmount      = decimal.New(1, 12)
	amountDecimals = int32(2)
)

// Source names the tier that answered a read or accepted a write.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Record is one calendar month of the ledger. ID always equals Month.
type Record struct {
	ID             string
	Month          string
	Income         decimal.Decimal
	Expenses       decimal.Decimal
	SavingsBalance decimal.Decimal
	UpdatedAt      time.Time
}

// Net is what was left of the month's income after expenses.
func (r Record) Net() decimal.Decimal {
	return r.Income.Sub(r.Expenses)
}

type SaveResult struct {
	Record Record
	Source Source
}

type SyncResult struct {
	Pushed int
	Failed int
}

// ValidMonth reports whether month is a YYYY-MM calendar month.
func ValidMonth(month string) bool {
	return monthPattern.MatchString(month)
}
