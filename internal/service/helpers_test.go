package service

import (
	"context"

	"github.com/shopspring/decimal"
)

type stubLister struct {
	records []Record
	source  Source
	err     error
}

func (s *stubLister) List(context.Context) ([]Record, Source, error) {
	return s.records, s.source, s.err
}

func record(month, income, expenses, balance string) Record {
	return Record{
		ID:             month,
		Month:          month,
		Income:         decimal.RequireFromString(income),
		Expenses:       decimal.RequireFromString(expenses),
		SavingsBalance: decimal.RequireFromString(balance),
	}
}
