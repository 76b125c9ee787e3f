package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// SeriesPoint is one month of chart data.
type SeriesPoint struct {
	Month          string
	SavingsBalance decimal.Decimal
	Income         decimal.Decimal
	Expenses       decimal.Decimal
}

type DashboardSummary struct {
	// Current is nil when nothing has been recorded.
	Current *Record
	// SavingsGrowth is the change in balance from the previous month, zero
	// with fewer than two records.
	SavingsGrowth decimal.Decimal
	MonthNet      decimal.Decimal
	RecordCount   int
	Series        []SeriesPoint
	Source        Source
}

type DashboardService struct {
	records recordLister
}

func NewDashboardService(records recordLister) *DashboardService {
	return &DashboardService{records: records}
}

func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	records, source, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		SavingsGrowth: decimal.Zero,
		MonthNet:      decimal.Zero,
		RecordCount:   len(records),
		Series:        Series(records),
		Source:        source,
	}
	if len(records) == 0 {
		return summary, nil
	}

	current := records[len(records)-1]
	summary.Current = &current
	summary.MonthNet = current.Net()
	if len(records) > 1 {
		previous := records[len(records)-2]
		summary.SavingsGrowth = current.SavingsBalance.Sub(previous.SavingsBalance)
	}
	return summary, nil
}

// Series maps records, already in month order, to chart points.
func Series(records []Record) []SeriesPoint {
	points := make([]SeriesPoint, len(records))
	for i, r := range records {
		points[i] = SeriesPoint{
			Month:          r.Month,
			SavingsBalance: r.SavingsBalance,
			Income:         r.Income,
			Expenses:       r.Expenses,
		}
	}
	return points
}
