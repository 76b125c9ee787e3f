package service

import (
	"context"

	"github.com/carson-networks/porquinho-server/internal/projection"
)

// Horizon bounds accepted by the projection endpoints.
const (
	DefaultProjectionMonths = 12
	MaxProjectionMonths     = 600
	MaxMonthlyContribution  = 1_000_000
)

type recordLister interface {
	List(ctx context.Context) ([]Record, Source, error)
}

type Projection struct {
	InitialAmount       float64
	MonthlyContribution float64
	Months              int
	MonthlyRate         float64
	Points              []projection.Point
	ProjectedTotal      float64
	TotalYield          float64
	// BalanceMonth is the record the initial amount came from, empty when
	// the caller supplied it or there were no records.
	BalanceMonth string
	Source       Source
}

type ProjectionService struct {
	records   recordLister
	projector projection.Projector
}

func NewProjectionService(records recordLister, rates projection.Rates) *ProjectionService {
	return &ProjectionService{
		records:   records,
		projector: projection.NewProjector(rates),
	}
}

func (s *ProjectionService) MonthlyRate() float64 {
	return s.projector.MonthlyRate()
}

func (s *ProjectionService) Rates() projection.Rates {
	return s.projector.Rates()
}

// Simulate projects from the latest recorded savings balance, or from zero
// when nothing has been recorded yet.
func (s *ProjectionService) Simulate(ctx context.Context, monthlyContribution float64, months int) (*Projection, error) {
	records, source, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	initial := 0.0
	balanceMonth := ""
	if len(records) > 0 {
		latest := records[len(records)-1]
		initial = latest.SavingsBalance.InexactFloat64()
		balanceMonth = latest.Month
	}

	result := s.SimulateFrom(initial, monthlyContribution, months)
	result.BalanceMonth = balanceMonth
	result.Source = source
	return result, nil
}

// SimulateFrom projects from an explicit starting amount. Negative horizons
// are treated as zero.
func (s *ProjectionService) SimulateFrom(initialAmount, monthlyContribution float64, months int) *Projection {
	if months < 0 {
		months = 0
	}
	points := s.projector.Project(initialAmount, monthlyContribution, months)
	return &Projection{
		InitialAmount:       initialAmount,
		MonthlyContribution: monthlyContribution,
		Months:              months,
		MonthlyRate:         s.projector.MonthlyRate(),
		Points:              points,
		ProjectedTotal:      projection.ProjectedTotal(points, initialAmount),
		TotalYield:          projection.TotalYield(points, initialAmount, monthlyContribution),
	}
}
