package projection

import "math"

// Rates are the yearly figures the projector works from. AverageTaxRate is
// carried for display and is not applied to any projection.
type Rates struct {
	AnnualRate     float64
	AverageTaxRate float64
}

// DefaultRates is the Porquinho daily-liquidity account as of the last update
// to these figures: 10.65% a year, 17.5% average income tax.
func DefaultRates() Rates {
	return Rates{
		AnnualRate:     0.1065,
		AverageTaxRate: 0.175,
	}
}

// Point is one period of a projection. Month is 1-based.
type Point struct {
	Month         int     `json:"month"`
	Amount        float64 `json:"amount"`
	YieldEarned   float64 `json:"yieldEarned"`
	TotalInvested float64 `json:"totalInvested"`
}

type Projector struct {
	rates Rates
}

func NewProjector(rates Rates) Projector {
	return Projector{rates: rates}
}

func (p Projector) Rates() Rates {
	return p.rates
}

// MonthlyRate is the effective monthly rate equivalent to the annual one,
// so twelve months of compounding reproduce AnnualRate exactly.
func (p Projector) MonthlyRate() float64 {
	return math.Pow(1+p.rates.AnnualRate, 1.0/12.0) - 1
}

// Project compounds initialAmount for the given number of months, adding the
// contribution after each month's yield. Yield is credited on the balance at
// the start of the month, so a contribution only earns from the next month on.
// A non-positive horizon yields an empty slice.
func (p Projector) Project(initialAmount, monthlyContribution float64, months int) []Point {
	if months <= 0 {
		return []Point{}
	}

	rate := p.MonthlyRate()
	current := initialAmount
	points := make([]Point, 0, months)
	for i := 1; i <= months; i++ {
		yield := current * rate
		current = current + yield + monthlyContribution
		points = append(points, Point{
			Month:         i,
			Amount:        current,
			YieldEarned:   yield,
			TotalInvested: initialAmount + monthlyContribution*float64(i),
		})
	}
	return points
}

// ProjectedTotal is the final balance of a projection, or initialAmount when
// there are no points.
func ProjectedTotal(points []Point, initialAmount float64) float64 {
	if len(points) == 0 {
		return initialAmount
	}
	return points[len(points)-1].Amount
}

// TotalYield is everything in the final balance that was not put in.
func TotalYield(points []Point, initialAmount, monthlyContribution float64) float64 {
	invested := initialAmount + monthlyContribution*float64(len(points))
	return ProjectedTotal(points, initialAmount) - invested
}
