package projection

import (
	"context"
	"math"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/porquinho-server/internal/logging"
	proj "github.com/carson-networks/porquinho-server/internal/projection"
	"github.com/carson-networks/porquinho-server/internal/service"
)

type SimulateInput struct {
	Contribution float64 `query:"contribution" minimum:"0" maximum:"1000000" default:"0" doc:"Amount added at the end of every month"`
	Months       int     `query:"months" minimum:"0" maximum:"600" default:"12" doc:"Projection horizon in months"`
}

// Resolve rejects non-finite contributions. NaN passes the minimum and
// maximum checks.
func (i *SimulateInput) Resolve(huma.Context) []error {
	if math.IsNaN(i.Contribution) || math.IsInf(i.Contribution, 0) {
		return []error{&huma.ErrorDetail{
			Location: "query.contribution",
			Message:  "contribution must be a finite number",
			Value:    i.Contribution,
		}}
	}
	return nil
}

type Point struct {
	Month         int     `json:"month" doc:"1-based month of the projection"`
	Amount        float64 `json:"amount" doc:"Balance at the end of the month"`
	YieldEarned   float64 `json:"yieldEarned" doc:"Yield credited in the month"`
	TotalInvested float64 `json:"totalInvested" doc:"Principal put in up to and including the month"`
}

type SimulateResponseBody struct {
	InitialAmount       float64 `json:"initialAmount" doc:"Latest recorded savings balance"`
	BalanceMonth        string  `json:"balanceMonth,omitempty" doc:"Month the initial amount was recorded in"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	Months              int     `json:"months"`
	MonthlyRate         float64 `json:"monthlyRate" doc:"Effective monthly rate"`
	ProjectedTotal      float64 `json:"projectedTotal" doc:"Balance at the end of the horizon"`
	TotalYield          float64 `json:"totalYield" doc:"Everything in the projected total that was not put in"`
	Points              []Point `json:"points"`
	Source              string  `json:"source" enum:"remote,local" doc:"Storage tier the initial amount came from"`
}

type SimulateOutput struct {
	Body SimulateResponseBody
}

type simulator interface {
	Simulate(ctx context.Context, monthlyContribution float64, months int) (*service.Projection, error)
}

// SimulateHandler handles GET /v1/projection.
type SimulateHandler struct {
	ProjectionService simulator
}

func NewSimulateHandler(svc simulator) *SimulateHandler {
	return &SimulateHandler{ProjectionService: svc}
}

func (h *SimulateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "simulate-projection",
		Method:      http.MethodGet,
		Path:        "/v1/projection",
		Summary:     "Simulate savings",
		Description: "Projects the latest savings balance forward with a fixed monthly contribution.",
		Tags:        []string{"Projection"},
	}, h.handle)
}

func (h *SimulateHandler) handle(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("months", input.Months)

	result, err := h.ProjectionService.Simulate(ctx, input.Contribution, input.Months)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to simulate projection", err)
	}

	return &SimulateOutput{Body: SimulateResponseBody{
		InitialAmount:       result.InitialAmount,
		BalanceMonth:        result.BalanceMonth,
		MonthlyContribution: result.MonthlyContribution,
		Months:              result.Months,
		MonthlyRate:         result.MonthlyRate,
		ProjectedTotal:      result.ProjectedTotal,
		TotalYield:          result.TotalYield,
		Points:              toPoints(result.Points),
		Source:              string(result.Source),
	}}, nil
}

func toPoints(points []proj.Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point(p)
	}
	return out
}
