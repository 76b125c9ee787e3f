package projection

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	proj "github.com/carson-networks/porquinho-server/internal/projection"
)

type RateResponseBody struct {
	AnnualRate     float64 `json:"annualRate"`
	MonthlyRate    float64 `json:"monthlyRate" doc:"Effective monthly rate equivalent to the annual one"`
	AverageTaxRate float64 `json:"averageTaxRate" doc:"Informational, not applied to projections"`
}

type RateOutput struct {
	Body RateResponseBody
}

type rateSource interface {
	MonthlyRate() float64
	Rates() proj.Rates
}

// RateHandler handles GET /v1/projection/rate.
type RateHandler struct {
	ProjectionService rateSource
}

func NewRateHandler(svc rateSource) *RateHandler {
	return &RateHandler{ProjectionService: svc}
}

func (h *RateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-projection-rate",
		Method:      http.MethodGet,
		Path:        "/v1/projection/rate",
		Summary:     "Projection rate",
		Description: "Returns the rates projections are computed with.",
		Tags:        []string{"Projection"},
	}, h.handle)
}

func (h *RateHandler) handle(_ context.Context, _ *struct{}) (*RateOutput, error) {
	rates := h.ProjectionService.Rates()
	return &RateOutput{Body: RateResponseBody{
		AnnualRate:     rates.AnnualRate,
		MonthlyRate:    h.ProjectionService.MonthlyRate(),
		AverageTaxRate: rates.AverageTaxRate,
	}}, nil
}
