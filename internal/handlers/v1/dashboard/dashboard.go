package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/porquinho-server/internal/logging"
	"github.com/carson-networks/porquinho-server/internal/service"
)

// CurrentMonth is the KPI block for the most recent record.
type CurrentMonth struct {
	Month          string `json:"month"`
	Income         string `json:"income"`
	Expenses       string `json:"expenses"`
	SavingsBalance string `json:"savingsBalance"`
}

type SeriesPoint struct {
	Month          string `json:"month"`
	SavingsBalance string `json:"savingsBalance"`
	Income         string `json:"income"`
	Expenses       string `json:"expenses"`
}

type DashboardResponseBody struct {
	Current       *CurrentMonth `json:"current,omitempty" doc:"Most recent month, absent when nothing is recorded"`
	SavingsGrowth string        `json:"savingsGrowth" doc:"Balance change from the previous month"`
	MonthNet      string        `json:"monthNet" doc:"Income minus expenses for the current month"`
	RecordCount   int           `json:"recordCount"`
	Series        []SeriesPoint `json:"series" doc:"Chart data in month order"`
	Source        string        `json:"source" enum:"remote,local"`
}

type DashboardOutput struct {
	Body DashboardResponseBody
}

type summarizer interface {
	Summary(ctx context.Context) (*service.DashboardSummary, error)
}

// Handler handles GET /v1/dashboard.
type Handler struct {
	DashboardService summarizer
}

func NewHandler(svc summarizer) *Handler {
	return &Handler{DashboardService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Dashboard",
		Description: "Returns the KPI summary and chart series.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*DashboardOutput, error) {
	summary, err := h.DashboardService.Summary(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build dashboard", err)
	}
	logging.GetLogData(ctx).AddData("recordCount", summary.RecordCount)

	body := DashboardResponseBody{
		SavingsGrowth: summary.SavingsGrowth.StringFixed(2),
		MonthNet:      summary.MonthNet.StringFixed(2),
		RecordCount:   summary.RecordCount,
		Series:        make([]SeriesPoint, len(summary.Series)),
		Source:        string(summary.Source),
	}
	if summary.Current != nil {
		body.Current = &CurrentMonth{
			Month:          summary.Current.Month,
			Income:         summary.Current.Income.StringFixed(2),
			Expenses:       summary.Current.Expenses.StringFixed(2),
			SavingsBalance: summary.Current.SavingsBalance.StringFixed(2),
		}
	}
	for i, p := range summary.Series {
		body.Series[i] = SeriesPoint{
			Month:          p.Month,
			SavingsBalance: p.SavingsBalance.StringFixed(2),
			Income:         p.Income.StringFixed(2),
			Expenses:       p.Expenses.StringFixed(2),
		}
	}
	return &DashboardOutput{Body: body}, nil
}
