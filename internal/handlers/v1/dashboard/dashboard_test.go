package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/porquinho-server/internal/service"
)

type mockDashboardService struct {
	mock.Mock
}

func (m *mockDashboardService) Summary(ctx context.Context) (*service.DashboardSummary, error) {
	args := m.Called(ctx)
	summary, _ := args.Get(0).(*service.DashboardSummary)
	return summary, args.Error(1)
}

func newTestAPI(t *testing.T, svc summarizer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestDashboard(t *testing.T) {
	current := service.Record{
		ID:             "2024-02",
		Month:          "2024-02",
		Income:         decimal.NewFromInt(5200),
		Expenses:       decimal.RequireFromString("3900.5"),
		SavingsBalance: decimal.RequireFromString("11250.75"),
	}
	svc := &mockDashboardService{}
	svc.On("Summary", mock.Anything).Return(&service.DashboardSummary{
		Current:       &current,
		SavingsGrowth: decimal.RequireFromString("1250.75"),
		MonthNet:      decimal.RequireFromString("1299.5"),
		RecordCount:   2,
		Series: []service.SeriesPoint{
			{Month: "2024-01", SavingsBalance: decimal.NewFromInt(10000), Income: decimal.NewFromInt(5000), Expenses: decimal.NewFromInt(4100)},
			{Month: "2024-02", SavingsBalance: current.SavingsBalance, Income: current.Income, Expenses: current.Expenses},
		},
		Source: service.SourceRemote,
	}, nil)
	api := newTestAPI(t, svc)

	resp := api.Get("/v1/dashboard")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body DashboardResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotNil(t, body.Current)
	assert.Equal(t, "2024-02", body.Current.Month)
	assert.Equal(t, "1250.75", body.SavingsGrowth)
	assert.Equal(t, "1299.50", body.MonthNet)
	assert.Equal(t, 2, body.RecordCount)
	require.Len(t, body.Series, 2)
	assert.Equal(t, "10000.00", body.Series[0].SavingsBalance)
	assert.Equal(t, "remote", body.Source)
}

func TestDashboard_Empty(t *testing.T) {
	svc := &mockDashboardService{}
	svc.On("Summary", mock.Anything).Return(&service.DashboardSummary{Source: service.SourceLocal}, nil)
	api := newTestAPI(t, svc)

	resp := api.Get("/v1/dashboard")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body DashboardResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Nil(t, body.Current)
	assert.Equal(t, "0.00", body.SavingsGrowth)
	assert.Empty(t, body.Series)
}

func TestDashboard_Error(t *testing.T) {
	svc := &mockDashboardService{}
	svc.On("Summary", mock.Anything).Return(nil, errors.New("boom"))
	api := newTestAPI(t, svc)

	resp := api.Get("/v1/dashboard")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
