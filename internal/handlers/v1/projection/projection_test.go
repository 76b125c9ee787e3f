package projection

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	proj "github.com/carson-networks/porquinho-server/internal/projection"
	"github.com/carson-networks/porquinho-server/internal/service"
)

type recordLister struct {
	records []service.Record
	err     error
}

func (r *recordLister) List(context.Context) ([]service.Record, service.Source, error) {
	return r.records, service.SourceLocal, r.err
}

func newTestAPI(t *testing.T, lister *recordLister) humatest.TestAPI {
	t.Helper()
	svc := service.NewProjectionService(lister, proj.DefaultRates())
	_, api := humatest.New(t)
	NewSimulateHandler(svc).Register(api)
	NewRateHandler(svc).Register(api)
	return api
}

func TestSimulate_Defaults(t *testing.T) {
	api := newTestAPI(t, &recordLister{})

	resp := api.Get("/v1/projection")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body SimulateResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 12, body.Months)
	assert.Len(t, body.Points, 12)
	assert.Equal(t, 0.0, body.InitialAmount)
	assert.Equal(t, "local", body.Source)
}

func TestSimulate_Scenario(t *testing.T) {
	lister := &recordLister{records: []service.Record{{
		ID:             "2024-03",
		Month:          "2024-03",
		SavingsBalance: decimal.NewFromInt(1000),
	}}}
	api := newTestAPI(t, lister)

	resp := api.Get("/v1/projection?contribution=100&months=3")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body SimulateResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "2024-03", body.BalanceMonth)
	require.Len(t, body.Points, 3)
	assert.Equal(t, 1, body.Points[0].Month)
	assert.InDelta(t, 1108.469152100938, body.Points[0].Amount, 1e-9)
	assert.InDelta(t, 1328.1711616617067, body.ProjectedTotal, 1e-9)
	assert.InDelta(t, 28.1711616617067, body.TotalYield, 1e-6)
}

func TestSimulate_ZeroMonths(t *testing.T) {
	api := newTestAPI(t, &recordLister{})

	resp := api.Get("/v1/projection?months=0")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body SimulateResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Empty(t, body.Points)
}

func TestSimulate_OutOfBounds(t *testing.T) {
	api := newTestAPI(t, &recordLister{})

	assert.Equal(t, http.StatusUnprocessableEntity, api.Get("/v1/projection?months=601").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, api.Get("/v1/projection?months=-1").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, api.Get("/v1/projection?contribution=-5").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, api.Get("/v1/projection?contribution=1000001").Code)
}

func TestSimulate_NonFiniteContribution(t *testing.T) {
	api := newTestAPI(t, &recordLister{})

	for _, value := range []string{"NaN", "Inf", "-Inf", "1e308"} {
		resp := api.Get("/v1/projection?contribution=" + value)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code, value+": "+resp.Body.String())
	}
}

func TestSimulate_StorageError(t *testing.T) {
	api := newTestAPI(t, &recordLister{err: errors.New("boom")})

	resp := api.Get("/v1/projection")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestRate(t *testing.T) {
	api := newTestAPI(t, &recordLister{})

	resp := api.Get("/v1/projection/rate")

	require.Equal(t, http.StatusOK, resp.Code)
	var body RateResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 0.1065, body.AnnualRate)
	assert.Equal(t, 0.175, body.AverageTaxRate)
	assert.InDelta(t, 0.008469152100937904, body.MonthlyRate, 1e-12)
}
