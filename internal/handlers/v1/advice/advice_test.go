package advice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/porquinho-server/internal/service"
)

type mockAdviceService struct {
	mock.Mock
}

func (m *mockAdviceService) Advice(ctx context.Context) (*service.Advice, error) {
	args := m.Called(ctx)
	advice, _ := args.Get(0).(*service.Advice)
	return advice, args.Error(1)
}

func newTestAPI(t *testing.T, svc advisor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestAdvice(t *testing.T) {
	svc := &mockAdviceService{}
	svc.On("Advice", mock.Anything).Return(&service.Advice{
		Text:      "Ótimo mês!",
		Generated: true,
		Cached:    true,
		Source:    service.SourceRemote,
	}, nil)
	api := newTestAPI(t, svc)

	resp := api.Get("/v1/advice")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body AdviceResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Ótimo mês!", body.Text)
	assert.True(t, body.Generated)
	assert.True(t, body.Cached)
	assert.Equal(t, "remote", body.Source)
}

func TestAdvice_Error(t *testing.T) {
	svc := &mockAdviceService{}
	svc.On("Advice", mock.Anything).Return(nil, errors.New("boom"))
	api := newTestAPI(t, svc)

	resp := api.Get("/v1/advice")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
