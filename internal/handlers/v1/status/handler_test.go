package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/porquinho-server/internal/logging"
)

type fakeStorage struct {
	remote bool
}

func (f fakeStorage) HasRemote() bool {
	return f.remote
}

func createTestLogData() *logging.LogData {
	logger := logging.SetupLogging("info")
	return logging.NewLogData(logger)
}

func TestHandler_GoodMethod(t *testing.T) {
	statusHandler := NewHandler(fakeStorage{remote: true})
	req := httptest.NewRequest(http.MethodGet, "/status", nil)

	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.NoError(t, err)

	res := w.Result()
	assert.Equal(t, 200, res.StatusCode)

	var body response
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Remote)
}

func TestHandler_LocalOnly(t *testing.T) {
	statusHandler := NewHandler(fakeStorage{})
	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, httptest.NewRequest(http.MethodGet, "/status", nil), createTestLogData())
	require.NoError(t, err)

	var body response
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&body))
	assert.False(t, body.Remote)
}

func TestHandler_BadMethod(t *testing.T) {
	statusHandler := NewHandler(fakeStorage{})
	req := httptest.NewRequest(http.MethodPost, "/status", nil)
	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.Error(t, err)

	res := w.Result()
	assert.Equal(t, 400, res.StatusCode)
}
