package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/porquinho-server/internal/logging"
)

type tierReporter interface {
	HasRemote() bool
}

type Handler struct {
	Storage tierReporter
}

func NewHandler(store tierReporter) Handler {
	return Handler{Storage: store}
}

type response struct {
	Status string `json:"status"`
	Remote bool   `json:"remote"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	remote := h.Storage != nil && h.Storage.HasRemote()
	logData.AddData("remote", remote)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(response{Status: "ok", Remote: remote})
}
