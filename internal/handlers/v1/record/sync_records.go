package record

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/porquinho-server/internal/logging"
	"github.com/carson-networks/porquinho-server/internal/operator/actions"
	"github.com/carson-networks/porquinho-server/internal/service"
)

type SyncRecordsResponseBody struct {
	Pushed int `json:"pushed" doc:"Records written to the remote tier"`
	Failed int `json:"failed" doc:"Records the remote tier rejected"`
}

type SyncRecordsOutput struct {
	Body SyncRecordsResponseBody
}

// SyncRecordsHandler handles POST /v1/record/sync.
type SyncRecordsHandler struct {
	Operator actionProcessor
}

func NewSyncRecordsHandler(op actionProcessor) *SyncRecordsHandler {
	return &SyncRecordsHandler{Operator: op}
}

func (h *SyncRecordsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "sync-records",
		Method:      http.MethodPost,
		Path:        "/v1/record/sync",
		Summary:     "Sync records",
		Description: "Pushes every locally stored record to the remote tier.",
		Tags:        []string{"Records"},
	}, h.handle)
}

func (h *SyncRecordsHandler) handle(ctx context.Context, _ *struct{}) (*SyncRecordsOutput, error) {
	action := &actions.SyncRecords{}
	err := h.Operator.Process(ctx, action)
	if errors.Is(err, service.ErrRemoteUnavailable) {
		return nil, huma.NewError(http.StatusServiceUnavailable, "remote storage is not configured")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to sync records", err)
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("pushed", action.Result.Pushed)
	logData.AddData("failed", action.Result.Failed)

	return &SyncRecordsOutput{Body: SyncRecordsResponseBody{
		Pushed: action.Result.Pushed,
		Failed: action.Result.Failed,
	}}, nil
}
