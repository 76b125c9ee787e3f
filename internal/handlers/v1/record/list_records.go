package record

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/porquinho-server/internal/logging"
	"github.com/carson-networks/porquinho-server/internal/service"
)

type ListRecordsResponseBody struct {
	Records []Record `json:"records" doc:"Every record, ordered by month ascending"`
	Source  string   `json:"source" enum:"remote,local" doc:"Storage tier that answered"`
}

type ListRecordsOutput struct {
	Body ListRecordsResponseBody
}

type recordLister interface {
	List(ctx context.Context) ([]service.Record, service.Source, error)
}

// ListRecordsHandler handles GET /v1/record.
type ListRecordsHandler struct {
	RecordService recordLister
}

func NewListRecordsHandler(svc recordLister) *ListRecordsHandler {
	return &ListRecordsHandler{RecordService: svc}
}

func (h *ListRecordsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-records",
		Method:      http.MethodGet,
		Path:        "/v1/record",
		Summary:     "List records",
		Description: "Returns every monthly record in month order, with the storage tier that answered.",
		Tags:        []string{"Records"},
	}, h.handle)
}

func (h *ListRecordsHandler) handle(ctx context.Context, _ *struct{}) (*ListRecordsOutput, error) {
	logData := logging.GetLogData(ctx)

	records, source, err := h.RecordService.List(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list records", err)
	}
	logData.AddData("recordCount", len(records))
	logData.AddData("source", source)

	resp := ListRecordsResponseBody{
		Records: make([]Record, len(records)),
		Source:  string(source),
	}
	for i, r := range records {
		resp.Records[i] = fromService(r)
	}
	return &ListRecordsOutput{Body: resp}, nil
}
