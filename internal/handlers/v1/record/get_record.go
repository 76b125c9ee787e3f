package record

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/porquinho-server/internal/service"
)

type GetRecordInput struct {
	Month string `path:"month" pattern:"^[0-9]{4}-(0[1-9]|1[0-2])$" doc:"Calendar month, YYYY-MM"`
}

type GetRecordResponseBody struct {
	Record Record `json:"record"`
	Source string `json:"source" enum:"remote,local" doc:"Storage tier that answered"`
}

type GetRecordOutput struct {
	Body GetRecordResponseBody
}

type recordGetter interface {
	Get(ctx context.Context, month string) (service.Record, service.Source, error)
}

// GetRecordHandler handles GET /v1/record/{month}.
type GetRecordHandler struct {
	RecordService recordGetter
}

func NewGetRecordHandler(svc recordGetter) *GetRecordHandler {
	return &GetRecordHandler{RecordService: svc}
}

func (h *GetRecordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-record",
		Method:      http.MethodGet,
		Path:        "/v1/record/{month}",
		Summary:     "Get record",
		Description: "Returns the record for one month.",
		Tags:        []string{"Records"},
	}, h.handle)
}

func (h *GetRecordHandler) handle(ctx context.Context, input *GetRecordInput) (*GetRecordOutput, error) {
	rec, source, err := h.RecordService.Get(ctx, input.Month)
	if errors.Is(err, service.ErrRecordNotFound) {
		return nil, huma.Error404NotFound("no record for month " + input.Month)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get record", err)
	}

	return &GetRecordOutput{Body: GetRecordResponseBody{
		Record: fromService(rec),
		Source: string(source),
	}}, nil
}
