package record

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/porquinho-server/internal/operator/actions"
	"github.com/carson-networks/porquinho-server/internal/service"
)

type DeleteRecordInput struct {
	Month string `path:"month" pattern:"^[0-9]{4}-(0[1-9]|1[0-2])$" doc:"Calendar month, YYYY-MM"`
}

type DeleteRecordResponseBody struct {
	Month  string `json:"month"`
	Source string `json:"source" enum:"remote,local" doc:"Storage tier that accepted the delete"`
}

type DeleteRecordOutput struct {
	Body DeleteRecordResponseBody
}

// DeleteRecordHandler handles DELETE /v1/record/{month}.
type DeleteRecordHandler struct {
	Operator actionProcessor
}

func NewDeleteRecordHandler(op actionProcessor) *DeleteRecordHandler {
	return &DeleteRecordHandler{Operator: op}
}

func (h *DeleteRecordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-record",
		Method:      http.MethodDelete,
		Path:        "/v1/record/{month}",
		Summary:     "Delete record",
		Description: "Removes the record for a month from both tiers. Deleting a missing month succeeds.",
		Tags:        []string{"Records"},
	}, h.handle)
}

func (h *DeleteRecordHandler) handle(ctx context.Context, input *DeleteRecordInput) (*DeleteRecordOutput, error) {
	action := &actions.DeleteRecord{Month: input.Month}
	err := h.Operator.Process(ctx, action)
	if errors.Is(err, service.ErrInvalidRecord) {
		return nil, huma.NewError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete record", err)
	}

	return &DeleteRecordOutput{Body: DeleteRecordResponseBody{
		Month:  input.Month,
		Source: string(action.Source),
	}}, nil
}
