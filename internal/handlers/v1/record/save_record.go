package record

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/porquinho-server/internal/logging"
	"github.com/carson-networks/porquinho-server/internal/operator/actions"
	"github.com/carson-networks/porquinho-server/internal/service"
)

// SaveRecordBody is the request body for writing a month. Empty amounts are zero.
type SaveRecordBody struct {
	Income         string `json:"income,omitempty" doc:"Decimal income, empty means zero"`
	Expenses       string `json:"expenses,omitempty" doc:"Decimal expenses, empty means zero"`
	SavingsBalance string `json:"savingsBalance,omitempty" doc:"Decimal savings balance, empty means zero"`
}

type SaveRecordInput struct {
	Month string `path:"month" pattern:"^[0-9]{4}-(0[1-9]|1[0-2])$" doc:"Calendar month, YYYY-MM"`
	Body  SaveRecordBody
}

type SaveRecordResponseBody struct {
	Record Record `json:"record"`
	Source string `json:"source" enum:"remote,local" doc:"Storage tier that accepted the write"`
}

type SaveRecordOutput struct {
	Body SaveRecordResponseBody
}

// SaveRecordHandler handles PUT /v1/record/{month}.
type SaveRecordHandler struct {
	Operator actionProcessor
}

func NewSaveRecordHandler(op actionProcessor) *SaveRecordHandler {
	return &SaveRecordHandler{Operator: op}
}

func (h *SaveRecordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "save-record",
		Method:      http.MethodPut,
		Path:        "/v1/record/{month}",
		Summary:     "Save record",
		Description: "Creates or replaces the record for a month.",
		Tags:        []string{"Records"},
	}, h.handle)
}

// parseSaveRecordInput converts the body amounts into a service record.
func parseSaveRecordInput(input *SaveRecordInput) (service.Record, error) {
	income, err := parseAmount(input.Body.Income)
	if err != nil {
		return service.Record{}, huma.NewError(http.StatusBadRequest, "invalid income", err)
	}
	expenses, err := parseAmount(input.Body.Expenses)
	if err != nil {
		return service.Record{}, huma.NewError(http.StatusBadRequest, "invalid expenses", err)
	}
	balance, err := parseAmount(input.Body.SavingsBalance)
	if err != nil {
		return service.Record{}, huma.NewError(http.StatusBadRequest, "invalid savingsBalance", err)
	}

	return service.Record{
		ID:             input.Month,
		Month:          input.Month,
		Income:         income,
		Expenses:       expenses,
		SavingsBalance: balance,
	}, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

func (h *SaveRecordHandler) handle(ctx context.Context, input *SaveRecordInput) (*SaveRecordOutput, error) {
	rec, err := parseSaveRecordInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	endTimer := logData.AddTiming("saveRecordMs")
	action := &actions.SaveRecord{Record: rec}
	err = h.Operator.Process(ctx, action)
	endTimer()
	if errors.Is(err, service.ErrInvalidRecord) {
		return nil, huma.NewError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to save record", err)
	}

	return &SaveRecordOutput{Body: SaveRecordResponseBody{
		Record: fromService(action.Result.Record),
		Source: string(action.Result.Source),
	}}, nil
}
