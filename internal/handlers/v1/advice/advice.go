package advice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/porquinho-server/internal/logging"
	"github.com/carson-networks/porquinho-server/internal/service"
)

type AdviceResponseBody struct {
	Text      string `json:"text" doc:"Advisory text in Portuguese"`
	Generated bool   `json:"generated" doc:"False when the text is a fixed fallback message"`
	Cached    bool   `json:"cached"`
	Source    string `json:"source" enum:"remote,local" doc:"Storage tier the records came from"`
}

type AdviceOutput struct {
	Body AdviceResponseBody
}

type advisor interface {
	Advice(ctx context.Context) (*service.Advice, error)
}

// Handler handles GET /v1/advice.
type Handler struct {
	AdviceService advisor
}

func NewHandler(svc advisor) *Handler {
	return &Handler{AdviceService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-advice",
		Method:      http.MethodGet,
		Path:        "/v1/advice",
		Summary:     "Financial advice",
		Description: "Returns a short text analysis of the last six months.",
		Tags:        []string{"Advice"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*AdviceOutput, error) {
	advice, err := h.AdviceService.Advice(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read records for advice", err)
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("generated", advice.Generated)
	logData.AddData("cached", advice.Cached)

	return &AdviceOutput{Body: AdviceResponseBody{
		Text:      advice.Text,
		Generated: advice.Generated,
		Cached:    advice.Cached,
		Source:    string(advice.Source),
	}}, nil
}
