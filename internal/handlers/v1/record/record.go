package record

import (
	"context"
	"time"

	"github.com/carson-networks/porquinho-server/internal/operator/actions"
	"github.com/carson-networks/porquinho-server/internal/service"
)

// Record is the API response model for a monthly record.
type Record struct {
	ID             string `json:"id" doc:"Record id, always equal to month"`
	Month          string `json:"month" doc:"Calendar month, YYYY-MM"`
	Income         string `json:"income" doc:"Decimal income for the month"`
	Expenses       string `json:"expenses" doc:"Decimal expenses for the month"`
	SavingsBalance string `json:"savingsBalance" doc:"Decimal savings balance at the end of the month"`
	UpdatedAt      string `json:"updatedAt,omitempty" doc:"RFC3339 time of the last write"`
}

func fromService(r service.Record) Record {
	out := Record{
		ID:             r.ID,
		Month:          r.Month,
		Income:         r.Income.StringFixed(2),
		Expenses:       r.Expenses.StringFixed(2),
		SavingsBalance: r.SavingsBalance.StringFixed(2),
	}
	if !r.UpdatedAt.IsZero() {
		out.UpdatedAt = r.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

// actionProcessor queues writes on the operator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
