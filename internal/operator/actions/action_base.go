package actions

import (
	"context"

	"github.com/carson-networks/porquinho-server/internal/service"
)

// RecordWriter is the write side of the record service.
type RecordWriter interface {
	Save(ctx context.Context, record service.Record) (service.SaveResult, error)
	Delete(ctx context.Context, month string) (service.Source, error)
	Sync(ctx context.Context) (service.SyncResult, error)
}

// IAction is a unit of work run by an operator. Results are written back
// onto the action itself.
type IAction interface {
	Perform(ctx context.Context, writer RecordWriter) error
}
