package actions

import (
	"context"

	"github.com/carson-networks/porquinho-server/internal/service"
)

// SyncRecords pushes the local tier to the remote one.
type SyncRecords struct {
	Result service.SyncResult
}

func (s *SyncRecords) Perform(ctx context.Context, writer RecordWriter) error {
	result, err := writer.Sync(ctx)
	if err != nil {
		return err
	}

	s.Result = result
	return nil
}
