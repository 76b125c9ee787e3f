package actions

import (
	"context"

	"github.com/carson-networks/porquinho-server/internal/service"
)

type SaveRecord struct {
	Record service.Record

	Result service.SaveResult
}

func (s *SaveRecord) Perform(ctx context.Context, writer RecordWriter) error {
	result, err := writer.Save(ctx, s.Record)
	if err != nil {
		return err
	}

	s.Result = result
	return nil
}
