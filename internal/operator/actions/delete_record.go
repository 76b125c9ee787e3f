package actions

import (
	"context"

	"github.com/carson-networks/porquinho-server/internal/service"
)

type DeleteRecord struct {
	Month string

	Source service.Source
}

func (d *DeleteRecord) Perform(ctx context.Context, writer RecordWriter) error {
	source, err := writer.Delete(ctx, d.Month)
	if err != nil {
		return err
	}

	d.Source = source
	return nil
}
