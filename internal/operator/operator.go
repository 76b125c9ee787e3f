package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/porquinho-server/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	writer actions.RecordWriter
	queue  chan ActionItem
}

func NewOperator(writer actions.RecordWriter, queue chan ActionItem) *Operator {
	return &Operator{
		writer: writer,
		queue:  queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller may have given up while the item waited in the queue.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := item.action.Perform(item.ctx, o.writer)
	if err != nil {
		logrus.WithError(err).Debugf("Operator.processItem.%T.failed", item.action)
	}
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
