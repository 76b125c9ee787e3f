package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/porquinho-server/internal/operator/actions"
)

// ErrStopped is returned by Process once the delegator has been stopped.
var ErrStopped = errors.New("operator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
// With a single worker, writes are applied strictly in the order they were queued.
type OperatorDelegator struct {
	writer     actions.RecordWriter
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup

	stateMutex sync.RWMutex
	stopped    bool
}

func NewOperatorDelegator(writer actions.RecordWriter, numWorkers int, queueSize int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = 1000
	}
	return &OperatorDelegator{
		writer:     writer,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.writer, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop drains queued items and waits for the workers to exit.
func (d *OperatorDelegator) Stop() {
	d.stateMutex.Lock()
	if d.stopped {
		d.stateMutex.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.stateMutex.Unlock()

	d.wg.Wait()
}

func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.stateMutex.RLock()
	defer d.stateMutex.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
