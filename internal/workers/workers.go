package workers

import (
	"context"
	"errors"
)

// Workers stops a set of workers together.
type Workers struct {
	workers []Worker
}

// New groups ws. Nil workers are skipped.
func New(ws ...Worker) *Workers {
	group := &Workers{workers: make([]Worker, 0, len(ws))}
	for _, w := range ws {
		if w != nil {
			group.workers = append(group.workers, w)
		}
	}
	return group
}

// Stop stops the workers in order and joins their errors.
func (w *Workers) Stop(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := worker.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
