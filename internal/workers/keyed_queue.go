// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-secure-store/internal/logger"
)

// ErrQueueStopped is returned by [KeyedQueue.Enqueue] after Stop.
var ErrQueueStopped = errors.New("queue is stopped")

// KeyedQueue runs jobs in the background with a single pending slot per
// key.
//
// Jobs for the same key never run concurrently. While a job for a key is
// running, a newly enqueued job for that key replaces whatever job was still
// waiting, so the last job enqueued for a key is always the last one to run.
// Jobs for different keys run in parallel.
type KeyedQueue struct {
	logger *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	slots      map[string]*slot
	active     int
	idle       chan struct{}
	stopped    bool
	superseded int
}

type slot struct {
	pending Job
}

// NewKeyedQueue constructs an idle queue. Job failures are logged on log.
func NewKeyedQueue(log *logger.Logger) *KeyedQueue {
	ctx, cancel := context.WithCancel(context.Background())
	return &KeyedQueue{
		logger: log,
		ctx:    ctx,
		cancel: cancel,
		slots:  make(map[string]*slot),
	}
}

// Enqueue schedules job for key. It never blocks on the job itself.
func (q *KeyedQueue) Enqueue(key string, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return ErrQueueStopped
	}

	if s, running := q.slots[key]; running {
		if s.pending != nil {
			q.superseded++
		}
		s.pending = job
		return nil
	}

	q.slots[key] = &slot{}
	if q.active == 0 {
		q.idle = make(chan struct{})
	}
	q.active++

	go q.drain(key, job)
	return nil
}

func (q *KeyedQueue) drain(key string, job Job) {
	for {
		if err := job(q.ctx); err != nil {
			q.logger.ForEntry(key).Warn().Err(err).
				Str("func", "KeyedQueue.drain").
				Msg("background job failed")
		}

		q.mu.Lock()
		s := q.slots[key]
		if s.pending != nil {
			job = s.pending
			s.pending = nil
			q.mu.Unlock()
			continue
		}

		delete(q.slots, key)
		q.active--
		if q.active == 0 {
			close(q.idle)
		}
		q.mu.Unlock()
		return
	}
}

// Wait blocks until no job is running or pending, or ctx is done.
func (q *KeyedQueue) Wait(ctx context.Context) error {
	q.mu.Lock()
	if q.active == 0 {
		q.mu.Unlock()
		return nil
	}
	idle := q.idle
	q.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop rejects new jobs and waits for the queued ones. If ctx expires
// first, the context passed to running jobs is canceled.
func (q *KeyedQueue) Stop(ctx context.Context) error {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()

	err := q.Wait(ctx)
	q.cancel()
	return err
}

// Superseded reports how many pending jobs were replaced before they ran.
func (q *KeyedQueue) Superseded() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.superseded
}
