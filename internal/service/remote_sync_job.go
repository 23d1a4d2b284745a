package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-secure-store/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type remoteSyncJob struct {
	remote RemoteSettingsService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRemoteSyncJob creates a job that calls remote.Push on a ticker. The job
// is idle until Start is called.
func NewRemoteSyncJob(remote RemoteSettingsService, log *logger.Logger) RemoteSyncJob {
	return &remoteSyncJob{remote: remote, logger: log}
}

// Start implements RemoteSyncJob. It stops any previously running job, then
// launches a goroutine that pushes every interval. A non-positive interval
// defaults to 5 minutes. The goroutine exits when ctx is cancelled or Stop
// is called.
func (j *remoteSyncJob) Start(ctx context.Context, userID string, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	_ = j.Stop(context.Background())

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	j.cancel = cancel
	j.done = done
	j.mu.Unlock()

	go func() {
		defer close(done)
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.remote.Push(jobCtx, userID); err != nil {
					j.logger.Warn().Err(err).
						Str("func", "remoteSyncJob.Start").
						Msg("periodic push failed")
				}
			}
		}
	}()
}

// Stop implements RemoteSyncJob. It cancels the running goroutine and waits
// for it to exit or for ctx to be done. Safe to call when not running.
func (j *remoteSyncJob) Stop(ctx context.Context) error {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
