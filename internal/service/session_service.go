package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-secure-store/internal/logger"
)

type sessionService struct {
	secureStore  SecureStore
	remote       RemoteSettingsService
	syncJob      RemoteSyncJob
	syncInterval time.Duration
	logger       *logger.Logger
}

// NewSessionService constructs a [SessionService]. remote and syncJob may be
// nil when no remote document store is configured.
func NewSessionService(secureStore SecureStore, remote RemoteSettingsService, syncJob RemoteSyncJob, syncInterval time.Duration, log *logger.Logger) SessionService {
	return &sessionService{
		secureStore:  secureStore,
		remote:       remote,
		syncJob:      syncJob,
		syncInterval: syncInterval,
		logger:       log,
	}
}

func (s *sessionService) Open(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	if err := s.secureStore.Initialize(ctx, userID); err != nil {
		return err
	}

	if s.remote != nil {
		if err := s.remote.Pull(ctx, userID); err != nil {
			// the local cache stays usable
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "sessionService.Open").
				Msg("failed to pull remote integration settings")
		}
	}

	if s.syncJob != nil {
		s.syncJob.Start(context.WithoutCancel(ctx), userID, s.syncInterval)
	}

	return nil
}

func (s *sessionService) Close(ctx context.Context) error {
	var errs []error
	if s.syncJob != nil {
		errs = append(errs, s.syncJob.Stop(ctx))
	}
	errs = append(errs, s.secureStore.Flush(ctx))
	s.secureStore.Clear()

	return errors.Join(errs...)
}
