package server

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/internal/logger"
)

// NewServer builds the HTTP server for handler. An empty address is a
// misconfiguration.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || handler == nil {
		return nil, errNoServersAreCreated
	}

	return newHTTPServer(handler, cfg, logger), nil
}

// Run serves with srv until ctx is done or the server fails, then shuts it
// down within shutdownTimeout. The first error is returned.
func Run(ctx context.Context, srv Server, shutdownTimeout time.Duration, logger *logger.Logger) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(srv.RunServer)

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info().Msg("server Shutdown gracefully")
	return nil
}
