package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/internal/handler/http"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/server"
	"github.com/MKhiriev/go-secure-store/internal/service"
	"github.com/MKhiriev/go-secure-store/internal/store"
	"github.com/MKhiriev/go-secure-store/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("secure-store", cfg.Log.Level)
	log.Debug().
		Str("storage_kind", cfg.Storage.Kind).
		Str("http_address", cfg.Server.HTTPAddress).
		Bool("remote", cfg.Remote.DSN != "").
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, *cfg, log); err != nil {
		log.Error().Err(err).Msg("secure store stopped with error")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) error {
	storage, err := store.NewStorage(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storage: %w", err)
	}
	defer closeWithLog(storage.Close, "storage", log)

	documents, err := store.NewDocuments(ctx, cfg.Remote, log)
	if err != nil {
		return fmt.Errorf("error creating remote document repository: %w", err)
	}
	if documents != nil {
		defer closeWithLog(documents.Close, "remote document repository", log)
	}

	keyChain, err := crypto.NewKeyChainService(cfg.Crypto)
	if err != nil {
		return fmt.Errorf("error creating keychain: %w", err)
	}

	queue := workers.NewKeyedQueue(log)
	services := service.NewServices(keyChain, storage, documents, queue, cfg, log)

	handler := http.NewHandler(services, cfg, log)
	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	runErr := server.Run(ctx, srv, cfg.Server.ShutdownTimeout, log)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	// the session is closed first so its pending writes go through the queue
	closeErr := services.SessionService.Close(shutdownCtx)
	stopErr := workers.New(services.RemoteSyncJob, queue).Stop(shutdownCtx)

	return errors.Join(runErr, closeErr, stopErr)
}

func closeWithLog(closeFn func() error, name string, log *logger.Logger) {
	if err := closeFn(); err != nil {
		log.Error().Err(err).Str("resource", name).Msg("error closing resource")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
