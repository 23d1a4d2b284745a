package http

import (
	"time"

	"github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/service"
)

type Handler struct {
	services *service.Services

	tokens         config.Auth
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		tokens:         cfg.Auth,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
