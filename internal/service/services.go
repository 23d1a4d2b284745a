package service

import (
	"github.com/MKhiriev/go-secure-store/internal/config"
	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/store"
	"github.com/MKhiriev/go-secure-store/internal/workers"
)

// Services groups the services used by the transport layer.
type Services struct {
	SecureStore    SecureStore
	SessionService SessionService
	RemoteSettings RemoteSettingsService
	RemoteSyncJob  RemoteSyncJob
}

// NewServices wires the services. documents may be nil, in which case the
// remote settings services are left nil.
func NewServices(keyChain crypto.KeyChainService, storage store.KeyValueStorage, documents store.DocumentRepository, queue *workers.KeyedQueue, cfg config.StructuredConfig, log *logger.Logger) *Services {
	secureStore := NewSecureStore(keyChain, storage, queue, log)

	services := &Services{SecureStore: secureStore}
	if documents != nil {
		services.RemoteSettings = NewRemoteSettingsService(secureStore, documents, log)
		services.RemoteSyncJob = NewRemoteSyncJob(services.RemoteSettings, log)
	}
	services.SessionService = NewSessionService(secureStore, services.RemoteSettings, services.RemoteSyncJob, cfg.Remote.SyncInterval, log)

	return services
}
