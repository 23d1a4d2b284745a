package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/store"
	"github.com/MKhiriev/go-secure-store/models"
)

// remoteSettingsService keeps the integration settings in the remote
// document store. The document body is always an encrypted record.
type remoteSettingsService struct {
	secureStore SecureStore
	documents   store.DocumentRepository
	logger      *logger.Logger
}

// NewRemoteSettingsService constructs a [RemoteSettingsService].
func NewRemoteSettingsService(secureStore SecureStore, documents store.DocumentRepository, log *logger.Logger) RemoteSettingsService {
	return &remoteSettingsService{
		secureStore: secureStore,
		documents:   documents,
		logger:      log,
	}
}

// Push encrypts the cached integration settings and saves them remotely.
// Nothing is written when the settings are unset.
func (r *remoteSettingsService) Push(ctx context.Context, userID string) error {
	if !r.secureStore.IsInitialized() {
		return ErrNotInitialized
	}

	value := r.secureStore.Get(models.IntegrationConfig)
	if value == "" {
		return nil
	}

	body, err := r.secureStore.EncryptValue(ctx, value)
	if err != nil {
		return fmt.Errorf("encrypting integration settings: %w", err)
	}

	if err = r.documents.SaveDocument(ctx, userID, models.IntegrationConfig.String(), body); err != nil {
		return fmt.Errorf("pushing integration settings: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "remoteSettingsService.Push").
		Msg("integration settings pushed")
	return nil
}

// Pull loads the remote integration settings into the store. A missing
// document leaves the local value untouched.
func (r *remoteSettingsService) Pull(ctx context.Context, userID string) error {
	if !r.secureStore.IsInitialized() {
		return ErrNotInitialized
	}

	body, err := r.documents.LoadDocument(ctx, userID, models.IntegrationConfig.String())
	if errors.Is(err, store.ErrDocumentNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("pulling integration settings: %w", err)
	}

	value, err := r.secureStore.DecryptValue(ctx, body)
	if err != nil {
		return fmt.Errorf("decrypting integration settings: %w", err)
	}

	r.secureStore.Set(ctx, models.IntegrationConfig, value)
	return nil
}
