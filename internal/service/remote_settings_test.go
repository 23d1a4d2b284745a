package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/mock"
	"github.com/MKhiriev/go-secure-store/internal/store"
	"github.com/MKhiriev/go-secure-store/models"
)

func newTestRemoteSettings(ctrl *gomock.Controller) (RemoteSettingsService, *mock.MockSecureStore, *mock.MockDocumentRepository) {
	secureStore := mock.NewMockSecureStore(ctrl)
	documents := mock.NewMockDocumentRepository(ctrl)
	return NewRemoteSettingsService(secureStore, documents, logger.Nop()), secureStore, documents
}

func TestRemoteSettings_Push(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secureStore, documents := newTestRemoteSettings(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		secureStore.EXPECT().IsInitialized().Return(true),
		secureStore.EXPECT().Get(models.IntegrationConfig).Return(`{"slack":"xoxb"}`),
		secureStore.EXPECT().EncryptValue(ctx, `{"slack":"xoxb"}`).Return("enc:v1:n:c", nil),
		documents.EXPECT().SaveDocument(ctx, "user-42", "integration-config", "enc:v1:n:c").Return(nil),
	)

	require.NoError(t, svc.Push(ctx, "user-42"))
}

func TestRemoteSettings_Push_NothingToPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secureStore, _ := newTestRemoteSettings(ctrl)

	secureStore.EXPECT().IsInitialized().Return(true)
	secureStore.EXPECT().Get(models.IntegrationConfig).Return("")

	assert.NoError(t, svc.Push(context.Background(), "user-42"))
}

func TestRemoteSettings_Push_NotInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secureStore, _ := newTestRemoteSettings(ctrl)

	secureStore.EXPECT().IsInitialized().Return(false)

	assert.ErrorIs(t, svc.Push(context.Background(), "user-42"), ErrNotInitialized)
}

func TestRemoteSettings_Push_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secureStore, documents := newTestRemoteSettings(ctrl)

	secureStore.EXPECT().IsInitialized().Return(true)
	secureStore.EXPECT().Get(models.IntegrationConfig).Return("{}")
	secureStore.EXPECT().EncryptValue(gomock.Any(), "{}").Return("enc:v1:n:c", nil)
	documents.EXPECT().SaveDocument(gomock.Any(), "user-42", "integration-config", "enc:v1:n:c").Return(store.ErrExecutingStatement)

	assert.ErrorIs(t, svc.Push(context.Background(), "user-42"), store.ErrExecutingStatement)
}

func TestRemoteSettings_Pull(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secureStore, documents := newTestRemoteSettings(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		secureStore.EXPECT().IsInitialized().Return(true),
		documents.EXPECT().LoadDocument(ctx, "user-42", "integration-config").Return("enc:v1:n:c", nil),
		secureStore.EXPECT().DecryptValue(ctx, "enc:v1:n:c").Return("{}", nil),
		secureStore.EXPECT().Set(ctx, models.IntegrationConfig, "{}"),
	)

	require.NoError(t, svc.Pull(ctx, "user-42"))
}

func TestRemoteSettings_Pull_NoDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secureStore, documents := newTestRemoteSettings(ctrl)

	secureStore.EXPECT().IsInitialized().Return(true)
	documents.EXPECT().LoadDocument(gomock.Any(), "user-42", "integration-config").Return("", store.ErrDocumentNotFound)

	assert.NoError(t, svc.Pull(context.Background(), "user-42"))
}

func TestRemoteSettings_Pull_DecryptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secureStore, documents := newTestRemoteSettings(ctrl)
	decryptErr := errors.New("record failed authentication")

	secureStore.EXPECT().IsInitialized().Return(true)
	documents.EXPECT().LoadDocument(gomock.Any(), "user-42", "integration-config").Return("enc:v1:n:c", nil)
	secureStore.EXPECT().DecryptValue(gomock.Any(), "enc:v1:n:c").Return("", decryptErr)

	assert.ErrorIs(t, svc.Pull(context.Background(), "user-42"), decryptErr)
}

func TestRemoteSettings_Pull_NotInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, secureStore, _ := newTestRemoteSettings(ctrl)

	secureStore.EXPECT().IsInitialized().Return(false)

	assert.ErrorIs(t, svc.Pull(context.Background(), "user-42"), ErrNotInitialized)
}
