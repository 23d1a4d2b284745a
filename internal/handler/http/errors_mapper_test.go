package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/internal/service"
	"github.com/MKhiriev/go-secure-store/internal/utils"
	"github.com/MKhiriev/go-secure-store/internal/workers"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrNotInitialized, http.StatusConflict},
		{service.ErrUnknownEntry, http.StatusNotFound},
		{service.ErrEmptyUserID, http.StatusBadRequest},
		{fmt.Errorf("%w: eof", utils.ErrInvalidJSON), http.StatusBadRequest},
		{crypto.ErrUnsupportedVersion, http.StatusBadRequest},
		{crypto.ErrAuthentication, http.StatusUnprocessableEntity},
		{crypto.ErrPlatformUnavailable, http.StatusServiceUnavailable},
		{workers.ErrQueueStopped, http.StatusServiceUnavailable},
		{fmt.Errorf("flush: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
