package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secure-store/internal/app"
	"github.com/MKhiriev/go-secure-store/internal/crypto"
	"github.com/MKhiriev/go-secure-store/internal/service"
	"github.com/MKhiriev/go-secure-store/internal/utils"
	"github.com/MKhiriev/go-secure-store/internal/workers"
)

var errorStatusMap = map[error]int{
	service.ErrNotInitialized: http.StatusConflict,
	service.ErrUnknownEntry:   http.StatusNotFound,
	service.ErrEmptyUserID:    http.StatusBadRequest,

	utils.ErrInvalidJSON: http.StatusBadRequest,

	crypto.ErrFormat:              http.StatusBadRequest,
	crypto.ErrAuthentication:      http.StatusUnprocessableEntity,
	crypto.ErrPlatformUnavailable: http.StatusServiceUnavailable,

	workers.ErrQueueStopped:  http.StatusServiceUnavailable,
	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError writes the mapped status. Internal failures get a
// generic message so storage details never reach the client.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = app.MsgInternalServerError
	}
	utils.WriteError(w, message, status)
}
