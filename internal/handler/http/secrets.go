package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/service"
	"github.com/MKhiriev/go-secure-store/internal/utils"
	"github.com/MKhiriev/go-secure-store/models"
)

type secretResponse struct {
	Name  models.EntryName `json:"name"`
	Value string           `json:"value"`
}

type valueRequest struct {
	Value string `json:"value"`
}

type valueResponse struct {
	Value string `json:"value"`
}

// entryFromURL resolves the {name} URL parameter against the closed list of
// sensitive entries and writes 404 when it is not on it.
func (h *Handler) entryFromURL(w http.ResponseWriter, r *http.Request) (models.EntryName, bool) {
	name := models.EntryName(chi.URLParam(r, "name"))
	if !models.IsSensitive(name) {
		logger.FromRequest(r).Warn().Str("entry", name.String()).Msg("request for unknown entry")
		h.writeServiceError(w, service.ErrUnknownEntry)
		return "", false
	}
	return name, true
}

func (h *Handler) getSecret(w http.ResponseWriter, r *http.Request) {
	name, ok := h.entryFromURL(w, r)
	if !ok {
		return
	}
	if !h.services.SecureStore.IsInitialized() {
		h.writeServiceError(w, service.ErrNotInitialized)
		return
	}

	_, _ = utils.WriteJSON(w, secretResponse{Name: name, Value: h.services.SecureStore.Get(name)}, http.StatusOK)
}

func (h *Handler) putSecret(w http.ResponseWriter, r *http.Request) {
	name, ok := h.entryFromURL(w, r)
	if !ok {
		return
	}

	var req valueRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.putSecret").Msg("failed to decode JSON")
		h.writeServiceError(w, err)
		return
	}

	if !h.services.SecureStore.IsInitialized() {
		h.writeServiceError(w, service.ErrNotInitialized)
		return
	}

	h.services.SecureStore.Set(r.Context(), name, req.Value)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteSecret(w http.ResponseWriter, r *http.Request) {
	name, ok := h.entryFromURL(w, r)
	if !ok {
		return
	}

	h.services.SecureStore.Remove(r.Context(), name)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) flushSecrets(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SecureStore.Flush(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.flushSecrets").Msg("error waiting for pending writes")
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
