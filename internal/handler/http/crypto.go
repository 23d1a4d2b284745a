package http

import (
	"net/http"

	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/utils"
)

func (h *Handler) encryptValue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req valueRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.encryptValue").Msg("failed to decode JSON")
		h.writeServiceError(w, err)
		return
	}

	record, err := h.services.SecureStore.EncryptValue(r.Context(), req.Value)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encryptValue").Msg("error encrypting value")
		h.writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, valueResponse{Value: record}, http.StatusOK)
}

func (h *Handler) decryptValue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req valueRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.decryptValue").Msg("failed to decode JSON")
		h.writeServiceError(w, err)
		return
	}

	plaintext, err := h.services.SecureStore.DecryptValue(r.Context(), req.Value)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decryptValue").Msg("error decrypting value")
		h.writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, valueResponse{Value: plaintext}, http.StatusOK)
}
