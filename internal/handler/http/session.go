package http

import (
	"net/http"

	"github.com/MKhiriev/go-secure-store/internal/app"
	"github.com/MKhiriev/go-secure-store/internal/logger"
	"github.com/MKhiriev/go-secure-store/internal/utils"
)

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.openSession").Msg("no user id in request context")
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	if err := h.services.SessionService.Open(r.Context(), userID); err != nil {
		log.Err(err).Str("func", "*Handler.openSession").Msg("error opening secure store session")
		h.writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, h.services.SecureStore.Status(), http.StatusOK)
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SessionService.Close(r.Context()); err != nil {
		// the session is cleared even when pending writes did not finish
		logger.FromRequest(r).Err(err).Str("func", "*Handler.closeSession").Msg("error closing secure store session")
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sessionStatus(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.SecureStore.Status(), http.StatusOK)
}
