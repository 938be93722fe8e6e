package handlers

import (
	"errors"
	"net/http"

	"github.com/ryzendominyx-cloud/finance-app/internal/voice"
)

// VoiceStart handles POST /api/voice/start. At most one live session.
func (h *Handler) VoiceStart(w http.ResponseWriter, r *http.Request) {
	sess, err := h.voice.Start()
	if err != nil {
		if errors.Is(err, voice.ErrSessionActive) {
			http.Error(w, "A live session is already active", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to start session", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

// VoiceStop handles POST /api/voice/stop. Safe to call with no session.
func (h *Handler) VoiceStop(w http.ResponseWriter, r *http.Request) {
	h.voice.Stop()
	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
