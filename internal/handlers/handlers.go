package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ryzendominyx-cloud/finance-app/internal/advisor"
	"github.com/ryzendominyx-cloud/finance-app/internal/market"
	"github.com/ryzendominyx-cloud/finance-app/internal/store"
	"github.com/ryzendominyx-cloud/finance-app/internal/voice"
)

type Handler struct {
	store   *store.Store
	advisor advisor.Advisor
	sim     *market.Simulator
	voice   *voice.Manager

	// advicePending gates the chat endpoint: one advice request in flight
	// at a time, no queue.
	advicePending chan struct{}
}

func New(st *store.Store, adv advisor.Advisor, sim *market.Simulator, vc *voice.Manager) *Handler {
	return &Handler{
		store:         st,
		advisor:       adv,
		sim:           sim,
		voice:         vc,
		advicePending: make(chan struct{}, 1),
	}
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
