package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HabitRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ListHabits handles GET /api/habits.
func (h *Handler) ListHabits(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Habits())
}

// CreateHabit handles POST /api/habits.
func (h *Handler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req HabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	habit := h.store.AddHabit(req.Name, req.Icon)
	respondJSON(w, http.StatusCreated, habit)
}

// ToggleHabit handles POST /api/habits/{id}/toggle. An unknown id is a
// no-op on the collection.
func (h *Handler) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	h.store.ToggleHabit(chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, h.store.Habits())
}
