package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type GoalRequest struct {
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	Deadline string          `json:"deadline"`
}

type GoalProgressRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// ListGoals handles GET /api/goals.
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Goals())
}

// CreateGoal handles POST /api/goals.
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || !req.Target.GreaterThan(decimal.Zero) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	goal := h.store.AddGoal(req.Name, req.Target, req.Current, req.Deadline)
	respondJSON(w, http.StatusCreated, goal)
}

// UpdateGoalProgress handles PATCH /api/goals/{id}/progress. The current
// amount is clamped between zero and the target.
func (h *Handler) UpdateGoalProgress(w http.ResponseWriter, r *http.Request) {
	var req GoalProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	h.store.UpdateGoalProgress(chi.URLParam(r, "id"), req.Delta)
	respondJSON(w, http.StatusOK, h.store.Goals())
}

// DeleteGoal handles DELETE /api/goals/{id}.
func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteGoal(chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
