package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ryzendominyx-cloud/finance-app/internal/models"
)

type InvestmentRequest struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}

// ListInvestments handles GET /api/investments.
func (h *Handler) ListInvestments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Investments())
}

// CreateInvestment handles POST /api/investments.
func (h *Handler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	var req InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || !req.Amount.GreaterThan(decimal.Zero) || !models.ValidInvestmentCategory(req.Category) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	inv := h.store.AddInvestment(req.Name, req.Amount, req.Category)
	respondJSON(w, http.StatusCreated, inv)
}
