package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ryzendominyx-cloud/finance-app/internal/models"
)

// TransactionRequest is the body for creating or editing a transaction.
type TransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Kind        models.TransactionKind `json:"kind"`
}

func (req *TransactionRequest) valid() bool {
	if !req.Amount.GreaterThan(decimal.Zero) || req.Description == "" {
		return false
	}
	if req.Kind != models.KindExpense && req.Kind != models.KindIncome {
		return false
	}
	return models.ValidCategory(req.Category)
}

// ListTransactions handles GET /api/transactions, most-recent-first.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Transactions())
}

// CreateTransaction handles POST /api/transactions.
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.valid() {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tx := models.NewTransaction(req.Amount, req.Description, req.Category, req.Kind)
	h.store.AddTransaction(tx)
	respondJSON(w, http.StatusCreated, tx)
}

// EditTransaction handles PUT /api/transactions/{id}. An unknown id leaves
// the collection unchanged.
func (h *Handler) EditTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.valid() {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	for _, existing := range h.store.Transactions() {
		if existing.ID == id {
			existing.Amount = req.Amount
			existing.Description = req.Description
			existing.Category = req.Category
			existing.Kind = req.Kind
			h.store.EditTransaction(existing)
			respondJSON(w, http.StatusOK, existing)
			return
		}
	}
	http.Error(w, "Transaction not found", http.StatusNotFound)
}

// DeleteTransaction handles DELETE /api/transactions/{id}.
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteTransaction(chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
