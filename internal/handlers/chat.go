package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/ryzendominyx-cloud/finance-app/internal/models"
)

// ChatRequest is the incoming chat message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the advisor's reply and, when a transaction was
// inferred from the message, the record that was created for it.
type ChatResponse struct {
	Reply         string              `json:"reply"`
	Transaction   *models.Transaction `json:"transaction,omitempty"`
	AmountDisplay string              `json:"amount_display,omitempty"`
}

// Chat handles POST /api/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// One advice request at a time. A second one is rejected, not queued.
	select {
	case h.advicePending <- struct{}{}:
		defer func() { <-h.advicePending }()
	default:
		http.Error(w, "An advice request is already in progress", http.StatusConflict)
		return
	}

	history := h.store.Messages()
	h.store.AppendMessage(models.NewChatMessage(models.RoleUser, req.Message))

	// Advise never fails: transport or parse errors arrive here as a
	// fallback reply with no transaction.
	advice := h.advisor.Advise(r.Context(), req.Message, history)

	resp := ChatResponse{Reply: advice.Reply}
	if inferred := advice.Transaction; inferred != nil {
		tx := models.NewTransaction(
			decimal.NewFromFloat(inferred.Amount),
			inferred.Description,
			inferred.Category,
			inferred.Kind,
		)
		h.store.AddTransaction(tx)
		resp.Transaction = &tx
		resp.AmountDisplay = money.NewFromFloat(inferred.Amount, money.BRL).Display()
	}

	h.store.AppendMessage(models.NewChatMessage(models.RoleAssistant, advice.Reply))

	respondJSON(w, http.StatusOK, resp)
}

// ChatMessages handles GET /api/chat/messages.
func (h *Handler) ChatMessages(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Messages())
}
