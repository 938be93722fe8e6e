package handlers

import "net/http"

// MarketQuote handles GET /api/market/quote.
func (h *Handler) MarketQuote(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.sim.Quote())
}

// MarketBuy handles POST /api/market/buy: one share at the current price.
func (h *Handler) MarketBuy(w http.ResponseWriter, r *http.Request) {
	if !h.sim.Buy() {
		http.Error(w, "Insufficient balance", http.StatusUnprocessableEntity)
		return
	}
	respondJSON(w, http.StatusOK, h.sim.Quote())
}

// MarketSell handles POST /api/market/sell.
func (h *Handler) MarketSell(w http.ResponseWriter, r *http.Request) {
	if !h.sim.Sell() {
		http.Error(w, "No shares to sell", http.StatusUnprocessableEntity)
		return
	}
	respondJSON(w, http.StatusOK, h.sim.Quote())
}
