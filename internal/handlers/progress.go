package handlers

import (
	"net/http"
	"sort"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/ryzendominyx-cloud/finance-app/internal/models"
)

// ProgressResponse is the gamification snapshot for the dashboard.
type ProgressResponse struct {
	Progress     models.Progress `json:"progress"`
	Stones       models.Stones   `json:"stones"`
	AllCollected bool            `json:"all_collected"`
	NextLevelXP  int             `json:"next_level_xp"`
}

// GetProgress handles GET /api/progress.
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	p := h.store.Progress()
	stones := h.store.Stones()
	respondJSON(w, http.StatusOK, ProgressResponse{
		Progress:     p,
		Stones:       stones,
		AllCollected: stones.All(),
		NextLevelXP:  p.Level * 1000,
	})
}

// ReportSummary handles GET /api/reports/summary: totals, net result and
// expense spend grouped by category, largest first.
func (h *Handler) ReportSummary(w http.ResponseWriter, r *http.Request) {
	income := decimal.Zero
	expense := decimal.Zero
	byCategory := map[string]decimal.Decimal{}

	for _, tx := range h.store.Transactions() {
		switch tx.Kind {
		case models.KindIncome:
			income = income.Add(tx.Amount)
		case models.KindExpense:
			expense = expense.Add(tx.Amount)
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
		}
	}

	categories := make([]models.CategoryAmount, 0, len(byCategory))
	for cat, amount := range byCategory {
		categories = append(categories, models.CategoryAmount{Category: cat, Amount: amount})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})

	net := income.Sub(expense)
	respondJSON(w, http.StatusOK, models.ReportSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          net,
		NetDisplay:   money.NewFromFloat(net.InexactFloat64(), money.BRL).Display(),
		ByCategory:   categories,
	})
}

// GetTutorial handles GET /api/tutorial.
func (h *Handler) GetTutorial(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{"completed": h.store.TutorialDone()})
}

// DismissTutorial handles POST /api/tutorial/dismiss.
func (h *Handler) DismissTutorial(w http.ResponseWriter, r *http.Request) {
	h.store.SetTutorialDone()
	respondJSON(w, http.StatusOK, map[string]bool{"completed": true})
}
