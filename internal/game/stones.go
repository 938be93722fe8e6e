// Package game derives the six achievement stones and the experience/level
// progression from the raw collections. Everything here is a pure function;
// the store composes DeriveStones, StoneBonus and AddXP after each mutation.
package game

import (
	"github.com/shopspring/decimal"

	"github.com/ryzendominyx-cloud/finance-app/internal/models"
)

// One-time experience bonus per stone, awarded on its false→true edge.
// Mind deliberately has no bonus.
const (
	BonusPower   = 500
	BonusSpace   = 200
	BonusReality = 1000
	BonusTime    = 100
	BonusSoul    = 300
)

// DeriveStones computes the stone record from the current collections alone.
// It carries no history: a stone flips back to false when its predicate
// stops holding.
func DeriveStones(
	transactions []models.Transaction,
	habits []models.Habit,
	investments []models.Investment,
	messages []models.ChatMessage,
) models.Stones {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range transactions {
		switch tx.Kind {
		case models.KindIncome:
			income = income.Add(tx.Amount)
		case models.KindExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}

	completed := 0
	for _, h := range habits {
		if h.Completed {
			completed++
		}
	}

	usedChat := false
	for _, m := range messages {
		if m.Role == models.RoleUser {
			usedChat = true
			break
		}
	}

	return models.Stones{
		Power:   income.GreaterThan(expenses) && income.GreaterThan(decimal.Zero),
		Space:   len(habits) > 0 && completed*2 >= len(habits),
		Reality: len(investments) > 0,
		Time:    usedChat,
		Mind:    income.Sub(expenses).GreaterThan(decimal.Zero),
		Soul:    len(habits) >= 3,
	}
}

// StoneBonus sums the one-time bonuses for every stone that turned true
// between prev and cur. Each stone is compared against its own previous
// value; a stone turning false awards nothing and costs nothing.
func StoneBonus(prev, cur models.Stones) int {
	bonus := 0
	if cur.Power && !prev.Power {
		bonus += BonusPower
	}
	if cur.Space && !prev.Space {
		bonus += BonusSpace
	}
	if cur.Reality && !prev.Reality {
		bonus += BonusReality
	}
	if cur.Time && !prev.Time {
		bonus += BonusTime
	}
	if cur.Soul && !prev.Soul {
		bonus += BonusSoul
	}
	return bonus
}
