package game

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ryzendominyx-cloud/finance-app/internal/models"
)

func tx(amount float64, kind models.TransactionKind) models.Transaction {
	return models.NewTransaction(decimal.NewFromFloat(amount), "t", "Outros", kind)
}

func TestDeriveStonesEmpty(t *testing.T) {
	stones := DeriveStones(nil, nil, nil, nil)
	assert.Equal(t, models.Stones{}, stones)
}

func TestDeriveStonesPowerAndMind(t *testing.T) {
	txs := []models.Transaction{
		tx(1200, models.KindIncome),
		tx(1000, models.KindExpense),
	}
	stones := DeriveStones(txs, nil, nil, nil)
	assert.True(t, stones.Power, "income 1200 > expenses 1000")
	assert.True(t, stones.Mind, "balance 200 > 0")
	assert.False(t, stones.Reality)
	assert.False(t, stones.Time)
}

func TestDeriveStonesPowerNeedsIncome(t *testing.T) {
	// No transactions at all: income == expenses == 0, power stays false
	// even though income is not strictly less than expenses.
	stones := DeriveStones(nil, nil, nil, nil)
	assert.False(t, stones.Power)
	assert.False(t, stones.Mind)
}

func TestDeriveStonesSpaceZeroHabits(t *testing.T) {
	stones := DeriveStones(nil, []models.Habit{}, nil, nil)
	assert.False(t, stones.Space, "empty habit collection never satisfies space")
}

func TestDeriveStonesSpaceAndSoul(t *testing.T) {
	habits := []models.Habit{
		{ID: "a", Completed: true},
		{ID: "b", Completed: true},
		{ID: "c", Completed: false},
	}
	stones := DeriveStones(nil, habits, nil, nil)
	assert.True(t, stones.Space, "2/3 completed >= 0.5")
	assert.True(t, stones.Soul, "three habits defined")

	stones = DeriveStones(nil, habits[:2], nil, nil)
	assert.True(t, stones.Space)
	assert.False(t, stones.Soul, "only two habits")
}

func TestDeriveStonesSpaceExactHalf(t *testing.T) {
	habits := []models.Habit{
		{ID: "a", Completed: true},
		{ID: "b", Completed: false},
	}
	stones := DeriveStones(nil, habits, nil, nil)
	assert.True(t, stones.Space, "exactly 50% counts")
}

func TestDeriveStonesRealityAndTime(t *testing.T) {
	invs := []models.Investment{models.NewInvestment("CDB", decimal.NewFromInt(100), "Renda Fixa")}
	msgs := []models.ChatMessage{models.NewChatMessage(models.RoleAssistant, "oi")}

	stones := DeriveStones(nil, nil, invs, msgs)
	assert.True(t, stones.Reality)
	assert.False(t, stones.Time, "assistant messages alone do not count")

	msgs = append(msgs, models.NewChatMessage(models.RoleUser, "oi"))
	stones = DeriveStones(nil, nil, invs, msgs)
	assert.True(t, stones.Time)
}

func TestDeriveStonesRegress(t *testing.T) {
	invs := []models.Investment{models.NewInvestment("CDB", decimal.NewFromInt(100), "Renda Fixa")}
	assert.True(t, DeriveStones(nil, nil, invs, nil).Reality)
	// Stones carry no history: removing the data clears the stone.
	assert.False(t, DeriveStones(nil, nil, nil, nil).Reality)
}

func TestStoneBonusEdgesOnly(t *testing.T) {
	prev := models.Stones{}
	cur := models.Stones{Power: true, Reality: true, Mind: true}
	assert.Equal(t, BonusPower+BonusReality, StoneBonus(prev, cur), "mind carries no bonus")

	// Same record twice: no edges, no bonus.
	assert.Equal(t, 0, StoneBonus(cur, cur))

	// true→false is not penalized and re-awarding requires a fresh edge.
	assert.Equal(t, 0, StoneBonus(cur, models.Stones{}))
	assert.Equal(t, BonusPower+BonusReality, StoneBonus(models.Stones{}, cur))
}

func TestStoneBonusAllAtOnce(t *testing.T) {
	all := models.Stones{Power: true, Space: true, Reality: true, Soul: true, Time: true, Mind: true}
	assert.True(t, all.All())
	want := BonusPower + BonusSpace + BonusReality + BonusTime + BonusSoul
	assert.Equal(t, want, StoneBonus(models.Stones{}, all))
}
