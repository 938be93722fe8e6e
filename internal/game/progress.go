package game

import "github.com/ryzendominyx-cloud/finance-app/internal/models"

// AddXP returns p with delta experience applied. The threshold for the next
// level is level*1000; crossing it advances the level by exactly one per
// call, however large the grant. Rank is recomputed from the resulting
// level, never stored independently.
func AddXP(p models.Progress, delta int) models.Progress {
	if delta <= 0 {
		return p
	}
	p.XP += delta
	if p.XP >= p.Level*1000 {
		p.Level++
	}
	p.RankTitle = RankForLevel(p.Level)
	return p
}

// RankForLevel maps a level to its rank title.
func RankForLevel(level int) string {
	switch {
	case level >= 20:
		return models.RankTita
	case level >= 10:
		return models.RankGeneral
	case level >= 5:
		return models.RankConquistador
	default:
		return models.RankIniciado
	}
}
