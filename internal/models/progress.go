package models

// Rank titles, assigned by level thresholds in game.RankForLevel.
const (
	RankIniciado     = "Iniciado"
	RankConquistador = "Conquistador"
	RankGeneral      = "General da Ordem"
	RankTita         = "Titã Louco"
)

// Progress is the singleton experience/level record.
type Progress struct {
	XP        int    `json:"xp"`
	Level     int    `json:"level"`
	RankTitle string `json:"rankTitle"`
}

// DefaultProgress is the starting record for a fresh snapshot.
func DefaultProgress() Progress {
	return Progress{XP: 0, Level: 1, RankTitle: RankIniciado}
}

// Stones is the singleton achievement-flag record. Each field is a pure
// predicate over the current collections and can flip back to false when the
// underlying data regresses.
type Stones struct {
	Power   bool `json:"power"`
	Space   bool `json:"space"`
	Reality bool `json:"reality"`
	Soul    bool `json:"soul"`
	Time    bool `json:"time"`
	Mind    bool `json:"mind"`
}

// All reports whether every stone is collected.
func (s Stones) All() bool {
	return s.Power && s.Space && s.Reality && s.Soul && s.Time && s.Mind
}
