// Package store holds the authoritative in-memory snapshot of the domain
// collections and singleton records, persists each logical group whenever it
// changes, and re-runs the stone evaluator after every mutation.
package store

import (
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/ryzendominyx-cloud/finance-app/internal/game"
	"github.com/ryzendominyx-cloud/finance-app/internal/models"
)

// Backend is the persistence port: whole-group snapshots by key. A missing
// key reads as (nil, nil). Implemented by database.Snapshots in production
// and by Memory in tests.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Snapshot keys, one per logical group. Each group loads and saves
// independently of the others.
const (
	keyTransactions = "transactions"
	keyHabits       = "habits"
	keyInvestments  = "investments"
	keyChat         = "chat"
	keyGoals        = "goals"
	keyProgress     = "progress"
	keyStones       = "stones"
	keyTutorial     = "tutorial_completed"
)

// Experience awarded directly by mutations, independent of stone bonuses.
const (
	xpAddTransaction = 20
	xpToggleHabit    = 50
	xpAddHabit       = 100
	xpUserMessage    = 10
	xpAddInvestment  = 200
)

// Store serializes every mutation-plus-reevaluation sequence behind one
// mutex, so each is atomic with respect to the rest of the system.
type Store struct {
	mu      sync.Mutex
	backend Backend

	transactions []models.Transaction
	habits       []models.Habit
	investments  []models.Investment
	messages     []models.ChatMessage
	goals        []models.Goal
	progress     models.Progress
	stones       models.Stones
	tutorialDone bool
}

// New loads every snapshot group from the backend. Each group falls back to
// its empty default independently: a corrupt transactions snapshot must not
// prevent habits from loading.
func New(backend Backend) *Store {
	s := &Store{
		backend:  backend,
		progress: models.DefaultProgress(),
	}
	s.load(keyTransactions, &s.transactions)
	s.load(keyHabits, &s.habits)
	s.load(keyInvestments, &s.investments)
	s.load(keyChat, &s.messages)
	s.load(keyGoals, &s.goals)
	s.load(keyProgress, &s.progress)
	s.load(keyStones, &s.stones)
	s.load(keyTutorial, &s.tutorialDone)
	return s
}

func (s *Store) load(key string, dst any) {
	raw, err := s.backend.Get(key)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("snapshot load failed, using default")
		return
	}
	if raw == nil {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.WithError(err).WithField("key", key).Warn("snapshot corrupt, using default")
	}
}

// persist saves one group. Write failures degrade to a warning: the
// in-memory mutation has already succeeded and stands.
func (s *Store) persist(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("snapshot encode failed")
		return
	}
	if err := s.backend.Put(key, raw); err != nil {
		log.WithError(err).WithField("key", key).Warn("snapshot save failed")
	}
}

// reevaluate derives the stones from the full current snapshot, sums the
// newly-true stone bonuses with the mutation's own award, and applies the
// total in a single progress update.
func (s *Store) reevaluate(mutationXP int) {
	derived := game.DeriveStones(s.transactions, s.habits, s.investments, s.messages)
	total := mutationXP + game.StoneBonus(s.stones, derived)
	if derived != s.stones {
		s.stones = derived
		s.persist(keyStones, s.stones)
	}
	if total > 0 {
		s.progress = game.AddXP(s.progress, total)
		s.persist(keyProgress, s.progress)
	}
}

// AddTransaction prepends tx so the collection stays most-recent-first.
func (s *Store) AddTransaction(tx models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]models.Transaction{tx}, s.transactions...)
	s.persist(keyTransactions, s.transactions)
	s.reevaluate(xpAddTransaction)
}

// EditTransaction replaces the transaction with a matching id. A miss is a
// silent no-op. Edits never award experience.
func (s *Store) EditTransaction(tx models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == tx.ID {
			s.transactions[i] = tx
			s.persist(keyTransactions, s.transactions)
			s.reevaluate(0)
			return
		}
	}
}

// DeleteTransaction removes the transaction with the given id, if present.
func (s *Store) DeleteTransaction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.persist(keyTransactions, s.transactions)
			s.reevaluate(0)
			return
		}
	}
}

// ToggleHabit flips the completed state of the habit with the given id.
// Experience is awarded only on the false→true transition.
func (s *Store) ToggleHabit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.habits {
		if s.habits[i].ID == id {
			xp := 0
			if !s.habits[i].Completed {
				xp = xpToggleHabit
			}
			s.habits[i].Completed = !s.habits[i].Completed
			s.persist(keyHabits, s.habits)
			s.reevaluate(xp)
			return
		}
	}
}

func (s *Store) AddHabit(name, icon string) models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := models.NewHabit(name, icon)
	s.habits = append(s.habits, h)
	s.persist(keyHabits, s.habits)
	s.reevaluate(xpAddHabit)
	return h
}

func (s *Store) AddInvestment(name string, amount decimal.Decimal, category string) models.Investment {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv := models.NewInvestment(name, amount, category)
	s.investments = append(s.investments, inv)
	s.persist(keyInvestments, s.investments)
	s.reevaluate(xpAddInvestment)
	return inv
}

// AppendMessage appends to the chat log. User messages earn experience,
// assistant replies do not.
func (s *Store) AppendMessage(msg models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	s.persist(keyChat, s.messages)
	xp := 0
	if msg.Role == models.RoleUser {
		xp = xpUserMessage
	}
	s.reevaluate(xp)
}
