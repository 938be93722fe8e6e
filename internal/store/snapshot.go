package store

import (
	"github.com/shopspring/decimal"

	"github.com/ryzendominyx-cloud/finance-app/internal/models"
)

// Goals live in their own snapshot group. They are not an input to any
// stone predicate and award no experience.

func (s *Store) AddGoal(name string, target, current decimal.Decimal, deadline string) models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := models.NewGoal(name, target, current, deadline)
	s.goals = append(s.goals, g)
	s.persist(keyGoals, s.goals)
	return g
}

// UpdateGoalProgress moves a goal's current amount by delta, clamped to
// [0, target]. A miss is a silent no-op.
func (s *Store) UpdateGoalProgress(id string, delta decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.goals {
		if s.goals[i].ID == id {
			next := s.goals[i].Current.Add(delta)
			if next.LessThan(decimal.Zero) {
				next = decimal.Zero
			}
			if next.GreaterThan(s.goals[i].Target) {
				next = s.goals[i].Target
			}
			s.goals[i].Current = next
			s.persist(keyGoals, s.goals)
			return
		}
	}
}

func (s *Store) DeleteGoal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			s.persist(keyGoals, s.goals)
			return
		}
	}
}

// SetTutorialDone records that the first-run walkthrough was dismissed.
func (s *Store) SetTutorialDone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tutorialDone {
		return
	}
	s.tutorialDone = true
	s.persist(keyTutorial, s.tutorialDone)
}

func (s *Store) TutorialDone() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tutorialDone
}

// The read accessors return copies so callers can iterate without holding
// the store lock.

func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) Habits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

func (s *Store) Investments() []models.Investment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Investment, len(s.investments))
	copy(out, s.investments)
	return out
}

func (s *Store) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Store) Goals() []models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

func (s *Store) Progress() models.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

func (s *Store) Stones() models.Stones {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stones
}
