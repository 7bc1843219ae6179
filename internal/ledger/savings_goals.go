package ledger

import (
	"context"

	"github.com/Veraticus/money-mastery/internal/model"
)

// SavingsGoalUpdate carries the fields an update may change.
type SavingsGoalUpdate struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *string
	Priority      *model.Priority
}

// AddSavingsGoal appends a new goal and returns it with its generated id.
func (s *Service) AddSavingsGoal(ctx context.Context, g model.SavingsGoal) model.SavingsGoal {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	g.ID = s.nextID()
	doc.SavingsGoals = append(doc.SavingsGoals, g)
	s.store.SaveDocument(ctx, doc)
	return g
}

// UpdateSavingsGoal shallow-merges the given fields over the goal with
// the given id. Unknown ids are a silent no-op.
func (s *Service) UpdateSavingsGoal(ctx context.Context, id string, update SavingsGoalUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	found := updateByID(doc.SavingsGoals, id, func(g *model.SavingsGoal) {
		merge(&g.Name, update.Name)
		merge(&g.TargetAmount, update.TargetAmount)
		merge(&g.CurrentAmount, update.CurrentAmount)
		merge(&g.Deadline, update.Deadline)
		merge(&g.Priority, update.Priority)
	})
	if !found {
		return false
	}
	s.store.SaveDocument(ctx, doc)
	return true
}

// DeleteSavingsGoal removes the goal with the given id, if present.
func (s *Service) DeleteSavingsGoal(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	doc.SavingsGoals = removeByID(doc.SavingsGoals, id)
	s.store.SaveDocument(ctx, doc)
}
