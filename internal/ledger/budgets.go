package ledger

import (
	"context"

	"github.com/Veraticus/money-mastery/internal/model"
)

// BudgetUpdate carries the fields an update may change.
type BudgetUpdate struct {
	Category *string
	Limit    *float64
	Spent    *float64
	Period   *model.BudgetPeriod
}

// AddBudget appends a new budget and returns it with its generated id.
func (s *Service) AddBudget(ctx context.Context, b model.Budget) model.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	b.ID = s.nextID()
	doc.Budgets = append(doc.Budgets, b)
	s.store.SaveDocument(ctx, doc)
	return b
}

// UpdateBudget shallow-merges the given fields over the budget with the
// given id. Unknown ids are a silent no-op.
func (s *Service) UpdateBudget(ctx context.Context, id string, update BudgetUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	found := updateByID(doc.Budgets, id, func(b *model.Budget) {
		merge(&b.Category, update.Category)
		merge(&b.Limit, update.Limit)
		merge(&b.Spent, update.Spent)
		merge(&b.Period, update.Period)
	})
	if !found {
		return false
	}
	s.store.SaveDocument(ctx, doc)
	return true
}

// DeleteBudget removes the budget with the given id, if present.
func (s *Service) DeleteBudget(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	doc.Budgets = removeByID(doc.Budgets, id)
	s.store.SaveDocument(ctx, doc)
}
