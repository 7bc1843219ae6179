package ledger

import (
	"context"

	"github.com/Veraticus/money-mastery/internal/model"
)

// DebtUpdate carries the fields an update may change.
type DebtUpdate struct {
	Name            *string
	TotalAmount     *float64
	RemainingAmount *float64
	InterestRate    *float64
	MinimumPayment  *float64
	DueDate         *string
	Type            *model.DebtType
}

// AddDebt appends a new debt and returns it with its generated id.
func (s *Service) AddDebt(ctx context.Context, d model.Debt) model.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	d.ID = s.nextID()
	doc.Debts = append(doc.Debts, d)
	s.store.SaveDocument(ctx, doc)
	return d
}

// UpdateDebt shallow-merges the given fields over the debt with the
// given id. Unknown ids are a silent no-op.
func (s *Service) UpdateDebt(ctx context.Context, id string, update DebtUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	found := updateByID(doc.Debts, id, func(d *model.Debt) {
		merge(&d.Name, update.Name)
		merge(&d.TotalAmount, update.TotalAmount)
		merge(&d.RemainingAmount, update.RemainingAmount)
		merge(&d.InterestRate, update.InterestRate)
		merge(&d.MinimumPayment, update.MinimumPayment)
		merge(&d.DueDate, update.DueDate)
		merge(&d.Type, update.Type)
	})
	if !found {
		return false
	}
	s.store.SaveDocument(ctx, doc)
	return true
}

// DeleteDebt removes the debt with the given id, if present.
func (s *Service) DeleteDebt(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	doc.Debts = removeByID(doc.Debts, id)
	s.store.SaveDocument(ctx, doc)
}
