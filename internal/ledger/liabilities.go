package ledger

import (
	"context"

	"github.com/Veraticus/money-mastery/internal/model"
)

// LiabilityUpdate carries the fields an update may change.
type LiabilityUpdate struct {
	Name           *string
	Type           *model.LiabilityType
	Amount         *float64
	InterestRate   *float64
	MonthlyPayment *float64
	DueDate        *string
}

// AddLiability appends a new liability and returns it with its generated id.
func (s *Service) AddLiability(ctx context.Context, l model.Liability) model.Liability {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	l.ID = s.nextID()
	doc.Liabilities = append(doc.Liabilities, l)
	s.store.SaveDocument(ctx, doc)
	return l
}

// UpdateLiability shallow-merges the given fields over the liability with
// the given id. Unknown ids are a silent no-op.
func (s *Service) UpdateLiability(ctx context.Context, id string, update LiabilityUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	found := updateByID(doc.Liabilities, id, func(l *model.Liability) {
		merge(&l.Name, update.Name)
		merge(&l.Type, update.Type)
		merge(&l.Amount, update.Amount)
		merge(&l.InterestRate, update.InterestRate)
		merge(&l.MonthlyPayment, update.MonthlyPayment)
		merge(&l.DueDate, update.DueDate)
	})
	if !found {
		return false
	}
	s.store.SaveDocument(ctx, doc)
	return true
}

// DeleteLiability removes the liability with the given id, if present.
func (s *Service) DeleteLiability(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	doc.Liabilities = removeByID(doc.Liabilities, id)
	s.store.SaveDocument(ctx, doc)
}
