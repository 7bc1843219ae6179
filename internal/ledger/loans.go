package ledger

import (
	"context"

	"github.com/Veraticus/money-mastery/internal/model"
)

// LoanGivenUpdate carries the fields an update may change.
type LoanGivenUpdate struct {
	BorrowerName *string
	Amount       *float64
	AmountRepaid *float64
	InterestRate *float64
	LoanDate     *string
	DueDate      *string
	Status       *model.LoanStatus
	Notes        *string
}

// AddLoanGiven appends a new lent-out loan and returns it with its generated id.
func (s *Service) AddLoanGiven(ctx context.Context, l model.LoanGiven) model.LoanGiven {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	l.ID = s.nextID()
	doc.LoansGiven = append(doc.LoansGiven, l)
	s.store.SaveDocument(ctx, doc)
	return l
}

// UpdateLoanGiven shallow-merges the given fields over the loan with the
// given id. Unknown ids are a silent no-op.
func (s *Service) UpdateLoanGiven(ctx context.Context, id string, update LoanGivenUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	found := updateByID(doc.LoansGiven, id, func(l *model.LoanGiven) {
		merge(&l.BorrowerName, update.BorrowerName)
		merge(&l.Amount, update.Amount)
		merge(&l.AmountRepaid, update.AmountRepaid)
		merge(&l.InterestRate, update.InterestRate)
		merge(&l.LoanDate, update.LoanDate)
		merge(&l.DueDate, update.DueDate)
		merge(&l.Status, update.Status)
		merge(&l.Notes, update.Notes)
	})
	if !found {
		return false
	}
	s.store.SaveDocument(ctx, doc)
	return true
}

// DeleteLoanGiven removes the loan with the given id, if present.
func (s *Service) DeleteLoanGiven(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	doc.LoansGiven = removeByID(doc.LoansGiven, id)
	s.store.SaveDocument(ctx, doc)
}
