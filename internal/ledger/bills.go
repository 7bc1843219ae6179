package ledger

import (
	"context"

	"github.com/Veraticus/money-mastery/internal/model"
)

// BillUpdate carries the fields an update may change.
type BillUpdate struct {
	Name           *string
	Amount         *float64
	Category       *model.BillCategory
	Frequency      *model.BillFrequency
	NextDueDate    *string
	AutoPayEnabled *bool
	ReminderDays   *int
	Notes          *string
}

// AddBill appends a new bill and returns it with its generated id.
func (s *Service) AddBill(ctx context.Context, b model.Bill) model.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	b.ID = s.nextID()
	doc.Bills = append(doc.Bills, b)
	s.store.SaveDocument(ctx, doc)
	return b
}

// UpdateBill shallow-merges the given fields over the bill with the
// given id. Unknown ids are a silent no-op.
func (s *Service) UpdateBill(ctx context.Context, id string, update BillUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	found := updateByID(doc.Bills, id, func(b *model.Bill) {
		merge(&b.Name, update.Name)
		merge(&b.Amount, update.Amount)
		merge(&b.Category, update.Category)
		merge(&b.Frequency, update.Frequency)
		merge(&b.NextDueDate, update.NextDueDate)
		merge(&b.AutoPayEnabled, update.AutoPayEnabled)
		merge(&b.ReminderDays, update.ReminderDays)
		merge(&b.Notes, update.Notes)
	})
	if !found {
		return false
	}
	s.store.SaveDocument(ctx, doc)
	return true
}

// DeleteBill removes the bill with the given id, if present.
func (s *Service) DeleteBill(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	doc.Bills = removeByID(doc.Bills, id)
	s.store.SaveDocument(ctx, doc)
}
