package ledger

import (
	"context"

	"github.com/Veraticus/money-mastery/internal/model"
)

// AccountUpdate carries the fields an update may change.
type AccountUpdate struct {
	Name          *string
	Type          *model.AccountType
	Balance       *float64
	Currency      *model.Currency
	Institution   *string
	AccountNumber *string
}

// AddAccount appends a new account and returns it with its generated id.
func (s *Service) AddAccount(ctx context.Context, a model.Account) model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	a.ID = s.nextID()
	if a.Currency == "" {
		a.Currency = doc.Currency
	}
	doc.Accounts = append(doc.Accounts, a)
	s.store.SaveDocument(ctx, doc)
	return a
}

// UpdateAccount shallow-merges the given fields over the account with
// the given id. Unknown ids are a silent no-op.
func (s *Service) UpdateAccount(ctx context.Context, id string, update AccountUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	found := updateByID(doc.Accounts, id, func(a *model.Account) {
		merge(&a.Name, update.Name)
		merge(&a.Type, update.Type)
		merge(&a.Balance, update.Balance)
		merge(&a.Currency, update.Currency)
		merge(&a.Institution, update.Institution)
		merge(&a.AccountNumber, update.AccountNumber)
	})
	if !found {
		return false
	}
	s.store.SaveDocument(ctx, doc)
	return true
}

// DeleteAccount removes the account with the given id, if present.
func (s *Service) DeleteAccount(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	doc.Accounts = removeByID(doc.Accounts, id)
	s.store.SaveDocument(ctx, doc)
}
