package ledger

import (
	"context"
	"time"

	"github.com/Veraticus/money-mastery/internal/model"
)

// TransactionUpdate carries the fields an update may change.
type TransactionUpdate struct {
	Date        *string
	Description *string
	Amount      *float64
	Category    *string
	Type        *model.TransactionType
}

// AddTransaction records a new transaction at the head of the list and
// returns it with its generated id. The amount is normalized to the
// canonical non-negative magnitude. Creating an expense also increments
// the matching category budget's running spend; that side effect is
// one-directional — deleting the transaction later does not reverse it.
func (s *Service) AddTransaction(ctx context.Context, txn model.Transaction) model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)

	txn = txn.Normalize()
	txn.ID = s.nextID()
	if txn.Date == "" {
		txn.Date = s.now().Format(time.RFC3339)
	}

	doc.Transactions = append([]model.Transaction{txn}, doc.Transactions...)

	if txn.Type == model.TypeExpense {
		updateBudgetSpend(doc.Budgets, txn.Category, txn.Magnitude())
	}

	s.store.SaveDocument(ctx, doc)
	return txn
}

// UpdateTransaction shallow-merges the given fields over the transaction
// with the given id. Unknown ids are a silent no-op.
func (s *Service) UpdateTransaction(ctx context.Context, id string, update TransactionUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	found := updateByID(doc.Transactions, id, func(t *model.Transaction) {
		merge(&t.Date, update.Date)
		merge(&t.Description, update.Description)
		merge(&t.Category, update.Category)
		merge(&t.Type, update.Type)
		if update.Amount != nil {
			t.Amount = *update.Amount
			*t = t.Normalize()
		}
	})
	if !found {
		return false
	}
	s.store.SaveDocument(ctx, doc)
	return true
}

// DeleteTransaction removes the transaction with the given id, if present.
// The matching budget's running spend is deliberately not decremented.
func (s *Service) DeleteTransaction(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	doc.Transactions = removeByID(doc.Transactions, id)
	s.store.SaveDocument(ctx, doc)
}

func updateBudgetSpend(budgets []model.Budget, category string, amount float64) {
	for i := range budgets {
		if budgets[i].Category == category {
			budgets[i].Spent += amount
			return
		}
	}
}
