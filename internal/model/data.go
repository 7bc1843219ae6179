// Package model defines the financial records tracked by money-mastery
// and the aggregate document that holds them.
package model

// FinancialData is the aggregate root: one document per user holding
// every record array plus the document-wide currency. The document is
// owned by a single user (or the anonymous local session); the sync
// coordinator is a non-owning caretaker that may overwrite it under the
// merge rules.
type FinancialData struct {
	Transactions  []Transaction  `json:"transactions"`
	Budgets       []Budget       `json:"budgets"`
	Debts         []Debt         `json:"debts"`
	SavingsGoals  []SavingsGoal  `json:"savingsGoals"`
	Accounts      []Account      `json:"accounts"`
	Assets        []Asset        `json:"assets"`
	Liabilities   []Liability    `json:"liabilities"`
	LoansGiven    []LoanGiven    `json:"loansGiven"`
	Bills         []Bill         `json:"bills"`
	Habits        []Habit        `json:"habits"`
	Wishlist      []WishlistItem `json:"wishlist"`
	MonthlyIncome float64        `json:"monthlyIncome"`
	Currency      Currency       `json:"currency"`
}

// Normalize migrates legacy representations to the canonical ones:
// signed transaction amounts become non-negative magnitudes and a
// missing currency falls back to the given preference.
func (d FinancialData) Normalize(preferred Currency) FinancialData {
	normalized := make([]Transaction, len(d.Transactions))
	for i, t := range d.Transactions {
		normalized[i] = t.Normalize()
	}
	d.Transactions = normalized
	if d.Currency == "" {
		d.Currency = preferred
	}
	return d
}
