package model

import "math"

// TransactionType classifies a transaction as money in or money out.
// The type is authoritative for direction; producers have historically
// been inconsistent about signing amounts, so Amount is stored as a
// non-negative magnitude and legacy signed values are normalized on load.
type TransactionType string

// Transaction type values.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single dated movement of money.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
}

// EntityID returns the record id.
func (t Transaction) EntityID() string { return t.ID }

// Magnitude returns the absolute transaction amount. Aggregation code
// must combine this with Type rather than trusting the stored sign.
func (t Transaction) Magnitude() float64 { return math.Abs(t.Amount) }

// Normalize returns a copy carrying the canonical non-negative amount.
func (t Transaction) Normalize() Transaction {
	t.Amount = math.Abs(t.Amount)
	return t
}
