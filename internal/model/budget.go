package model

// BudgetPeriod is the recurrence window a budget limit applies to.
type BudgetPeriod string

// Budget period values.
const (
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Budget caps spending for a category over a period. Spent is a running
// total incremented when an expense transaction in the matching category
// is created; it is intentionally never decremented on transaction
// deletion (see DESIGN.md).
type Budget struct {
	ID       string       `json:"id"`
	Category string       `json:"category"`
	Limit    float64      `json:"limit"`
	Spent    float64      `json:"spent"`
	Period   BudgetPeriod `json:"period"`
}

// EntityID returns the record id.
func (b Budget) EntityID() string { return b.ID }
