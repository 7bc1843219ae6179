package model

// Priority ranks goals and wishlist items.
type Priority string

// Priority values.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// SavingsGoal tracks progress toward a savings target.
type SavingsGoal struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	TargetAmount  float64  `json:"targetAmount"`
	CurrentAmount float64  `json:"currentAmount"`
	Deadline      string   `json:"deadline"`
	Priority      Priority `json:"priority"`
}

// EntityID returns the record id.
func (g SavingsGoal) EntityID() string { return g.ID }
