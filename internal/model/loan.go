package model

// LoanStatus tracks repayment state of money lent out.
type LoanStatus string

// Loan status values.
const (
	LoanActive  LoanStatus = "active"
	LoanRepaid  LoanStatus = "repaid"
	LoanOverdue LoanStatus = "overdue"
)

// LoanGiven records money lent to a third party.
type LoanGiven struct {
	ID           string     `json:"id"`
	BorrowerName string     `json:"borrowerName"`
	Amount       float64    `json:"amount"`
	AmountRepaid float64    `json:"amountRepaid"`
	InterestRate float64    `json:"interestRate,omitempty"`
	LoanDate     string     `json:"loanDate"`
	DueDate      string     `json:"dueDate,omitempty"`
	Status       LoanStatus `json:"status"`
	Notes        string     `json:"notes,omitempty"`
}

// EntityID returns the record id.
func (l LoanGiven) EntityID() string { return l.ID }
