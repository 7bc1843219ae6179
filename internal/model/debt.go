package model

// DebtType categorizes a debt obligation.
type DebtType string

// Debt type values.
const (
	DebtCreditCard DebtType = "credit-card"
	DebtLoan       DebtType = "loan"
	DebtMortgage   DebtType = "mortgage"
	DebtOther      DebtType = "other"
)

// Debt is money owed to a creditor.
type Debt struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	TotalAmount     float64  `json:"totalAmount"`
	RemainingAmount float64  `json:"remainingAmount"`
	InterestRate    float64  `json:"interestRate"`
	MinimumPayment  float64  `json:"minimumPayment"`
	DueDate         string   `json:"dueDate,omitempty"`
	Type            DebtType `json:"type"`
}

// EntityID returns the record id.
func (d Debt) EntityID() string { return d.ID }
