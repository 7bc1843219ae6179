package model

// AccountType categorizes where a balance is held.
type AccountType string

// Account type values.
const (
	AccountBank        AccountType = "bank"
	AccountCash        AccountType = "cash"
	AccountMobileMoney AccountType = "mobile-money"
	AccountInvestment  AccountType = "investment"
	AccountOther       AccountType = "other"
)

// Account is a place money is held. Currency redundantly carries the
// document-wide currency; no per-account conversion occurs.
type Account struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Type          AccountType `json:"type"`
	Balance       float64     `json:"balance"`
	Currency      Currency    `json:"currency"`
	Institution   string      `json:"institution,omitempty"`
	AccountNumber string      `json:"accountNumber,omitempty"`
}

// EntityID returns the record id.
func (a Account) EntityID() string { return a.ID }
