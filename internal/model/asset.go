package model

// AssetType categorizes an owned asset.
type AssetType string

// Asset type values.
const (
	AssetProperty    AssetType = "property"
	AssetVehicle     AssetType = "vehicle"
	AssetInvestment  AssetType = "investment"
	AssetJewelry     AssetType = "jewelry"
	AssetElectronics AssetType = "electronics"
	AssetOther       AssetType = "other"
)

// Asset is a valuation record for something owned. Assets feed
// asset-focused views but are deliberately excluded from the core net
// worth figure.
type Asset struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         AssetType `json:"type"`
	Value        float64   `json:"value"`
	PurchaseDate string    `json:"purchaseDate,omitempty"`
	Description  string    `json:"description,omitempty"`
}

// EntityID returns the record id.
func (a Asset) EntityID() string { return a.ID }

// LiabilityType categorizes a long-running obligation.
type LiabilityType string

// Liability type values.
const (
	LiabilityMortgage     LiabilityType = "mortgage"
	LiabilityCarLoan      LiabilityType = "car-loan"
	LiabilityPersonalLoan LiabilityType = "personal-loan"
	LiabilityCreditCard   LiabilityType = "credit-card"
	LiabilityOther        LiabilityType = "other"
)

// Liability is a valuation record for a long-running obligation,
// tracked separately from Debt payoff planning.
type Liability struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Type           LiabilityType `json:"type"`
	Amount         float64       `json:"amount"`
	InterestRate   float64       `json:"interestRate,omitempty"`
	MonthlyPayment float64       `json:"monthlyPayment,omitempty"`
	DueDate        string        `json:"dueDate,omitempty"`
}

// EntityID returns the record id.
func (l Liability) EntityID() string { return l.ID }
