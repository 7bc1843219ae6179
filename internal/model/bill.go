package model

// BillCategory groups recurring bills.
type BillCategory string

// Bill category values.
const (
	BillSubscription BillCategory = "subscription"
	BillUtility      BillCategory = "utility"
	BillInsurance    BillCategory = "insurance"
	BillRent         BillCategory = "rent"
	BillLoanPayment  BillCategory = "loan-payment"
	BillOther        BillCategory = "other"
)

// BillFrequency is how often a bill recurs.
type BillFrequency string

// Bill frequency values.
const (
	FrequencyDaily     BillFrequency = "daily"
	FrequencyWeekly    BillFrequency = "weekly"
	FrequencyMonthly   BillFrequency = "monthly"
	FrequencyQuarterly BillFrequency = "quarterly"
	FrequencyYearly    BillFrequency = "yearly"
)

// Bill is a recurring payment obligation.
type Bill struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Amount         float64       `json:"amount"`
	Category       BillCategory  `json:"category"`
	Frequency      BillFrequency `json:"frequency"`
	NextDueDate    string        `json:"nextDueDate"`
	AutoPayEnabled bool          `json:"autoPayEnabled"`
	ReminderDays   int           `json:"reminderDays,omitempty"`
	Notes          string        `json:"notes,omitempty"`
}

// EntityID returns the record id.
func (b Bill) EntityID() string { return b.ID }
