package model

import "time"

// DefaultData builds the seeded sample document handed to first-time
// users. Dates are anchored to now so the samples land in the current
// month; currency is the stored display preference.
func DefaultData(now time.Time, currency Currency) FinancialData {
	day := 24 * time.Hour
	iso := func(t time.Time) string { return t.Format(time.RFC3339) }

	return FinancialData{
		Transactions: []Transaction{
			{ID: "1", Date: iso(now), Description: "Monthly Salary", Amount: 5000, Category: "Salary", Type: TypeIncome},
			{ID: "2", Date: iso(now.Add(-day)), Description: "Grocery Shopping", Amount: 150, Category: "Food", Type: TypeExpense},
			{ID: "3", Date: iso(now.Add(-2 * day)), Description: "Electric Bill", Amount: 85, Category: "Utilities", Type: TypeExpense},
		},
		Budgets: []Budget{
			{ID: "1", Category: "Food", Limit: 500, Spent: 150, Period: PeriodMonthly},
			{ID: "2", Category: "Transportation", Limit: 300, Spent: 120, Period: PeriodMonthly},
			{ID: "3", Category: "Entertainment", Limit: 200, Spent: 45, Period: PeriodMonthly},
		},
		Debts: []Debt{
			{ID: "1", Name: "Credit Card", TotalAmount: 5000, RemainingAmount: 3200, InterestRate: 18.5, MinimumPayment: 150, DueDate: "2025-11-15", Type: DebtCreditCard},
			{ID: "2", Name: "Student Loan", TotalAmount: 25000, RemainingAmount: 18500, InterestRate: 4.5, MinimumPayment: 300, DueDate: "2025-11-01", Type: DebtLoan},
		},
		SavingsGoals: []SavingsGoal{
			{ID: "1", Name: "Emergency Fund", TargetAmount: 10000, CurrentAmount: 3500, Deadline: "2025-12-31", Priority: PriorityHigh},
			{ID: "2", Name: "Vacation", TargetAmount: 3000, CurrentAmount: 800, Deadline: "2025-08-01", Priority: PriorityMedium},
		},
		Accounts: []Account{
			{ID: "1", Name: "Main Checking", Type: AccountBank, Balance: 5000, Currency: currency, Institution: "National Bank", AccountNumber: "****1234"},
			{ID: "2", Name: "Cash Wallet", Type: AccountCash, Balance: 500, Currency: currency},
			{ID: "3", Name: "M-Pesa", Type: AccountMobileMoney, Balance: 1200, Currency: currency},
		},
		Assets: []Asset{
			{ID: "1", Name: "Family Home", Type: AssetProperty, Value: 250000, PurchaseDate: "2020-01-15", Description: "3 bedroom house"},
			{ID: "2", Name: "Toyota Corolla", Type: AssetVehicle, Value: 15000, PurchaseDate: "2022-06-01"},
		},
		Liabilities: []Liability{
			{ID: "1", Name: "Home Mortgage", Type: LiabilityMortgage, Amount: 180000, InterestRate: 3.5, MonthlyPayment: 1200, DueDate: "2045-01-15"},
		},
		LoansGiven: []LoanGiven{
			{ID: "1", BorrowerName: "John Doe", Amount: 1000, AmountRepaid: 400, InterestRate: 5, LoanDate: "2024-06-01", DueDate: "2025-12-01", Status: LoanActive, Notes: "Personal loan for business"},
		},
		Bills: []Bill{
			{ID: "1", Name: "Netflix", Amount: 15.99, Category: BillSubscription, Frequency: FrequencyMonthly, NextDueDate: iso(now.Add(7 * day)), AutoPayEnabled: true, ReminderDays: 3},
			{ID: "2", Name: "Electricity", Amount: 85, Category: BillUtility, Frequency: FrequencyMonthly, NextDueDate: iso(now.Add(15 * day)), AutoPayEnabled: false, ReminderDays: 5},
		},
		Habits: []Habit{
			{ID: "1", Name: "Track Daily Expenses", Description: "Record all expenses in the app", Category: HabitFinancial, Frequency: HabitDaily, TargetDays: 30, CompletedDates: []string{}, CreatedDate: iso(now), Color: "#10b981"},
			{ID: "2", Name: "Review Budget", Description: "Check budget progress and adjust if needed", Category: HabitFinancial, Frequency: HabitWeekly, CompletedDates: []string{}, CreatedDate: iso(now), Color: "#3b82f6"},
		},
		Wishlist: []WishlistItem{
			{ID: "1", Name: "New Laptop", Price: 1200, Priority: PriorityHigh, Category: WishElectronics, SavedAmount: 400, TargetDate: "2025-12-31", IsPurchased: false, AddedDate: iso(now), Notes: "For work and personal projects"},
			{ID: "2", Name: "Weekend Getaway", Price: 500, Priority: PriorityMedium, Category: WishTravel, SavedAmount: 150, IsPurchased: false, AddedDate: iso(now)},
		},
		MonthlyIncome: 5000,
		Currency:      currency,
	}
}
