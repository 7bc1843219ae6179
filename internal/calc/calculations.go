// Package calc derives summary metrics from a financial document.
// Every function is pure: it reads a snapshot and computes a value.
package calc

import (
	"math"
	"sort"
	"time"

	"github.com/Veraticus/money-mastery/internal/model"
)

// NetWorth is the narrow "liquid savings minus debt" figure: the sum of
// savings goal balances minus the sum of remaining debt. Account
// balances, assets, and liabilities are deliberately excluded.
func NetWorth(doc model.FinancialData) float64 {
	var savings float64
	for _, g := range doc.SavingsGoals {
		savings += g.CurrentAmount
	}
	var debt float64
	for _, d := range doc.Debts {
		debt += d.RemainingAmount
	}
	return savings - debt
}

// MonthlyIncome sums income transactions dated in the current calendar month.
func MonthlyIncome(transactions []model.Transaction) float64 {
	return monthlyTotal(transactions, model.TypeIncome, time.Now())
}

// MonthlyExpenses sums expense transactions dated in the current calendar month.
func MonthlyExpenses(transactions []model.Transaction) float64 {
	return monthlyTotal(transactions, model.TypeExpense, time.Now())
}

func monthlyTotal(transactions []model.Transaction, typ model.TransactionType, now time.Time) float64 {
	var total float64
	for _, t := range transactions {
		if t.Type != typ {
			continue
		}
		date, err := parseDate(t.Date)
		if err != nil {
			continue
		}
		if date.Year() != now.Year() || date.Month() != now.Month() {
			continue
		}
		total += t.Magnitude()
	}
	return total
}

// parseDate accepts the two shapes dates take in a document: full RFC 3339
// timestamps and bare ISO dates entered through flags or forms.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// SavingsRate is the fraction of monthly income not spent, in [0, 1]
// when spending stays within income. Zero income yields zero.
func SavingsRate(income, expenses float64) float64 {
	if income <= 0 {
		return 0
	}
	return (income - expenses) / income
}

// BudgetUtilization is the fraction of a budget's limit already spent.
// A zero limit yields zero rather than dividing by it.
func BudgetUtilization(b model.Budget) float64 {
	if b.Limit <= 0 {
		return 0
	}
	return b.Spent / b.Limit
}

// DebtPayoffMonths returns the number of monthly payments until a debt
// reaches zero under a fixed payment and annual interest rate (percent).
//
// A non-positive payment returns +Inf (the debt never pays off). When the
// payment does not cover the interest accruing each month the amortization
// logarithm has a non-positive argument and the result is NaN; callers
// must treat any non-finite result as "payoff time unbounded".
func DebtPayoffMonths(remaining, monthlyPayment, annualRatePercent float64) float64 {
	if monthlyPayment <= 0 {
		return math.Inf(1)
	}

	monthlyRate := annualRatePercent / 100 / 12
	if monthlyRate == 0 {
		return math.Ceil(remaining / monthlyPayment)
	}

	months := math.Log(monthlyPayment/(monthlyPayment-remaining*monthlyRate)) / math.Log(1+monthlyRate)
	return math.Ceil(months)
}

// DaysUntilDue counts whole days from now until the bill's next due date.
// Negative values mean the bill is overdue; an unparseable date counts as
// due immediately.
func DaysUntilDue(b model.Bill, now time.Time) int {
	due, err := parseDate(b.NextDueDate)
	if err != nil {
		return 0
	}
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// UpcomingBills returns bills due within the next seven days, soonest first.
func UpcomingBills(bills []model.Bill, now time.Time) []model.Bill {
	var upcoming []model.Bill
	for _, b := range bills {
		days := DaysUntilDue(b, now)
		if days >= 0 && days <= 7 {
			upcoming = append(upcoming, b)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return DaysUntilDue(upcoming[i], now) < DaysUntilDue(upcoming[j], now)
	})
	return upcoming
}

// HabitStreak counts consecutive completed days ending today. A habit not
// completed today has a streak of zero.
func HabitStreak(h model.Habit, today time.Time) int {
	completed := make(map[string]bool, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		completed[d] = true
	}

	streak := 0
	for day := today; completed[day.Format("2006-01-02")]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// CompletionRate is the percentage of a habit's target days completed,
// rounded to the nearest integer. Habits without a target report -1.
func CompletionRate(h model.Habit) int {
	if h.TargetDays <= 0 {
		return -1
	}
	return int(math.Round(float64(len(h.CompletedDates)) / float64(h.TargetDays) * 100))
}
