package calc

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/money-mastery/internal/model"
)

func TestNetWorth(t *testing.T) {
	tests := []struct {
		name string
		doc  model.FinancialData
		want float64
	}{
		{
			name: "savings minus debt",
			doc: model.FinancialData{
				SavingsGoals: []model.SavingsGoal{
					{ID: "1", CurrentAmount: 3500},
					{ID: "2", CurrentAmount: 800},
				},
				Debts: []model.Debt{
					{ID: "1", RemainingAmount: 3200},
				},
			},
			want: 1100,
		},
		{
			name: "accounts and assets are excluded",
			doc: model.FinancialData{
				SavingsGoals: []model.SavingsGoal{{ID: "1", CurrentAmount: 100}},
				Accounts:     []model.Account{{ID: "1", Balance: 99999}},
				Assets:       []model.Asset{{ID: "1", Value: 250000}},
				Liabilities:  []model.Liability{{ID: "1", Amount: 180000}},
			},
			want: 100,
		},
		{
			name: "empty document",
			doc:  model.FinancialData{},
			want: 0,
		},
		{
			name: "debt exceeds savings",
			doc: model.FinancialData{
				SavingsGoals: []model.SavingsGoal{{ID: "1", CurrentAmount: 500}},
				Debts:        []model.Debt{{ID: "1", RemainingAmount: 2000}},
			},
			want: -1500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NetWorth(tt.doc), 0.001)
		})
	}
}

func TestMonthlyTotal(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	iso := func(tm time.Time) string { return tm.Format(time.RFC3339) }

	transactions := []model.Transaction{
		{ID: "1", Date: iso(now), Amount: 5000, Type: model.TypeIncome},
		{ID: "2", Date: iso(now.AddDate(0, 0, -1)), Amount: 150, Type: model.TypeExpense},
		{ID: "3", Date: iso(now.AddDate(0, 0, -10)), Amount: 85, Type: model.TypeExpense},
		// Previous month: excluded.
		{ID: "4", Date: iso(now.AddDate(0, -1, 0)), Amount: 4000, Type: model.TypeIncome},
		{ID: "5", Date: iso(now.AddDate(0, -1, 0)), Amount: 900, Type: model.TypeExpense},
		// Unparseable date: skipped.
		{ID: "6", Date: "not-a-date", Amount: 777, Type: model.TypeExpense},
		// Legacy negative amount: magnitude still counted.
		{ID: "7", Date: iso(now), Amount: -50, Type: model.TypeExpense},
		// Bare ISO dates come in through --date flags and count like
		// full timestamps.
		{ID: "8", Date: now.Format("2006-01-02"), Amount: 100, Type: model.TypeExpense},
		{ID: "9", Date: now.AddDate(0, -1, 0).Format("2006-01-02"), Amount: 60, Type: model.TypeExpense},
	}

	assert.InDelta(t, 5000, monthlyTotal(transactions, model.TypeIncome, now), 0.001)
	assert.InDelta(t, 385, monthlyTotal(transactions, model.TypeExpense, now), 0.001)
}

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		expenses float64
		want     float64
	}{
		{name: "half saved", income: 4000, expenses: 2000, want: 0.5},
		{name: "nothing saved", income: 1000, expenses: 1000, want: 0},
		{name: "overspent", income: 1000, expenses: 1500, want: -0.5},
		{name: "zero income", income: 0, expenses: 500, want: 0},
		{name: "negative income", income: -10, expenses: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SavingsRate(tt.income, tt.expenses), 0.001)
		})
	}
}

func TestBudgetUtilization(t *testing.T) {
	assert.InDelta(t, 0.3, BudgetUtilization(model.Budget{Limit: 500, Spent: 150}), 0.001)
	assert.InDelta(t, 1.5, BudgetUtilization(model.Budget{Limit: 100, Spent: 150}), 0.001)
	assert.Zero(t, BudgetUtilization(model.Budget{Limit: 0, Spent: 150}))
}

func TestDebtPayoffMonths(t *testing.T) {
	t.Run("no interest divides evenly", func(t *testing.T) {
		assert.InDelta(t, 10, DebtPayoffMonths(1000, 100, 0), 0.001)
	})

	t.Run("no interest rounds up", func(t *testing.T) {
		assert.InDelta(t, 11, DebtPayoffMonths(1050, 100, 0), 0.001)
	})

	t.Run("zero payment never pays off", func(t *testing.T) {
		assert.True(t, math.IsInf(DebtPayoffMonths(1000, 0, 5), 1))
	})

	t.Run("interest lengthens payoff", func(t *testing.T) {
		months := DebtPayoffMonths(3200, 150, 18.5)
		require.False(t, math.IsNaN(months))
		assert.Greater(t, months, DebtPayoffMonths(3200, 150, 0))
	})

	t.Run("payment below monthly interest is not finite", func(t *testing.T) {
		// 10000 at 24% accrues 200/month; a 100 payment loses ground.
		months := DebtPayoffMonths(10000, 100, 24)
		assert.True(t, math.IsNaN(months) || math.IsInf(months, 1))
	})
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  string
		want int
	}{
		{name: "rfc3339 date", due: "2025-06-20T00:00:00Z", want: 5},
		{name: "bare iso date", due: "2025-06-18", want: 3},
		{name: "due today", due: "2025-06-15", want: 0},
		{name: "overdue", due: "2025-06-10", want: -5},
		{name: "unparseable counts as due now", due: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilDue(model.Bill{NextDueDate: tt.due}, now))
		})
	}
}

func TestUpcomingBills(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	bills := []model.Bill{
		{ID: "far", Name: "Insurance", NextDueDate: "2025-07-20"},
		{ID: "week", Name: "Electricity", NextDueDate: "2025-06-22"},
		{ID: "soon", Name: "Netflix", NextDueDate: "2025-06-17"},
		{ID: "past", Name: "Rent", NextDueDate: "2025-06-01"},
	}

	upcoming := UpcomingBills(bills, now)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].ID)
	assert.Equal(t, "week", upcoming[1].ID)
}

func TestHabitStreak(t *testing.T) {
	today := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	}

	tests := []struct {
		name      string
		completed []string
		want      int
	}{
		{name: "no completions", completed: nil, want: 0},
		{name: "today only", completed: []string{day(0)}, want: 1},
		{name: "three consecutive days", completed: []string{day(0), day(-1), day(-2)}, want: 3},
		{name: "gap breaks streak", completed: []string{day(0), day(-2), day(-3)}, want: 1},
		{name: "missed today means zero", completed: []string{day(-1), day(-2)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := model.Habit{CompletedDates: tt.completed}
			assert.Equal(t, tt.want, HabitStreak(h, today))
		})
	}
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 50, CompletionRate(model.Habit{TargetDays: 30, CompletedDates: make([]string, 15)}))
	assert.Equal(t, 100, CompletionRate(model.Habit{TargetDays: 10, CompletedDates: make([]string, 10)}))
	assert.Equal(t, -1, CompletionRate(model.Habit{TargetDays: 0}))
}
