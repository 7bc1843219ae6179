package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/money-mastery/internal/model"
	"github.com/Veraticus/money-mastery/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.Store) {
	t.Helper()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	store := storage.NewStore(storage.NewMemoryKV()).WithClock(func() time.Time { return now })
	svc := New(store).WithClock(func() time.Time { return now })
	return svc, store
}

func TestAddTransactionPrependsAndNormalizes(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	before := store.Document(ctx)

	txn := svc.AddTransaction(ctx, model.Transaction{
		Description: "Refund gone wrong",
		Amount:      -42.50,
		Category:    "Shopping",
		Type:        model.TypeExpense,
	})

	require.NotEmpty(t, txn.ID)
	assert.InDelta(t, 42.50, txn.Amount, 0.001, "stored amount is the magnitude")
	assert.NotEmpty(t, txn.Date, "missing date defaults to now")

	doc := store.Document(ctx)
	require.Len(t, doc.Transactions, len(before.Transactions)+1)
	assert.Equal(t, txn.ID, doc.Transactions[0].ID, "newest transaction sits first")
}

func TestAddExpenseIncrementsMatchingBudget(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	// The seeded document has a Food budget with 500 limit / 150 spent.
	svc.AddTransaction(ctx, model.Transaction{
		Description: "Groceries", Amount: 80, Category: "Food", Type: model.TypeExpense,
	})

	doc := store.Document(ctx)
	var food model.Budget
	for _, b := range doc.Budgets {
		if b.Category == "Food" {
			food = b
		}
	}
	require.NotEmpty(t, food.ID)
	assert.InDelta(t, 230, food.Spent, 0.001)
}

func TestAddIncomeLeavesBudgetsAlone(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	before := store.Document(ctx).Budgets
	svc.AddTransaction(ctx, model.Transaction{
		Description: "Salary", Amount: 5000, Category: "Food", Type: model.TypeIncome,
	})
	assert.Equal(t, before, store.Document(ctx).Budgets)
}

func TestDeleteTransactionDoesNotReverseBudgetSpend(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	txn := svc.AddTransaction(ctx, model.Transaction{
		Description: "Dinner", Amount: 60, Category: "Food", Type: model.TypeExpense,
	})
	spentAfterAdd := budgetSpent(store.Document(ctx).Budgets, "Food")

	svc.DeleteTransaction(ctx, txn.ID)

	doc := store.Document(ctx)
	assert.InDelta(t, spentAfterAdd, budgetSpent(doc.Budgets, "Food"), 0.001)
	for _, tr := range doc.Transactions {
		assert.NotEqual(t, txn.ID, tr.ID)
	}
}

func budgetSpent(budgets []model.Budget, category string) float64 {
	for _, b := range budgets {
		if b.Category == category {
			return b.Spent
		}
	}
	return -1
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	txn := svc.AddTransaction(ctx, model.Transaction{
		Description: "Cofee", Amount: 4, Category: "Food", Type: model.TypeExpense,
	})

	desc := "Coffee"
	amount := -5.25
	require.True(t, svc.UpdateTransaction(ctx, txn.ID, TransactionUpdate{
		Description: &desc,
		Amount:      &amount,
	}))

	doc := store.Document(ctx)
	got := doc.Transactions[0]
	assert.Equal(t, "Coffee", got.Description)
	assert.InDelta(t, 5.25, got.Amount, 0.001, "updated amount is re-normalized")
	assert.Equal(t, "Food", got.Category, "untouched fields survive")
}

func TestUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	before := store.Document(ctx)

	desc := "ghost"
	assert.False(t, svc.UpdateTransaction(ctx, "no-such-id", TransactionUpdate{Description: &desc}))
	assert.False(t, svc.UpdateBudget(ctx, "no-such-id", BudgetUpdate{Category: &desc}))
	assert.False(t, svc.UpdateHabit(ctx, "no-such-id", HabitUpdate{Name: &desc}))

	assert.Equal(t, before, store.Document(ctx), "failed updates must not dirty the document")
}

func TestDeleteUnknownIDKeepsEverything(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	before := store.Document(ctx)
	svc.DeleteDebt(ctx, "no-such-id")
	after := store.Document(ctx)
	assert.Equal(t, before.Debts, after.Debts)
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	// A frozen clock forces every creation onto the same nanosecond tick,
	// exercising the collision bump.
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		txn := svc.AddTransaction(ctx, model.Transaction{
			Description: "tick", Amount: 1, Type: model.TypeExpense,
		})
		assert.False(t, seen[txn.ID], "duplicate id %s", txn.ID)
		seen[txn.ID] = true
	}
}

func TestAddEntitiesAcrossArrays(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	debt := svc.AddDebt(ctx, model.Debt{Name: "Car Loan", TotalAmount: 9000, RemainingAmount: 7500, Type: model.DebtLoan})
	goal := svc.AddSavingsGoal(ctx, model.SavingsGoal{Name: "House", TargetAmount: 50000, Priority: model.PriorityHigh})
	bill := svc.AddBill(ctx, model.Bill{Name: "Water", Amount: 30, Frequency: model.FrequencyMonthly, NextDueDate: "2025-07-01"})
	item := svc.AddWishlistItem(ctx, model.WishlistItem{Name: "Camera", Price: 900})

	doc := store.Document(ctx)
	assert.Equal(t, debt.ID, doc.Debts[len(doc.Debts)-1].ID)
	assert.Equal(t, goal.ID, doc.SavingsGoals[len(doc.SavingsGoals)-1].ID)
	assert.Equal(t, bill.ID, doc.Bills[len(doc.Bills)-1].ID)
	assert.Equal(t, item.ID, doc.Wishlist[len(doc.Wishlist)-1].ID)
	assert.NotEmpty(t, item.AddedDate, "wishlist items get a creation date")
}

func TestAddAccountDefaultsCurrency(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	store.SetCurrency(ctx, model.EUR)
	doc := store.Document(ctx)
	doc.Currency = model.EUR
	store.SaveDocument(ctx, doc)

	a := svc.AddAccount(ctx, model.Account{Name: "Savings", Type: model.AccountBank, Balance: 100})
	assert.Equal(t, model.EUR, a.Currency)

	b := svc.AddAccount(ctx, model.Account{Name: "US Account", Type: model.AccountBank, Currency: model.USD})
	assert.Equal(t, model.USD, b.Currency, "explicit currency wins")
}

func TestAddHabitDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	h := svc.AddHabit(ctx, model.Habit{Name: "No impulse buys", Category: model.HabitFinancial})
	assert.NotNil(t, h.CompletedDates, "completions start as an empty set, not null")
	assert.Empty(t, h.CompletedDates)
	assert.NotEmpty(t, h.CreatedDate)
}

func TestToggleHabitCompletion(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	h := svc.AddHabit(ctx, model.Habit{Name: "Track expenses"})

	require.True(t, svc.ToggleHabitCompletion(ctx, h.ID, "2025-06-15"))
	require.True(t, svc.ToggleHabitCompletion(ctx, h.ID, "2025-06-14"))

	got := findHabit(t, store.Document(ctx).Habits, h.ID)
	assert.ElementsMatch(t, []string{"2025-06-15", "2025-06-14"}, got.CompletedDates)

	// Toggling the same date again removes it.
	require.True(t, svc.ToggleHabitCompletion(ctx, h.ID, "2025-06-15"))
	got = findHabit(t, store.Document(ctx).Habits, h.ID)
	assert.Equal(t, []string{"2025-06-14"}, got.CompletedDates)

	assert.False(t, svc.ToggleHabitCompletion(ctx, "no-such-id", "2025-06-15"))
}

func findHabit(t *testing.T, habits []model.Habit, id string) model.Habit {
	t.Helper()
	for _, h := range habits {
		if h.ID == id {
			return h
		}
	}
	t.Fatalf("habit %s not found", id)
	return model.Habit{}
}

func TestUpdatePreservesOtherRecords(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	first := svc.AddAsset(ctx, model.Asset{Name: "Bike", Type: model.AssetVehicle, Value: 500})
	second := svc.AddAsset(ctx, model.Asset{Name: "Desk", Type: model.AssetOther, Value: 200})

	value := 650.0
	require.True(t, svc.UpdateAsset(ctx, first.ID, AssetUpdate{Value: &value}))

	doc := store.Document(ctx)
	for _, a := range doc.Assets {
		switch a.ID {
		case first.ID:
			assert.InDelta(t, 650, a.Value, 0.001)
		case second.ID:
			assert.InDelta(t, 200, a.Value, 0.001)
		}
	}
}
