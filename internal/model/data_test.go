package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	doc := FinancialData{
		Transactions: []Transaction{
			{ID: "1", Amount: -120, Type: TypeExpense},
			{ID: "2", Amount: 5000, Type: TypeIncome},
		},
	}

	got := doc.Normalize(USD)

	assert.InDelta(t, 120, got.Transactions[0].Amount, 0.001)
	assert.InDelta(t, 5000, got.Transactions[1].Amount, 0.001)
	assert.Equal(t, USD, got.Currency, "missing currency falls back to the preference")

	// The input document is untouched.
	assert.InDelta(t, -120, doc.Transactions[0].Amount, 0.001)

	kept := FinancialData{Currency: EUR}.Normalize(USD)
	assert.Equal(t, EUR, kept.Currency, "an existing currency is never overwritten")
}

func TestDocumentJSONFieldNames(t *testing.T) {
	// Documents round-trip through a remote store shared with other
	// clients, so the wire names are a compatibility contract.
	raw, err := json.Marshal(FinancialData{Currency: KES})
	require.NoError(t, err)

	for _, key := range []string{
		`"transactions"`, `"savingsGoals"`, `"loansGiven"`,
		`"wishlist"`, `"monthlyIncome"`, `"currency"`,
	} {
		assert.Contains(t, string(raw), key)
	}

	txRaw, err := json.Marshal(Transaction{})
	require.NoError(t, err)
	assert.Contains(t, string(txRaw), `"description"`)

	billRaw, err := json.Marshal(Bill{})
	require.NoError(t, err)
	assert.Contains(t, string(billRaw), `"autoPayEnabled"`)
	assert.Contains(t, string(billRaw), `"nextDueDate"`)

	habitRaw, err := json.Marshal(Habit{})
	require.NoError(t, err)
	assert.Contains(t, string(habitRaw), `"completedDates"`)
}

func TestDefaultDataAnchorsToNow(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	doc := DefaultData(now, EUR)

	assert.Equal(t, EUR, doc.Currency)
	require.NotEmpty(t, doc.Transactions)
	assert.Contains(t, doc.Transactions[0].Date, "2025-06-15", "sample data lands in the current month")

	for _, txn := range doc.Transactions {
		assert.GreaterOrEqual(t, txn.Amount, 0.0, "seeded amounts are magnitudes")
	}

	for _, a := range doc.Accounts {
		assert.Equal(t, EUR, a.Currency)
	}
}

func TestCurrencyValid(t *testing.T) {
	assert.True(t, KES.Valid())
	assert.True(t, USD.Valid())
	assert.False(t, Currency("DOGE").Valid())
	assert.False(t, Currency("").Valid())
}

func TestCompletedOn(t *testing.T) {
	h := Habit{CompletedDates: []string{"2025-06-14", "2025-06-15"}}
	assert.True(t, h.CompletedOn("2025-06-15"))
	assert.False(t, h.CompletedOn("2025-06-13"))
}
