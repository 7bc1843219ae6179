package syncer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/money-mastery/internal/model"
)

func TestMergeByIDUnion(t *testing.T) {
	local := []model.Transaction{
		{ID: "1", Description: "local one"},
		{ID: "2", Description: "local two"},
	}
	remote := []model.Transaction{
		{ID: "2", Description: "remote two"},
		{ID: "3", Description: "remote three"},
	}

	merged := mergeByID(local, remote)
	require.Len(t, merged, 3)

	byID := make(map[string]string)
	for _, tx := range merged {
		byID[tx.ID] = tx.Description
	}
	assert.Equal(t, "local one", byID["1"])
	assert.Equal(t, "local two", byID["2"], "local wins the id collision")
	assert.Equal(t, "remote three", byID["3"])

	// Remote entries keep their positions; new local ids append after.
	assert.Equal(t, "2", merged[0].ID)
	assert.Equal(t, "3", merged[1].ID)
	assert.Equal(t, "1", merged[2].ID)
}

func TestMergeByIDEmptySides(t *testing.T) {
	local := []model.Budget{{ID: "1", Category: "Food"}}

	assert.Equal(t, local, mergeByID(local, nil))

	fromRemote := mergeByID(nil, local)
	assert.Equal(t, local, fromRemote)
}

func TestMergeDocumentsLocalNewerUnionsArrays(t *testing.T) {
	older := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	local := model.FinancialData{
		Transactions: []model.Transaction{{ID: "a", Description: "local"}},
		Debts:        []model.Debt{{ID: "d1", Name: "Card", RemainingAmount: 100}},
		Currency:     model.USD,
	}
	remote := model.FinancialData{
		Transactions: []model.Transaction{{ID: "b", Description: "remote"}},
		Debts:        []model.Debt{{ID: "d1", Name: "Card", RemainingAmount: 900}},
		Currency:     model.KES,
	}

	merged := MergeDocuments(local, remote, newer, older)

	require.Len(t, merged.Transactions, 2)
	require.Len(t, merged.Debts, 1)
	assert.InDelta(t, 100, merged.Debts[0].RemainingAmount, 0.001, "local record wins the collision")
	assert.Equal(t, model.USD, merged.Currency)
}

func TestMergeDocumentsTieFavorsLocal(t *testing.T) {
	stamp := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	local := model.FinancialData{
		Budgets: []model.Budget{{ID: "1", Category: "Food", Spent: 50}},
	}
	remote := model.FinancialData{
		Budgets: []model.Budget{{ID: "1", Category: "Food", Spent: 999}},
	}

	merged := MergeDocuments(local, remote, stamp, stamp)
	require.Len(t, merged.Budgets, 1)
	assert.InDelta(t, 50, merged.Budgets[0].Spent, 0.001)
}

func TestMergeDocumentsRemoteNewerWinsWholesale(t *testing.T) {
	older := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	local := model.FinancialData{
		Transactions: []model.Transaction{{ID: "only-local", Description: "lost"}},
		Currency:     model.EUR,
	}
	remote := model.FinancialData{
		Transactions: []model.Transaction{{ID: "only-remote", Description: "kept"}},
		Currency:     model.KES,
	}

	merged := MergeDocuments(local, remote, older, newer)

	require.Len(t, merged.Transactions, 1)
	assert.Equal(t, "only-remote", merged.Transactions[0].ID)
	assert.Equal(t, model.EUR, merged.Currency, "currency is a device preference and stays local")
}

func TestMergeDocumentsSelfMergeIsIdentity(t *testing.T) {
	stamp := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	doc := model.DefaultData(stamp, model.KES)

	merged := MergeDocuments(doc, doc, stamp, stamp)
	assert.Equal(t, doc, merged)
}
