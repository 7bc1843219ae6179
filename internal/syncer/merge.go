package syncer

import (
	"time"

	"github.com/Veraticus/money-mastery/internal/model"
)

// keyed is any record addressable by id within a document array.
type keyed interface {
	EntityID() string
}

// mergeByID unions two arrays by record id. Remote entries keep their
// order and come first; local entries overwrite on id collision and new
// local ids append after. Local always wins a collision.
func mergeByID[T keyed](local, remoteItems []T) []T {
	merged := make([]T, 0, len(local)+len(remoteItems))
	index := make(map[string]int, len(local)+len(remoteItems))

	for _, item := range remoteItems {
		index[item.EntityID()] = len(merged)
		merged = append(merged, item)
	}
	for _, item := range local {
		if i, ok := index[item.EntityID()]; ok {
			merged[i] = item
			continue
		}
		index[item.EntityID()] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

// MergeDocuments reconciles the local and remote documents.
//
// Last-write-wins at document granularity: a strictly newer remote
// replaces the local document wholesale, except the currency preference,
// which is a per-device display setting and always stays local. When the
// local side is newer or the timestamps tie, the local document wins and
// every array field becomes the id-union of both sides with local
// priority. Concurrent edits to the same record id between syncs lose
// the non-winning side's changes; no conflict is surfaced.
func MergeDocuments(local, remoteData model.FinancialData, localUpdated, remoteUpdated time.Time) model.FinancialData {
	if remoteUpdated.After(localUpdated) {
		merged := remoteData
		merged.Currency = local.Currency
		return merged
	}

	merged := local
	merged.Transactions = mergeByID(local.Transactions, remoteData.Transactions)
	merged.Budgets = mergeByID(local.Budgets, remoteData.Budgets)
	merged.Debts = mergeByID(local.Debts, remoteData.Debts)
	merged.SavingsGoals = mergeByID(local.SavingsGoals, remoteData.SavingsGoals)
	merged.Accounts = mergeByID(local.Accounts, remoteData.Accounts)
	merged.Assets = mergeByID(local.Assets, remoteData.Assets)
	merged.Liabilities = mergeByID(local.Liabilities, remoteData.Liabilities)
	merged.LoansGiven = mergeByID(local.LoansGiven, remoteData.LoansGiven)
	merged.Bills = mergeByID(local.Bills, remoteData.Bills)
	merged.Habits = mergeByID(local.Habits, remoteData.Habits)
	merged.Wishlist = mergeByID(local.Wishlist, remoteData.Wishlist)
	return merged
}
