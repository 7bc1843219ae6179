package ledger

import (
	"context"
	"time"

	"github.com/Veraticus/money-mastery/internal/model"
)

// WishlistItemUpdate carries the fields an update may change.
type WishlistItemUpdate struct {
	Name        *string
	Price       *float64
	Priority    *model.Priority
	Category    *model.WishlistCategory
	URL         *string
	Notes       *string
	SavedAmount *float64
	TargetDate  *string
	IsPurchased *bool
}

// AddWishlistItem appends a new item and returns it with its generated id.
func (s *Service) AddWishlistItem(ctx context.Context, w model.WishlistItem) model.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	w.ID = s.nextID()
	if w.AddedDate == "" {
		w.AddedDate = s.now().Format(time.RFC3339)
	}
	doc.Wishlist = append(doc.Wishlist, w)
	s.store.SaveDocument(ctx, doc)
	return w
}

// UpdateWishlistItem shallow-merges the given fields over the item with
// the given id. Unknown ids are a silent no-op.
func (s *Service) UpdateWishlistItem(ctx context.Context, id string, update WishlistItemUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	found := updateByID(doc.Wishlist, id, func(w *model.WishlistItem) {
		merge(&w.Name, update.Name)
		merge(&w.Price, update.Price)
		merge(&w.Priority, update.Priority)
		merge(&w.Category, update.Category)
		merge(&w.URL, update.URL)
		merge(&w.Notes, update.Notes)
		merge(&w.SavedAmount, update.SavedAmount)
		merge(&w.TargetDate, update.TargetDate)
		merge(&w.IsPurchased, update.IsPurchased)
	})
	if !found {
		return false
	}
	s.store.SaveDocument(ctx, doc)
	return true
}

// DeleteWishlistItem removes the item with the given id, if present.
func (s *Service) DeleteWishlistItem(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	doc.Wishlist = removeByID(doc.Wishlist, id)
	s.store.SaveDocument(ctx, doc)
}
