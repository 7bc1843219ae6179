package ledger

import (
	"context"

	"github.com/Veraticus/money-mastery/internal/model"
)

// AssetUpdate carries the fields an update may change.
type AssetUpdate struct {
	Name         *string
	Type         *model.AssetType
	Value        *float64
	PurchaseDate *string
	Description  *string
}

// AddAsset appends a new asset and returns it with its generated id.
func (s *Service) AddAsset(ctx context.Context, a model.Asset) model.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	a.ID = s.nextID()
	doc.Assets = append(doc.Assets, a)
	s.store.SaveDocument(ctx, doc)
	return a
}

// UpdateAsset shallow-merges the given fields over the asset with the
// given id. Unknown ids are a silent no-op.
func (s *Service) UpdateAsset(ctx context.Context, id string, update AssetUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	found := updateByID(doc.Assets, id, func(a *model.Asset) {
		merge(&a.Name, update.Name)
		merge(&a.Type, update.Type)
		merge(&a.Value, update.Value)
		merge(&a.PurchaseDate, update.PurchaseDate)
		merge(&a.Description, update.Description)
	})
	if !found {
		return false
	}
	s.store.SaveDocument(ctx, doc)
	return true
}

// DeleteAsset removes the asset with the given id, if present.
func (s *Service) DeleteAsset(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.store.Document(ctx)
	doc.Assets = removeByID(doc.Assets, id)
	s.store.SaveDocument(ctx, doc)
}
