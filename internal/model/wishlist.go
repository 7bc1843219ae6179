package model

// WishlistCategory groups wishlist items.
type WishlistCategory string

// Wishlist category values.
const (
	WishElectronics   WishlistCategory = "electronics"
	WishClothing      WishlistCategory = "clothing"
	WishTravel        WishlistCategory = "travel"
	WishHome          WishlistCategory = "home"
	WishEntertainment WishlistCategory = "entertainment"
	WishOther         WishlistCategory = "other"
)

// WishlistItem is a planned purchase being saved toward.
type WishlistItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Priority    Priority         `json:"priority"`
	Category    WishlistCategory `json:"category"`
	URL         string           `json:"url,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	SavedAmount float64          `json:"savedAmount"`
	TargetDate  string           `json:"targetDate,omitempty"`
	IsPurchased bool             `json:"isPurchased"`
	AddedDate   string           `json:"addedDate"`
}

// EntityID returns the record id.
func (w WishlistItem) EntityID() string { return w.ID }
