package model

import "time"

// Category groups menu items.
type Category struct {
	ID          int64
	Name        string
	NameTH      string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MenuItem is a sellable catalog entry. The catalog is read-only for the
// ordering core; price here is the authoritative unit price.
type MenuItem struct {
	ID          int64
	Name        string
	NameTH      string
	Description *string
	Price       float64
	ImageURL    *string
	CategoryID  int64
	IsPopular   bool
	IsHot       bool
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Category    *Category
}

// PricedItem is the minimal catalog projection used during checkout.
type PricedItem struct {
	ID        int64
	UnitPrice float64
}

// MenuFilter narrows menu listings.
type MenuFilter struct {
	CategoryID    *int64
	AvailableOnly bool
}
