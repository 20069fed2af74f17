package dto

import "time"

// CategoryResponse is a full category record.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	NameTH      string    `json:"name_th"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MenuItemResponse is a menu item with its joined category.
type MenuItemResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	NameTH      string            `json:"name_th"`
	Description *string           `json:"description"`
	Price       float64           `json:"price"`
	ImageURL    *string           `json:"image_url"`
	CategoryID  int64             `json:"category_id"`
	IsPopular   bool              `json:"is_popular"`
	IsHot       bool              `json:"is_hot"`
	IsAvailable bool              `json:"is_available"`
	Category    *CategoryResponse `json:"category"`
}
