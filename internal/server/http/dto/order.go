package dto

import "time"

// CreateOrderRequest describes the order placement payload.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerEmail *string            `json:"customer_email"`
	CustomerPhone *string            `json:"customer_phone"`
	TableNumber   *int               `json:"table_number"`
	Notes         *string            `json:"notes"`
	OrderType     string             `json:"order_type"`
	Items         []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	MenuItemID          int64   `json:"menu_item_id"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions *string `json:"special_instructions"`
}

// CreateOrderResponse acknowledges a placed order.
type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

// UpdateStatusRequest describes a status transition payload.
type UpdateStatusRequest struct {
	Status    string  `json:"status"`
	ChangedBy *string `json:"changed_by"`
	Notes     *string `json:"notes"`
}

// UpdateStatusResponse acknowledges a status transition.
type UpdateStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OrderResponse is a placed order with nested line items.
type OrderResponse struct {
	ID            int64               `json:"id"`
	CustomerID    *int64              `json:"customer_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone *string             `json:"customer_phone"`
	TableNumber   *int                `json:"table_number"`
	TotalAmount   float64             `json:"total_amount"`
	Status        string              `json:"status"`
	Notes         *string             `json:"notes"`
	OrderType     string              `json:"order_type"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Items         []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one order line with joined menu details.
type OrderItemResponse struct {
	ID                  int64                 `json:"id"`
	OrderID             int64                 `json:"order_id"`
	MenuItemID          int64                 `json:"menu_item_id"`
	Quantity            int                   `json:"quantity"`
	UnitPrice           float64               `json:"unit_price"`
	TotalPrice          float64               `json:"total_price"`
	SpecialInstructions *string               `json:"special_instructions"`
	CreatedAt           time.Time             `json:"created_at"`
	MenuItem            *OrderMenuItemSummary `json:"menu_item"`
}

// OrderMenuItemSummary is the joined menu projection inside order lines.
type OrderMenuItemSummary struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	NameTH      string      `json:"name_th"`
	Description *string     `json:"description"`
	Price       float64     `json:"price"`
	ImageURL    *string     `json:"image_url"`
	Category    CategoryRef `json:"category"`
}

// CategoryRef is a shallow category reference.
type CategoryRef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	NameTH string `json:"name_th"`
}

// StatusChangeResponse is one audit trail entry.
type StatusChangeResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
