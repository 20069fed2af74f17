package model

import "time"

// OrderStatus describes the kitchen-facing order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses returns every recognized status in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
}

// ParseOrderStatus converts a raw string into a recognized status.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	for _, s := range OrderStatuses() {
		if string(s) == value {
			return s, true
		}
	}
	return "", false
}

// transitions enumerates which statuses may follow each current status.
// Staff may move an order between any in-flight statuses, including
// backwards; completed and cancelled are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   OrderStatuses(),
	OrderStatusConfirmed: OrderStatuses(),
	OrderStatusPreparing: OrderStatuses(),
	OrderStatusReady:     OrderStatuses(),
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// Terminal reports whether no further transitions are permitted.
func (s OrderStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether next is a permitted successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderType describes how the customer receives the order.
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
)

// ParseOrderType converts a raw string into a recognized order type.
func ParseOrderType(value string) (OrderType, bool) {
	switch OrderType(value) {
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery:
		return OrderType(value), true
	}
	return "", false
}

// Order is a placed order together with its line items.
type Order struct {
	ID            int64
	CustomerID    *int64
	CustomerName  string
	CustomerPhone *string
	TableNumber   *int
	TotalAmount   float64
	Status        OrderStatus
	Notes         *string
	OrderType     OrderType
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []OrderItem
}

// OrderItem is a single order line. UnitPrice is a snapshot of the menu
// price at order time; later catalog edits never change it.
type OrderItem struct {
	ID                  int64
	OrderID             int64
	MenuItemID          int64
	Quantity            int
	UnitPrice           float64
	TotalPrice          float64
	SpecialInstructions *string
	CreatedAt           time.Time
	MenuItem            *OrderMenuItem
}

// OrderMenuItem carries the joined menu details returned with order lines.
type OrderMenuItem struct {
	ID          int64
	Name        string
	NameTH      string
	Description *string
	Price       float64
	ImageURL    *string
	Category    CategoryRef
}

// CategoryRef is a shallow category reference embedded in order payloads.
type CategoryRef struct {
	ID     int64
	Name   string
	NameTH string
}

// StatusChange is one row of the append-only order audit trail.
type StatusChange struct {
	ID        int64
	OrderID   int64
	Status    OrderStatus
	ChangedBy string
	Notes     *string
	CreatedAt time.Time
}

// NewOrder is a validated order placement request.
type NewOrder struct {
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	TableNumber   *int
	Notes         *string
	OrderType     OrderType
	Items         []NewOrderItem
}

// NewOrderItem is one requested line of a new order. The price is looked
// up server side and never supplied by the caller.
type NewOrderItem struct {
	MenuItemID          int64
	Quantity            int
	SpecialInstructions *string
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status    *OrderStatus
	OrderType *OrderType
	Limit     int
	Offset    int
}
