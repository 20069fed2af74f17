package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/napatr/coffeehouse/internal/domain/errors"
	"github.com/napatr/coffeehouse/internal/domain/model"
	"github.com/napatr/coffeehouse/internal/domain/repository"
)

const (
	defaultListLimit = 50

	// statusChangeActor is recorded when a staff update omits changed_by.
	statusChangeActor = "Employee"
)

// OrderUseCase encapsulates order placement and lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place validates and persists a new order. Structural violations fail
// before any transaction is opened; price and availability are re-checked
// by the repository inside the transaction.
func (u *OrderUseCase) Place(ctx context.Context, order model.NewOrder) (int64, error) {
	order.CustomerName = strings.TrimSpace(order.CustomerName)
	if order.CustomerName == "" {
		return 0, domainErrors.ValidationError{Field: "customer_name", Reason: "is required"}
	}
	if len(order.Items) == 0 {
		return 0, domainErrors.ValidationError{Field: "items", Reason: "order must contain at least one item"}
	}
	for _, item := range order.Items {
		if item.MenuItemID <= 0 {
			return 0, domainErrors.ValidationError{Field: "menu_item_id", Reason: "is required for every item"}
		}
		if item.Quantity <= 0 {
			return 0, domainErrors.ValidationError{Field: "quantity", Reason: "must be greater than zero"}
		}
	}

	if order.OrderType == "" {
		order.OrderType = model.OrderTypeTakeaway
	}
	if _, ok := model.ParseOrderType(string(order.OrderType)); !ok {
		return 0, domainErrors.ValidationError{Field: "order_type", Reason: "must be dine_in, takeaway or delivery"}
	}

	order.CustomerEmail = trimmed(order.CustomerEmail)
	order.CustomerPhone = trimmed(order.CustomerPhone)
	order.Notes = trimmed(order.Notes)

	return u.orders.Create(ctx, order)
}

// Get returns one order with its items.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns orders matching the filter, applying default pagination.
func (u *OrderUseCase) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return u.orders.List(ctx, filter)
}

// ListByStatus returns all orders in the given status, oldest first.
func (u *OrderUseCase) ListByStatus(ctx context.Context, status string) ([]model.Order, error) {
	parsed, ok := model.ParseOrderStatus(status)
	if !ok {
		return nil, invalidStatus(status)
	}
	return u.orders.ListByStatus(ctx, parsed)
}

// UpdateStatus applies one transition of the order state machine together
// with its audit entry.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status string, changedBy, notes *string) error {
	parsed, ok := model.ParseOrderStatus(status)
	if !ok {
		return invalidStatus(status)
	}

	actor := statusChangeActor
	if changedBy != nil && strings.TrimSpace(*changedBy) != "" {
		actor = strings.TrimSpace(*changedBy)
	}

	return u.orders.UpdateStatus(ctx, id, parsed, actor, trimmed(notes))
}

// History returns the status audit trail for an order in arrival order.
func (u *OrderUseCase) History(ctx context.Context, orderID int64) ([]model.StatusChange, error) {
	return u.orders.StatusHistory(ctx, orderID)
}

func invalidStatus(value string) domainErrors.InvalidStatusError {
	statuses := model.OrderStatuses()
	valid := make([]string, 0, len(statuses))
	for _, s := range statuses {
		valid = append(valid, string(s))
	}
	return domainErrors.InvalidStatusError{Value: value, Valid: valid}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
