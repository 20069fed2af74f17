package repository

import (
	"context"

	"github.com/napatr/coffeehouse/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Create and
// UpdateStatus are atomic: every row they touch is written inside one
// transaction or not at all.
type OrderRepository interface {
	Create(ctx context.Context, order model.NewOrder) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, changedBy string, notes *string) error
	StatusHistory(ctx context.Context, orderID int64) ([]model.StatusChange, error)
}
