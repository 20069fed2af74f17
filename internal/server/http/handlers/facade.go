package handlers

import (
	"context"

	"github.com/napatr/coffeehouse/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, order model.NewOrder) (int64, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	OrdersByStatus(ctx context.Context, status string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string, changedBy, notes *string) error
	OrderHistory(ctx context.Context, id int64) ([]model.StatusChange, error)
}

// CatalogFacade provides read-only catalog lookups.
type CatalogFacade interface {
	Categories(ctx context.Context) ([]model.Category, error)
	MenuItems(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error)
	MenuItem(ctx context.Context, id int64) (*model.MenuItem, error)
	PopularMenuItems(ctx context.Context) ([]model.MenuItem, error)
}

// StatsFacade derives the staff dashboard counters.
type StatsFacade interface {
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

// HealthFacade verifies backing store connectivity.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// CoffeehouseFacade aggregates the full set of operations used across handlers.
type CoffeehouseFacade interface {
	OrderFacade
	CatalogFacade
	StatsFacade
	HealthFacade
}
