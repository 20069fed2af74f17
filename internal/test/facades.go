package test

import (
	"context"
	"time"

	domainErrors "github.com/napatr/coffeehouse/internal/domain/errors"
	"github.com/napatr/coffeehouse/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn        func(context.Context, model.NewOrder) (int64, error)
	OrderFn        func(context.Context, int64) (*model.Order, error)
	OrdersFn       func(context.Context, model.OrderFilter) ([]model.Order, error)
	ByStatusFn     func(context.Context, string) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, string, *string, *string) error
	HistoryFn      func(context.Context, int64) ([]model.StatusChange, error)
}

// PlaceOrder delegates to provided function or returns a fixed order id.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, order model.NewOrder) (int64, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, order)
	}
	return 1, nil
}

// Order delegates to provided function or returns a pending takeaway order.
func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, CustomerName: "Walk-in", Status: model.OrderStatusPending, OrderType: model.OrderTypeTakeaway, CreatedAt: time.Unix(0, 0), UpdatedAt: time.Unix(0, 0)}, nil
}

// Orders delegates to provided function or returns an empty listing.
func (s OrderFacadeStub) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{}, nil
}

// OrdersByStatus delegates to provided function or returns an empty listing.
func (s OrderFacadeStub) OrdersByStatus(ctx context.Context, status string) ([]model.Order, error) {
	if s.ByStatusFn != nil {
		return s.ByStatusFn(ctx, status)
	}
	return []model.Order{}, nil
}

// UpdateOrderStatus delegates to provided function or reports success.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status string, changedBy, notes *string) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, changedBy, notes)
	}
	return nil
}

// OrderHistory delegates to provided function or returns one created entry.
func (s OrderFacadeStub) OrderHistory(ctx context.Context, id int64) ([]model.StatusChange, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, id)
	}
	return []model.StatusChange{{ID: 1, OrderID: id, Status: model.OrderStatusPending, ChangedBy: "System", CreatedAt: time.Unix(0, 0)}}, nil
}

// CatalogFacadeStub simulates catalog lookups.
type CatalogFacadeStub struct {
	CategoriesFn func(context.Context) ([]model.Category, error)
	MenuItemsFn  func(context.Context, model.MenuFilter) ([]model.MenuItem, error)
	MenuItemFn   func(context.Context, int64) (*model.MenuItem, error)
	PopularFn    func(context.Context) ([]model.MenuItem, error)
}

// Categories delegates to provided function or returns one category.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "Coffee", NameTH: "กาแฟ"}}, nil
}

// MenuItems delegates to provided function or returns one item.
func (s CatalogFacadeStub) MenuItems(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	if s.MenuItemsFn != nil {
		return s.MenuItemsFn(ctx, filter)
	}
	return []model.MenuItem{{ID: 1, Name: "Latte", NameTH: "ลาเต้", Price: 60, CategoryID: 1, IsAvailable: true}}, nil
}

// MenuItem delegates to provided function or returns not found.
func (s CatalogFacadeStub) MenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.MenuItemFn != nil {
		return s.MenuItemFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// PopularMenuItems delegates to provided function or returns no items.
func (s CatalogFacadeStub) PopularMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	if s.PopularFn != nil {
		return s.PopularFn(ctx)
	}
	return []model.MenuItem{}, nil
}

// StatsFacadeStub simulates dashboard aggregation.
type StatsFacadeStub struct {
	StatsFn func(context.Context) (*model.DashboardStats, error)
}

// DashboardStats delegates to provided function or returns zeroed counters.
func (s StatsFacadeStub) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.DashboardStats{}, nil
}

// HealthFacadeStub simulates store health checks.
type HealthFacadeStub struct {
	Err error
}

// Health returns the configured error.
func (s HealthFacadeStub) Health(context.Context) error {
	return s.Err
}

// CoffeehouseFacadeStub aggregates all facade stubs for router tests.
type CoffeehouseFacadeStub struct {
	OrderFacadeStub
	CatalogFacadeStub
	StatsFacadeStub
	HealthFacadeStub
}
