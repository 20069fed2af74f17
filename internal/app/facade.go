package app

import (
	"context"

	"github.com/napatr/coffeehouse/internal/domain/model"
	"github.com/napatr/coffeehouse/internal/usecase"
)

// HealthChecker verifies backing store connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CoffeehouseFacade aggregates the use cases exposed over HTTP.
type CoffeehouseFacade struct {
	orders  *usecase.OrderUseCase
	catalog *usecase.CatalogUseCase
	stats   *usecase.DashboardUseCase
	store   HealthChecker
}

// NewCoffeehouseFacade constructs the application facade.
func NewCoffeehouseFacade(orders *usecase.OrderUseCase, catalog *usecase.CatalogUseCase, stats *usecase.DashboardUseCase, store HealthChecker) *CoffeehouseFacade {
	return &CoffeehouseFacade{orders: orders, catalog: catalog, stats: stats, store: store}
}

func (f *CoffeehouseFacade) PlaceOrder(ctx context.Context, order model.NewOrder) (int64, error) {
	return f.orders.Place(ctx, order)
}

func (f *CoffeehouseFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *CoffeehouseFacade) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *CoffeehouseFacade) OrdersByStatus(ctx context.Context, status string) ([]model.Order, error) {
	return f.orders.ListByStatus(ctx, status)
}

func (f *CoffeehouseFacade) UpdateOrderStatus(ctx context.Context, id int64, status string, changedBy, notes *string) error {
	return f.orders.UpdateStatus(ctx, id, status, changedBy, notes)
}

func (f *CoffeehouseFacade) OrderHistory(ctx context.Context, id int64) ([]model.StatusChange, error) {
	return f.orders.History(ctx, id)
}

func (f *CoffeehouseFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *CoffeehouseFacade) MenuItems(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	return f.catalog.MenuItems(ctx, filter)
}

func (f *CoffeehouseFacade) MenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	return f.catalog.MenuItem(ctx, id)
}

func (f *CoffeehouseFacade) PopularMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	return f.catalog.PopularMenuItems(ctx)
}

func (f *CoffeehouseFacade) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	return f.stats.Stats(ctx)
}

func (f *CoffeehouseFacade) Health(ctx context.Context) error {
	return f.store.HealthCheck(ctx)
}
