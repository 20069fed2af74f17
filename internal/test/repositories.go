package test

import (
	"context"

	domainErrors "github.com/napatr/coffeehouse/internal/domain/errors"
	"github.com/napatr/coffeehouse/internal/domain/model"
)

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn        func(context.Context, model.NewOrder) (int64, error)
	GetByIDFn       func(context.Context, int64) (*model.Order, error)
	ListFn          func(context.Context, model.OrderFilter) ([]model.Order, error)
	ListByStatusFn  func(context.Context, model.OrderStatus) ([]model.Order, error)
	UpdateStatusFn  func(context.Context, int64, model.OrderStatus, string, *string) error
	StatusHistoryFn func(context.Context, int64) ([]model.StatusChange, error)
}

// Create delegates to the provided function or reports success.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.NewOrder) (int64, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return 1, nil
}

// GetByID delegates to the provided function or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrOrderNotFound
}

// List delegates to the provided function or returns an empty listing.
func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return nil, nil
}

// ListByStatus delegates to the provided function or returns an empty listing.
func (s *OrderRepositoryStub) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if s.ListByStatusFn != nil {
		return s.ListByStatusFn(ctx, status)
	}
	return nil, nil
}

// UpdateStatus delegates to the provided function or reports success.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, changedBy string, notes *string) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status, changedBy, notes)
	}
	return nil
}

// StatusHistory delegates to the provided function or returns no entries.
func (s *OrderRepositoryStub) StatusHistory(ctx context.Context, orderID int64) ([]model.StatusChange, error) {
	if s.StatusHistoryFn != nil {
		return s.StatusHistoryFn(ctx, orderID)
	}
	return nil, nil
}

// CatalogRepositoryStub allows tests to customize catalog lookups.
type CatalogRepositoryStub struct {
	CategoriesFn        func(context.Context) ([]model.Category, error)
	MenuItemsFn         func(context.Context, model.MenuFilter) ([]model.MenuItem, error)
	MenuItemFn          func(context.Context, int64) (*model.MenuItem, error)
	PopularMenuItemsFn  func(context.Context) ([]model.MenuItem, error)
	FindAvailableItemFn func(context.Context, int64) (*model.PricedItem, error)
}

// Categories delegates to the provided function or returns no categories.
func (s *CatalogRepositoryStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return nil, nil
}

// MenuItems delegates to the provided function or returns no items.
func (s *CatalogRepositoryStub) MenuItems(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	if s.MenuItemsFn != nil {
		return s.MenuItemsFn(ctx, filter)
	}
	return nil, nil
}

// MenuItem delegates to the provided function or returns not found.
func (s *CatalogRepositoryStub) MenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.MenuItemFn != nil {
		return s.MenuItemFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// PopularMenuItems delegates to the provided function or returns no items.
func (s *CatalogRepositoryStub) PopularMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	if s.PopularMenuItemsFn != nil {
		return s.PopularMenuItemsFn(ctx)
	}
	return nil, nil
}

// FindAvailableItem delegates to the provided function or returns not found.
func (s *CatalogRepositoryStub) FindAvailableItem(ctx context.Context, id int64) (*model.PricedItem, error) {
	if s.FindAvailableItemFn != nil {
		return s.FindAvailableItemFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// StatsRepositoryStub allows tests to customize dashboard aggregations.
type StatsRepositoryStub struct {
	CountByStatusFn func(context.Context, model.OrderStatus) (int64, error)
	CountTodayFn    func(context.Context) (int64, error)
	RevenueTodayFn  func(context.Context, []model.OrderStatus) (float64, error)
}

// CountOrdersByStatus delegates to the provided function or returns zero.
func (s *StatsRepositoryStub) CountOrdersByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	if s.CountByStatusFn != nil {
		return s.CountByStatusFn(ctx, status)
	}
	return 0, nil
}

// CountOrdersCreatedToday delegates to the provided function or returns zero.
func (s *StatsRepositoryStub) CountOrdersCreatedToday(ctx context.Context) (int64, error) {
	if s.CountTodayFn != nil {
		return s.CountTodayFn(ctx)
	}
	return 0, nil
}

// SumRevenueToday delegates to the provided function or returns zero.
func (s *StatsRepositoryStub) SumRevenueToday(ctx context.Context, statuses []model.OrderStatus) (float64, error) {
	if s.RevenueTodayFn != nil {
		return s.RevenueTodayFn(ctx, statuses)
	}
	return 0, nil
}
