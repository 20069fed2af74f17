package app

import (
	"context"
	"errors"
	"testing"

	"github.com/napatr/coffeehouse/internal/domain/model"
	testhelpers "github.com/napatr/coffeehouse/internal/test"
	"github.com/napatr/coffeehouse/internal/usecase"
)

type healthCheckerStub struct {
	err error
}

func (s healthCheckerStub) HealthCheck(context.Context) error { return s.err }

func newTestFacade(orders *testhelpers.OrderRepositoryStub, catalog *testhelpers.CatalogRepositoryStub, stats *testhelpers.StatsRepositoryStub, health HealthChecker) *CoffeehouseFacade {
	if orders == nil {
		orders = &testhelpers.OrderRepositoryStub{}
	}
	if catalog == nil {
		catalog = &testhelpers.CatalogRepositoryStub{}
	}
	if stats == nil {
		stats = &testhelpers.StatsRepositoryStub{}
	}
	if health == nil {
		health = healthCheckerStub{}
	}
	return NewCoffeehouseFacade(
		usecase.NewOrderUseCase(orders),
		usecase.NewCatalogUseCase(catalog),
		usecase.NewDashboardUseCase(stats),
		health,
	)
}

func TestFacadeOrderFlow(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		CreateFn: func(context.Context, model.NewOrder) (int64, error) { return 42, nil },
		GetByIDFn: func(_ context.Context, id int64) (*model.Order, error) {
			return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
		},
		ListByStatusFn: func(_ context.Context, status model.OrderStatus) ([]model.Order, error) {
			return []model.Order{{ID: 1, Status: status}}, nil
		},
		StatusHistoryFn: func(_ context.Context, orderID int64) ([]model.StatusChange, error) {
			return []model.StatusChange{{ID: 1, OrderID: orderID, Status: model.OrderStatusPending, ChangedBy: "System"}}, nil
		},
	}
	facade := newTestFacade(orders, nil, nil, nil)
	ctx := context.Background()

	id, err := facade.PlaceOrder(ctx, model.NewOrder{
		CustomerName: "Anucha",
		Items:        []model.NewOrderItem{{MenuItemID: 1, Quantity: 1}},
	})
	if err != nil || id != 42 {
		t.Fatalf("unexpected placement result: %d %v", id, err)
	}

	order, err := facade.Order(ctx, 42)
	if err != nil || order.ID != 42 {
		t.Fatalf("unexpected order: %+v %v", order, err)
	}

	byStatus, err := facade.OrdersByStatus(ctx, "preparing")
	if err != nil || len(byStatus) != 1 {
		t.Fatalf("unexpected listing: %+v %v", byStatus, err)
	}

	if err := facade.UpdateOrderStatus(ctx, 42, "ready", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history, err := facade.OrderHistory(ctx, 42)
	if err != nil || len(history) != 1 {
		t.Fatalf("unexpected history: %+v %v", history, err)
	}
}

func TestFacadeValidationPassesThrough(t *testing.T) {
	facade := newTestFacade(nil, nil, nil, nil)

	if _, err := facade.PlaceOrder(context.Background(), model.NewOrder{}); err == nil {
		t.Fatal("expected validation error")
	}
	if err := facade.UpdateOrderStatus(context.Background(), 1, "brewing", nil, nil); err == nil {
		t.Fatal("expected invalid status error")
	}
}

func TestFacadeCatalog(t *testing.T) {
	catalog := &testhelpers.CatalogRepositoryStub{
		CategoriesFn: func(context.Context) ([]model.Category, error) {
			return []model.Category{{ID: 1, Name: "Coffee"}}, nil
		},
		MenuItemsFn: func(context.Context, model.MenuFilter) ([]model.MenuItem, error) {
			return []model.MenuItem{{ID: 1, Name: "Espresso"}}, nil
		},
		MenuItemFn: func(_ context.Context, id int64) (*model.MenuItem, error) {
			return &model.MenuItem{ID: id, Name: "Espresso"}, nil
		},
		PopularMenuItemsFn: func(context.Context) ([]model.MenuItem, error) {
			return []model.MenuItem{{ID: 2, Name: "Latte", IsPopular: true}}, nil
		},
	}
	facade := newTestFacade(nil, catalog, nil, nil)
	ctx := context.Background()

	if categories, err := facade.Categories(ctx); err != nil || len(categories) != 1 {
		t.Fatalf("unexpected categories: %v %v", categories, err)
	}
	if items, err := facade.MenuItems(ctx, model.MenuFilter{}); err != nil || len(items) != 1 {
		t.Fatalf("unexpected items: %v %v", items, err)
	}
	if item, err := facade.MenuItem(ctx, 1); err != nil || item.ID != 1 {
		t.Fatalf("unexpected item: %+v %v", item, err)
	}
	if popular, err := facade.PopularMenuItems(ctx); err != nil || len(popular) != 1 {
		t.Fatalf("unexpected popular items: %v %v", popular, err)
	}
}

func TestFacadeDashboardStats(t *testing.T) {
	stats := &testhelpers.StatsRepositoryStub{
		CountByStatusFn: func(_ context.Context, status model.OrderStatus) (int64, error) {
			if status == model.OrderStatusPending {
				return 2, nil
			}
			return 0, nil
		},
	}
	facade := newTestFacade(nil, nil, stats, nil)

	snapshot, err := facade.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.PendingOrders != 2 {
		t.Fatalf("expected 2 pending orders, got %d", snapshot.PendingOrders)
	}
}

func TestFacadeHealth(t *testing.T) {
	facade := newTestFacade(nil, nil, nil, healthCheckerStub{})
	if err := facade.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantErr := errors.New("ping")
	facade = newTestFacade(nil, nil, nil, healthCheckerStub{err: wantErr})
	if err := facade.Health(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected health error, got %v", err)
	}
}
