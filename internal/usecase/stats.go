package usecase

import (
	"context"

	"github.com/napatr/coffeehouse/internal/domain/model"
	"github.com/napatr/coffeehouse/internal/domain/repository"
)

// revenueStatuses lists the statuses counted towards today's revenue.
var revenueStatuses = []model.OrderStatus{model.OrderStatusCompleted, model.OrderStatusReady}

// DashboardUseCase derives the staff dashboard counters.
type DashboardUseCase struct {
	stats repository.StatsRepository
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

// Stats assembles a point-in-time dashboard snapshot.
func (u *DashboardUseCase) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	var err error

	if stats.PendingOrders, err = u.stats.CountOrdersByStatus(ctx, model.OrderStatusPending); err != nil {
		return nil, err
	}
	if stats.PreparingOrders, err = u.stats.CountOrdersByStatus(ctx, model.OrderStatusPreparing); err != nil {
		return nil, err
	}
	if stats.ReadyOrders, err = u.stats.CountOrdersByStatus(ctx, model.OrderStatusReady); err != nil {
		return nil, err
	}
	if stats.TodayRevenue, err = u.stats.SumRevenueToday(ctx, revenueStatuses); err != nil {
		return nil, err
	}
	if stats.TodayOrders, err = u.stats.CountOrdersCreatedToday(ctx); err != nil {
		return nil, err
	}

	return &stats, nil
}
