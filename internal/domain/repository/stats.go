package repository

import (
	"context"

	"github.com/napatr/coffeehouse/internal/domain/model"
)

// StatsRepository describes read-only dashboard aggregations over orders.
// "Today" means the store's calendar day.
type StatsRepository interface {
	CountOrdersByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
	CountOrdersCreatedToday(ctx context.Context) (int64, error)
	SumRevenueToday(ctx context.Context, statuses []model.OrderStatus) (float64, error)
}
