package postgres

import (
	"context"

	"github.com/napatr/coffeehouse/internal/domain/model"
)

type statsRepository struct {
	storage *Storage
}

func (r *statsRepository) CountOrdersByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE status=$1`
	var count int64
	if err := r.storage.pool.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) CountOrdersCreatedToday(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE created_at::date = CURRENT_DATE`
	var count int64
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) SumRevenueToday(ctx context.Context, statuses []model.OrderStatus) (float64, error) {
	const query = `SELECT COALESCE(SUM(total_amount), 0) FROM orders
                   WHERE created_at::date = CURRENT_DATE AND status = ANY($1)`
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	var revenue float64
	if err := r.storage.pool.QueryRow(ctx, query, values).Scan(&revenue); err != nil {
		return 0, err
	}
	return revenue, nil
}
