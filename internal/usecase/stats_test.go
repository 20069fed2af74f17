package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/napatr/coffeehouse/internal/domain/model"
	"github.com/napatr/coffeehouse/internal/test"
)

func TestDashboardUseCaseStats(t *testing.T) {
	var revenueArgs []model.OrderStatus
	repo := &test.StatsRepositoryStub{
		CountByStatusFn: func(_ context.Context, status model.OrderStatus) (int64, error) {
			switch status {
			case model.OrderStatusPending:
				return 3, nil
			case model.OrderStatusPreparing:
				return 2, nil
			case model.OrderStatusReady:
				return 1, nil
			}
			return 0, nil
		},
		CountTodayFn: func(context.Context) (int64, error) { return 12, nil },
		RevenueTodayFn: func(_ context.Context, statuses []model.OrderStatus) (float64, error) {
			revenueArgs = statuses
			return 480.0, nil
		},
	}
	uc := NewDashboardUseCase(repo)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.PendingOrders != 3 || stats.PreparingOrders != 2 || stats.ReadyOrders != 1 {
		t.Fatalf("unexpected counters: %+v", stats)
	}
	if stats.TodayRevenue != 480.0 || stats.TodayOrders != 12 {
		t.Fatalf("unexpected daily figures: %+v", stats)
	}
	if len(revenueArgs) != 2 || revenueArgs[0] != model.OrderStatusCompleted || revenueArgs[1] != model.OrderStatusReady {
		t.Fatalf("unexpected revenue statuses: %v", revenueArgs)
	}
}

func TestDashboardUseCaseStatsError(t *testing.T) {
	wantErr := errors.New("db down")

	t.Run("count fails", func(t *testing.T) {
		uc := NewDashboardUseCase(&test.StatsRepositoryStub{
			CountByStatusFn: func(context.Context, model.OrderStatus) (int64, error) {
				return 0, wantErr
			},
		})
		if _, err := uc.Stats(context.Background()); !errors.Is(err, wantErr) {
			t.Fatalf("expected error, got %v", err)
		}
	})

	t.Run("revenue fails", func(t *testing.T) {
		uc := NewDashboardUseCase(&test.StatsRepositoryStub{
			RevenueTodayFn: func(context.Context, []model.OrderStatus) (float64, error) {
				return 0, wantErr
			},
		})
		if _, err := uc.Stats(context.Background()); !errors.Is(err, wantErr) {
			t.Fatalf("expected error, got %v", err)
		}
	})
}
