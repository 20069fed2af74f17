package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/napatr/coffeehouse/internal/app"
	"github.com/napatr/coffeehouse/internal/config"
	"github.com/napatr/coffeehouse/internal/domain/repository"
	"github.com/napatr/coffeehouse/internal/storage/postgres"
	"github.com/napatr/coffeehouse/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		APISecret:       "secret",
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	orderRepo := &test.OrderRepositoryStub{}
	catalogRepo := &test.CatalogRepositoryStub{}
	statsRepo := &test.StatsRepositoryStub{}

	var facade *app.CoffeehouseFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.CatalogRepository(catalogRepo)),
			fx.Replace(repository.StatsRepository(statsRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected coffeehouse facade instance")
	}
}
