package di

import (
	"go.uber.org/fx"

	"github.com/napatr/coffeehouse/internal/app"
	"github.com/napatr/coffeehouse/internal/config"
	"github.com/napatr/coffeehouse/internal/logger"
	"github.com/napatr/coffeehouse/internal/server/http/handlers"
	"github.com/napatr/coffeehouse/internal/server/http/router"
	"github.com/napatr/coffeehouse/internal/storage/postgres"
	"github.com/napatr/coffeehouse/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.CoffeehouseFacade) handlers.CoffeehouseFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
