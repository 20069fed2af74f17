package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/napatr/coffeehouse/internal/config"
	"github.com/napatr/coffeehouse/internal/server/http/handlers"
	"github.com/napatr/coffeehouse/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CoffeehouseFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/healthz", handlers.NewHealthHandler(facade).Check)

	orderHandler := handlers.NewOrderHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)

	api := engine.Group("/api/v1")
	api.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
	}))
	api.Use(middleware.BearerAuth(cfg.APISecret))

	api.GET("/categories", catalogHandler.Categories)

	menu := api.Group("/menu")
	menu.GET("", catalogHandler.Menu)
	menu.GET("/popular", catalogHandler.Popular)
	menu.GET("/:id", catalogHandler.MenuItem)

	orders := api.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/status/:status", orderHandler.ListByStatus)
	orders.GET("/stats/dashboard", statsHandler.Dashboard)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus)
	orders.GET("/:id/history", orderHandler.History)

	api.GET("/dashboard/stats", statsHandler.Dashboard)

	return engine
}
