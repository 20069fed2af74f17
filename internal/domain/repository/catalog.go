package repository

import (
	"context"

	"github.com/napatr/coffeehouse/internal/domain/model"
)

// CatalogRepository describes read-only access to categories and menu
// items. FindAvailableItem only returns items currently marked available.
type CatalogRepository interface {
	Categories(ctx context.Context) ([]model.Category, error)
	MenuItems(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error)
	MenuItem(ctx context.Context, id int64) (*model.MenuItem, error)
	PopularMenuItems(ctx context.Context) ([]model.MenuItem, error)
	FindAvailableItem(ctx context.Context, id int64) (*model.PricedItem, error)
}
