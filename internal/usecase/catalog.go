package usecase

import (
	"context"

	"github.com/napatr/coffeehouse/internal/domain/model"
	"github.com/napatr/coffeehouse/internal/domain/repository"
)

// CatalogUseCase exposes read-only catalog lookups.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// Categories returns all categories ordered by id.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.catalog.Categories(ctx)
}

// MenuItems returns menu items matching the filter with joined categories.
func (u *CatalogUseCase) MenuItems(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	return u.catalog.MenuItems(ctx, filter)
}

// MenuItem returns one menu item or ErrNotFound.
func (u *CatalogUseCase) MenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	return u.catalog.MenuItem(ctx, id)
}

// PopularMenuItems returns available items flagged as popular.
func (u *CatalogUseCase) PopularMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	return u.catalog.PopularMenuItems(ctx)
}
