package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/napatr/coffeehouse/internal/domain/errors"
	"github.com/napatr/coffeehouse/internal/domain/model"
	"github.com/napatr/coffeehouse/internal/test"
)

func TestCatalogUseCaseCategories(t *testing.T) {
	repo := &test.CatalogRepositoryStub{
		CategoriesFn: func(context.Context) ([]model.Category, error) {
			return []model.Category{{ID: 1, Name: "Coffee", NameTH: "กาแฟ"}}, nil
		},
	}
	uc := NewCatalogUseCase(repo)

	categories, err := uc.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Coffee" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestCatalogUseCaseMenuItems(t *testing.T) {
	var got model.MenuFilter
	repo := &test.CatalogRepositoryStub{
		MenuItemsFn: func(_ context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
			got = filter
			return []model.MenuItem{{ID: 1, Name: "Espresso"}}, nil
		},
	}
	uc := NewCatalogUseCase(repo)

	categoryID := int64(2)
	items, err := uc.MenuItems(context.Background(), model.MenuFilter{CategoryID: &categoryID, AvailableOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if got.CategoryID == nil || *got.CategoryID != 2 || !got.AvailableOnly {
		t.Fatalf("filter not passed through: %+v", got)
	}
}

func TestCatalogUseCaseMenuItem(t *testing.T) {
	repo := &test.CatalogRepositoryStub{
		MenuItemFn: func(_ context.Context, id int64) (*model.MenuItem, error) {
			if id != 1 {
				return nil, domainErrors.ErrNotFound
			}
			return &model.MenuItem{ID: 1, Name: "Espresso"}, nil
		},
	}
	uc := NewCatalogUseCase(repo)

	item, err := uc.MenuItem(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Espresso" {
		t.Fatalf("unexpected item: %+v", item)
	}

	if _, err := uc.MenuItem(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogUseCasePopularMenuItems(t *testing.T) {
	repo := &test.CatalogRepositoryStub{
		PopularMenuItemsFn: func(context.Context) ([]model.MenuItem, error) {
			return []model.MenuItem{{ID: 2, Name: "Latte", IsPopular: true}}, nil
		},
	}
	uc := NewCatalogUseCase(repo)

	items, err := uc.PopularMenuItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || !items[0].IsPopular {
		t.Fatalf("unexpected items: %+v", items)
	}
}
