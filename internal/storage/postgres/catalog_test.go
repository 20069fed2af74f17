package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/napatr/coffeehouse/internal/domain/errors"
	"github.com/napatr/coffeehouse/internal/domain/model"
)

var menuItemTestColumns = []string{
	"id", "name", "name_th", "description", "price", "image_url", "category_id",
	"is_popular", "is_hot", "is_available", "created_at", "updated_at",
	"c_id", "c_name", "c_name_th", "c_description", "c_created_at", "c_updated_at",
}

func TestCatalogRepositoryCategories(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Catalog()

	now := time.Now()
	mock.ExpectQuery("FROM categories ORDER BY id").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "name", "name_th", "description", "created_at", "updated_at"}).
			AddRow(int64(1), "Coffee", "กาแฟ", nil, now, now).
			AddRow(int64(2), "Tea", "ชา", ptrString("hot and iced"), now, now),
	)

	categories, err := repo.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].Name != "Coffee" || categories[0].NameTH != "กาแฟ" {
		t.Fatalf("unexpected category: %+v", categories[0])
	}
	if categories[1].Description == nil || *categories[1].Description != "hot and iced" {
		t.Fatalf("unexpected description: %+v", categories[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCatalogRepositoryMenuItems(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Catalog()

	now := time.Now()
	rows := func() *pgxmockv3.Rows {
		return pgxmockv3.NewRows(menuItemTestColumns).AddRow(
			int64(1), "Espresso", "เอสเพรสโซ", nil, 25.0, nil, int64(1),
			true, true, true, now, now,
			int64(1), "Coffee", "กาแฟ", nil, now, now,
		)
	}

	t.Run("all", func(t *testing.T) {
		mock.ExpectQuery("FROM menu_items mi JOIN categories c").WillReturnRows(rows())

		items, err := repo.MenuItems(context.Background(), model.MenuFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Espresso" {
			t.Fatalf("unexpected items: %+v", items)
		}
		if items[0].Category == nil || items[0].Category.Name != "Coffee" {
			t.Fatalf("unexpected category: %+v", items[0].Category)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		mock.ExpectQuery("WHERE mi.category_id=").WithArgs(int64(1)).WillReturnRows(rows())

		categoryID := int64(1)
		items, err := repo.MenuItems(context.Background(), model.MenuFilter{CategoryID: &categoryID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
	})

	t.Run("available only", func(t *testing.T) {
		mock.ExpectQuery("WHERE mi.is_available").WillReturnRows(rows())

		items, err := repo.MenuItems(context.Background(), model.MenuFilter{AvailableOnly: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || !items[0].IsAvailable {
			t.Fatalf("unexpected items: %+v", items)
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCatalogRepositoryPopularMenuItems(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Catalog()

	now := time.Now()
	mock.ExpectQuery("WHERE mi.is_popular AND mi.is_available").WillReturnRows(
		pgxmockv3.NewRows(menuItemTestColumns).AddRow(
			int64(2), "Latte", "ลาเต้", nil, 45.0, nil, int64(1),
			true, false, true, now, now,
			int64(1), "Coffee", "กาแฟ", nil, now, now,
		),
	)

	items, err := repo.PopularMenuItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || !items[0].IsPopular {
		t.Fatalf("unexpected items: %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCatalogRepositoryMenuItem(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Catalog()

	now := time.Now()
	mock.ExpectQuery("WHERE mi.id=").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows(menuItemTestColumns).AddRow(
			int64(1), "Espresso", "เอสเพรสโซ", nil, 25.0, nil, int64(1),
			true, true, true, now, now,
			int64(1), "Coffee", "กาแฟ", nil, now, now,
		),
	)

	item, err := repo.MenuItem(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 1 || item.Price != 25.0 {
		t.Fatalf("unexpected item: %+v", item)
	}

	mock.ExpectQuery("WHERE mi.id=").WithArgs(int64(404)).WillReturnRows(
		pgxmockv3.NewRows(menuItemTestColumns),
	)
	if _, err := repo.MenuItem(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCatalogRepositoryFindAvailableItem(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Catalog()

	mock.ExpectQuery("SELECT id, price FROM menu_items WHERE id=").WithArgs(int64(1)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "price"}).AddRow(int64(1), 25.0))

	item, err := repo.FindAvailableItem(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 1 || item.UnitPrice != 25.0 {
		t.Fatalf("unexpected item: %+v", item)
	}

	mock.ExpectQuery("SELECT id, price FROM menu_items WHERE id=").WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)
	if _, err := repo.FindAvailableItem(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
