package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/napatr/coffeehouse/internal/domain/errors"
	"github.com/napatr/coffeehouse/internal/domain/model"
)

type catalogRepository struct {
	storage *Storage
}

const menuItemColumns = `mi.id, mi.name, mi.name_th, mi.description, mi.price, mi.image_url, mi.category_id,
                         mi.is_popular, mi.is_hot, mi.is_available, mi.created_at, mi.updated_at,
                         c.id, c.name, c.name_th, c.description, c.created_at, c.updated_at`

func (r *catalogRepository) Categories(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, name_th, description, created_at, updated_at FROM categories ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.NameTH, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *catalogRepository) MenuItems(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM menu_items mi JOIN categories c ON c.id = mi.category_id`, menuItemColumns)
	var conditions []string
	var args []any
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("mi.category_id=$%d", len(args)))
	}
	if filter.AvailableOnly {
		conditions = append(conditions, "mi.is_available")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY c.id, mi.name"

	return r.queryMenuItems(ctx, query, args...)
}

func (r *catalogRepository) PopularMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM menu_items mi JOIN categories c ON c.id = mi.category_id
                          WHERE mi.is_popular AND mi.is_available ORDER BY mi.name`, menuItemColumns)
	return r.queryMenuItems(ctx, query)
}

func (r *catalogRepository) MenuItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM menu_items mi JOIN categories c ON c.id = mi.category_id WHERE mi.id=$1`, menuItemColumns)
	items, err := r.queryMenuItems(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return &items[0], nil
}

func (r *catalogRepository) queryMenuItems(ctx context.Context, query string, args ...any) ([]model.MenuItem, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		var category model.Category
		if err := rows.Scan(
			&item.ID, &item.Name, &item.NameTH, &item.Description, &item.Price, &item.ImageURL, &item.CategoryID,
			&item.IsPopular, &item.IsHot, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt,
			&category.ID, &category.Name, &category.NameTH, &category.Description, &category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		item.Category = &category
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// FindAvailableItem returns the authoritative price of an item currently
// marked available, or ErrNotFound. An item toggled unavailable between
// browse and checkout is treated as not found.
func (r *catalogRepository) FindAvailableItem(ctx context.Context, id int64) (*model.PricedItem, error) {
	return findAvailableItem(ctx, r.storage.pool, id)
}

func findAvailableItem(ctx context.Context, q querier, id int64) (*model.PricedItem, error) {
	const query = `SELECT id, price FROM menu_items WHERE id=$1 AND is_available`
	var item model.PricedItem
	if err := q.QueryRow(ctx, query, id).Scan(&item.ID, &item.UnitPrice); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}
