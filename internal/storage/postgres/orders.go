package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/napatr/coffeehouse/internal/domain/errors"
	"github.com/napatr/coffeehouse/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

// querier is satisfied by both Pool and pgx.Tx so item loading and catalog
// lookups can run either inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const orderColumns = `id, customer_id, customer_name, customer_phone, table_number, total_amount, status, notes, order_type, created_at, updated_at`

// Create persists an order, its line items and the initial history entry in
// one transaction. Prices are re-read from the catalog inside the
// transaction; a missing or unavailable item aborts the whole order.
func (r *orderRepository) Create(ctx context.Context, order model.NewOrder) (int64, error) {
	var orderID int64
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var customerID *int64
		if order.CustomerEmail != nil {
			id, err := findOrCreateCustomer(ctx, tx, *order.CustomerEmail, order.CustomerName, order.CustomerPhone)
			if err != nil {
				return err
			}
			customerID = &id
		}

		type pricedLine struct {
			item       model.NewOrderItem
			unitPrice  float64
			totalPrice float64
		}

		var totalAmount float64
		lines := make([]pricedLine, 0, len(order.Items))
		for _, item := range order.Items {
			priced, err := findAvailableItem(ctx, tx, item.MenuItemID)
			if err != nil {
				if errors.Is(err, domainErrors.ErrNotFound) {
					return domainErrors.ItemUnavailableError{MenuItemID: item.MenuItemID}
				}
				return err
			}
			lineTotal := priced.UnitPrice * float64(item.Quantity)
			totalAmount += lineTotal
			lines = append(lines, pricedLine{item: item, unitPrice: priced.UnitPrice, totalPrice: lineTotal})
		}

		const insertOrder = `INSERT INTO orders (customer_id, customer_name, customer_phone, table_number, total_amount, status, notes, order_type)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
		if err := tx.QueryRow(ctx, insertOrder,
			customerID, order.CustomerName, order.CustomerPhone, order.TableNumber,
			totalAmount, model.OrderStatusPending, order.Notes, order.OrderType,
		).Scan(&orderID); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price, total_price, special_instructions)
                            VALUES ($1, $2, $3, $4, $5, $6)`
		for _, line := range lines {
			if _, err := tx.Exec(ctx, insertItem,
				orderID, line.item.MenuItemID, line.item.Quantity,
				line.unitPrice, line.totalPrice, line.item.SpecialInstructions,
			); err != nil {
				return err
			}
		}

		const insertHistory = `INSERT INTO order_status_history (order_id, status, changed_by, notes)
                               VALUES ($1, $2, $3, $4)`
		note := "Order created"
		if _, err := tx.Exec(ctx, insertHistory, orderID, model.OrderStatusPending, "System", &note); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

func findOrCreateCustomer(ctx context.Context, q querier, email, name string, phone *string) (int64, error) {
	const selectCustomer = `SELECT id FROM customers WHERE email=$1`
	var id int64
	err := q.QueryRow(ctx, selectCustomer, email).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	const insertCustomer = `INSERT INTO customers (name, phone, email) VALUES ($1, $2, $3) RETURNING id`
	if err := q.QueryRow(ctx, insertCustomer, name, phone, email).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID returns the order with its line items or ErrOrderNotFound.
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id=$1`, orderColumns)
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.CustomerPhone, &o.TableNumber,
		&o.TotalAmount, &o.Status, &o.Notes, &o.OrderType, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}

	itemsByOrder, err := loadOrderItems(ctx, r.storage.pool, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = itemsByOrder[o.ID]
	return &o, nil
}

// List returns orders matching the filter, newest first, with nested items.
func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders`, orderColumns)
	var conditions []string
	var args []any
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.OrderType != nil {
		args = append(args, *filter.OrderType)
		conditions = append(conditions, fmt.Sprintf("order_type=$%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return r.queryOrders(ctx, query, args...)
}

// ListByStatus returns orders in the given status, oldest first.
func (r *orderRepository) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE status=$1 ORDER BY created_at ASC`, orderColumns)
	return r.queryOrders(ctx, query, status)
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.CustomerName, &o.CustomerPhone, &o.TableNumber,
			&o.TotalAmount, &o.Status, &o.Notes, &o.OrderType, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(result))
	for _, o := range result {
		ids = append(ids, o.ID)
	}
	itemsByOrder, err := loadOrderItems(ctx, r.storage.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Items = itemsByOrder[result[i].ID]
	}
	return result, nil
}

func loadOrderItems(ctx context.Context, q querier, orderIDs []int64) (map[int64][]model.OrderItem, error) {
	const query = `SELECT oi.id, oi.order_id, oi.menu_item_id, oi.quantity, oi.unit_price, oi.total_price, oi.special_instructions, oi.created_at,
                          mi.id, mi.name, mi.name_th, mi.description, mi.price, mi.image_url,
                          c.id, c.name, c.name_th
                   FROM order_items oi
                   JOIN menu_items mi ON mi.id = oi.menu_item_id
                   JOIN categories c ON c.id = mi.category_id
                   WHERE oi.order_id = ANY($1)
                   ORDER BY oi.id`
	rows, err := q.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int64][]model.OrderItem, len(orderIDs))
	for rows.Next() {
		var item model.OrderItem
		var menu model.OrderMenuItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity,
			&item.UnitPrice, &item.TotalPrice, &item.SpecialInstructions, &item.CreatedAt,
			&menu.ID, &menu.Name, &menu.NameTH, &menu.Description, &menu.Price, &menu.ImageURL,
			&menu.Category.ID, &menu.Category.Name, &menu.Category.NameTH,
		); err != nil {
			return nil, err
		}
		item.MenuItem = &menu
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus applies one status transition together with its audit entry.
// The current status row is locked for the duration of the transaction so
// concurrent updates to the same order serialize.
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, changedBy string, notes *string) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectStatus = `SELECT status FROM orders WHERE id=$1 FOR UPDATE`
		var current model.OrderStatus
		if err := tx.QueryRow(ctx, selectStatus, id).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrOrderNotFound
			}
			return err
		}

		if !current.CanTransitionTo(status) {
			return domainErrors.TransitionNotAllowedError{From: string(current), To: string(status)}
		}

		const updateStatus = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
		if _, err := tx.Exec(ctx, updateStatus, status, id); err != nil {
			return err
		}

		const insertHistory = `INSERT INTO order_status_history (order_id, status, changed_by, notes)
                               VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, insertHistory, id, status, changedBy, notes); err != nil {
			return err
		}
		return nil
	})
}

// StatusHistory returns the audit trail for an order in arrival order.
func (r *orderRepository) StatusHistory(ctx context.Context, orderID int64) ([]model.StatusChange, error) {
	const query = `SELECT id, order_id, status, changed_by, notes, created_at
                   FROM order_status_history WHERE order_id=$1 ORDER BY created_at ASC, id ASC`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.StatusChange
	for rows.Next() {
		var change model.StatusChange
		if err := rows.Scan(&change.ID, &change.OrderID, &change.Status, &change.ChangedBy, &change.Notes, &change.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, change)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
