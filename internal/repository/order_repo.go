package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/AppariLavanya/inventory-management-system/internal/models"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

const orderColumns = "id, customer_name, customer_email, total, status, created_at, updated_at"
const orderItemColumns = "id, order_id, product_id, product_name, unit_price, quantity"

// OrderRepository handles data access for orders and their items. Items are
// owned exclusively by their order: replacement is always delete-all-then-
// reinsert through the owning order, and deleting an order cascades.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts an order together with its items in one transaction.
func (r *OrderRepository) Create(o *models.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `
        INSERT INTO orders (customer_name, customer_email, total, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRowx(q, o.CustomerName, o.CustomerEmail, o.Total, o.Status).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}

	if err := insertItems(tx, o); err != nil {
		return err
	}
	return tx.Commit()
}

// Update replaces the mutable order fields and all items in one transaction.
func (r *OrderRepository) Update(o *models.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `
        UPDATE orders
        SET customer_name = $1, customer_email = $2, total = $3, status = $4, updated_at = NOW()
        WHERE id = $5
        RETURNING created_at, updated_at`
	err = tx.QueryRowx(q, o.CustomerName, o.CustomerEmail, o.Total, o.Status, o.ID).
		Scan(&o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM order_items WHERE order_id = $1`, o.ID); err != nil {
		return err
	}
	if err := insertItems(tx, o); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateStatus changes only the status of an order.
func (r *OrderRepository) UpdateStatus(id int, status models.OrderStatus) error {
	res, err := r.db.Exec(`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return utils.ErrOrderNotFound
	}
	return nil
}

// GetByID returns a single order with its items.
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	var o models.Order
	if err := r.db.Get(&o, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrOrderNotFound
		}
		return nil, err
	}
	orders := []models.Order{o}
	if err := r.loadItems(orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// Delete removes an order; its items go with it via the FK cascade.
func (r *OrderRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return utils.ErrOrderNotFound
	}
	return nil
}

// List executes a filtered, sorted, paginated order query and returns the
// page (items attached) plus the total match count.
func (r *OrderRepository) List(f OrderFilter, sortColumn string, desc bool, page, size int) ([]models.Order, int, error) {
	page, size = NormalizePage(page, size)
	where, args := f.Where()

	var total int
	countQ := r.db.Rebind(`SELECT COUNT(*) FROM orders WHERE 1=1` + where)
	if err := r.db.Get(&total, countQ, args...); err != nil {
		return nil, 0, err
	}

	q := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1` + where + ` ORDER BY ` + sortColumn
	if desc {
		q += ` DESC`
	} else {
		q += ` ASC`
	}
	q += ` LIMIT ? OFFSET ?`
	args = append(args, size, page*size)

	orders := []models.Order{}
	if err := r.db.Select(&orders, r.db.Rebind(q), args...); err != nil {
		return nil, 0, err
	}
	if err := r.loadItems(orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetAllWithItems returns the full order collection with items attached.
// Used by the analytics and export scans.
func (r *OrderRepository) GetAllWithItems() ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.db.Select(&orders, `SELECT `+orderColumns+` FROM orders ORDER BY id`); err != nil {
		return nil, err
	}
	if err := r.loadItems(orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// loadItems fetches the items for the given orders in one query and
// attaches them in item-id order.
func (r *OrderRepository) loadItems(orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int, len(orders))
	byID := make(map[int]*models.Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		orders[i].Items = []models.OrderItem{}
		byID[orders[i].ID] = &orders[i]
	}

	q, args, err := sqlx.In(`SELECT `+orderItemColumns+` FROM order_items WHERE order_id IN (?) ORDER BY id`, ids)
	if err != nil {
		return err
	}
	items := []models.OrderItem{}
	if err := r.db.Select(&items, r.db.Rebind(q), args...); err != nil {
		return err
	}
	for _, item := range items {
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return nil
}

// insertItems writes an order's items inside the given transaction and
// fills in the generated ids.
func insertItems(tx *sqlx.Tx, o *models.Order) error {
	const q = `
        INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`
	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		if err := tx.QueryRowx(q, o.ID, item.ProductID, item.ProductName, item.UnitPrice, item.Quantity).
			Scan(&item.ID); err != nil {
			return err
		}
	}
	return nil
}
