package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/AppariLavanya/inventory-management-system/internal/models"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

const productColumns = "id, sku, name, category, brand, stock, price, reorder_level, created_at, updated_at"

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a product. The SKU is uppercased before the write; a
// duplicate SKU maps to ErrSKUExists.
func (r *ProductRepository) Create(p *models.Product) error {
	p.NormalizeSKU()
	const q = `
        INSERT INTO products (sku, name, category, brand, stock, price, reorder_level)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRowx(q, p.SKU, p.Name, p.Category, p.Brand, p.Stock, p.Price, p.ReorderLevel).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if isUniqueViolation(err) {
		return utils.ErrSKUExists
	}
	return err
}

// Update replaces the mutable fields of an existing product.
func (r *ProductRepository) Update(p *models.Product) error {
	p.NormalizeSKU()
	const q = `
        UPDATE products
        SET sku = $1, name = $2, category = $3, brand = $4, stock = $5, price = $6,
            reorder_level = $7, updated_at = NOW()
        WHERE id = $8
        RETURNING updated_at`

	err := r.db.QueryRowx(q, p.SKU, p.Name, p.Category, p.Brand, p.Stock, p.Price, p.ReorderLevel, p.ID).
		Scan(&p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrProductNotFound
	}
	if isUniqueViolation(err) {
		return utils.ErrSKUExists
	}
	return err
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	var p models.Product
	if err := r.db.Get(&p, `SELECT `+productColumns+` FROM products WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetAll returns the full product collection.
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.Select(&products, `SELECT `+productColumns+` FROM products ORDER BY id`); err != nil {
		return nil, err
	}
	return products, nil
}

// Delete removes a product by id.
func (r *ProductRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}

// DeleteMany removes all products whose id is in the given list. Missing
// ids are ignored.
func (r *ProductRepository) DeleteMany(ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	q, args, err := sqlx.In(`DELETE FROM products WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(r.db.Rebind(q), args...)
	return err
}

// Search executes a filtered, sorted, paginated product query without
// materializing the full collection, and returns the page plus the total
// match count.
func (r *ProductRepository) Search(f ProductFilter, sort ProductSort, page, size int) ([]models.Product, int, error) {
	page, size = NormalizePage(page, size)
	where, args := f.Where()

	var total int
	countQ := r.db.Rebind(`SELECT COUNT(*) FROM products WHERE 1=1` + where)
	if err := r.db.Get(&total, countQ, args...); err != nil {
		return nil, 0, err
	}

	q := `SELECT ` + productColumns + ` FROM products WHERE 1=1` + where
	if sort.Column != "" {
		q += ` ORDER BY ` + sort.Column
		if sort.Desc {
			q += ` DESC`
		} else {
			q += ` ASC`
		}
	}
	q += ` LIMIT ? OFFSET ?`
	args = append(args, size, page*size)

	products := []models.Product{}
	if err := r.db.Select(&products, r.db.Rebind(q), args...); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
