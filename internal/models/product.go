package models

import (
	"strings"
	"time"
)

// DefaultReorderLevel is the stock floor assumed for products that have no
// configured reorder level.
const DefaultReorderLevel = 5

// StockSeverity grades how urgent a low-stock situation is.
type StockSeverity string

const (
	SeverityCritical StockSeverity = "CRITICAL"
	SeverityLow      StockSeverity = "LOW"
	SeverityMedium   StockSeverity = "MEDIUM"
)

// Product represents a product in the inventory catalog.
// Category, brand, stock, price and reorder level are nullable in the
// datastore; pointer fields keep "unknown" distinguishable from zero.
type Product struct {
	ID           int       `db:"id" json:"id"`
	SKU          string    `db:"sku" json:"sku"`
	Name         string    `db:"name" json:"name"`
	Category     *string   `db:"category" json:"category"`
	Brand        *string   `db:"brand" json:"brand"`
	Stock        *int      `db:"stock" json:"stock"`
	Price        *float64  `db:"price" json:"price"`
	ReorderLevel *int      `db:"reorder_level" json:"reorderLevel"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// EffectiveReorderLevel returns the configured reorder level, or
// DefaultReorderLevel when none is set. All low-stock logic goes through
// this accessor so the fallback cannot drift between call sites.
func (p *Product) EffectiveReorderLevel() int {
	if p.ReorderLevel == nil {
		return DefaultReorderLevel
	}
	return *p.ReorderLevel
}

// NormalizeSKU trims and uppercases the SKU. Called before every write.
func (p *Product) NormalizeSKU() {
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
}

// LowStockProduct is the read-only view returned by low-stock queries.
// The classification fields are computed per request and never persisted.
type LowStockProduct struct {
	Product
	Severity          StockSeverity `json:"severity"`
	ReorderFlag       bool          `json:"reorderFlag"`
	ReorderSuggestion int           `json:"reorderSuggestion"`
}
