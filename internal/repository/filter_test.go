package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProductFilterEmptyMatchesEverything(t *testing.T) {
	where, args := ProductFilter{}.Where()
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestProductFilterSearchSpansFourColumns(t *testing.T) {
	where, args := ProductFilter{Q: "  usb "}.Where()

	assert.Equal(t, " AND (name ILIKE ? OR sku ILIKE ? OR category ILIKE ? OR brand ILIKE ?)", where)
	assert.Equal(t, []any{"%usb%", "%usb%", "%usb%", "%usb%"}, args)
}

func TestProductFilterRangeBounds(t *testing.T) {
	minPrice, maxPrice := 10.0, 99.5
	minStock, maxStock := 1, 50

	where, args := ProductFilter{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		MinStock: &minStock,
		MaxStock: &maxStock,
	}.Where()

	assert.Equal(t, " AND price >= ? AND price <= ? AND stock >= ? AND stock <= ?", where)
	assert.Equal(t, []any{10.0, 99.5, 1, 50}, args)
}

func TestProductFilterCategoryIsCaseInsensitiveExactMatch(t *testing.T) {
	where, args := ProductFilter{Category: "  Electronics "}.Where()

	assert.Equal(t, " AND LOWER(category) = ?", where)
	assert.Equal(t, []any{"electronics"}, args)
}

func TestProductFilterBlankValuesAddNoConstraint(t *testing.T) {
	where, args := ProductFilter{Q: "   ", Category: "\t"}.Where()
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestOrderFilterCustomerSpansNameAndEmail(t *testing.T) {
	where, args := OrderFilter{Customer: "alice"}.Where()

	assert.Equal(t, " AND (customer_name ILIKE ? OR customer_email ILIKE ?)", where)
	assert.Equal(t, []any{"%alice%", "%alice%"}, args)
}

func TestOrderFilterDateBoundsAreInclusive(t *testing.T) {
	after := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2025, time.May, 31, 23, 59, 59, 0, time.UTC)

	where, args := OrderFilter{CreatedAfter: &after, CreatedBefore: &before}.Where()

	assert.Equal(t, " AND created_at >= ? AND created_at <= ?", where)
	assert.Equal(t, []any{after, before}, args)
}

func TestOrderFilterCombination(t *testing.T) {
	minTotal := 100.0

	where, args := OrderFilter{Customer: "bob", MinTotal: &minTotal}.Where()

	assert.Equal(t, " AND (customer_name ILIKE ? OR customer_email ILIKE ?) AND total >= ?", where)
	assert.Equal(t, []any{"%bob%", "%bob%", 100.0}, args)
}
