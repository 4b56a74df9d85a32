package repository

import (
	"strings"

	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

// productSortColumns maps exposed sort field names onto their columns.
// Sorting is restricted to this whitelist.
var productSortColumns = map[string]string{
	"id":           "id",
	"sku":          "sku",
	"name":         "name",
	"category":     "category",
	"brand":        "brand",
	"price":        "price",
	"stock":        "stock",
	"reorderLevel": "reorder_level",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

var orderSortColumns = map[string]string{
	"id":            "id",
	"customerName":  "customer_name",
	"customerEmail": "customer_email",
	"total":         "total",
	"status":        "status",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

// ProductSort is the ordering directive for product searches. The zero
// value means unsorted.
type ProductSort struct {
	Column string
	Desc   bool
}

// ParseProductSort interprets the product `sort` query parameter. Three
// forms are accepted on one string: a leading '-' for descending, a
// "field,direction" pair, and a bare field name for ascending. Anything
// unparseable, including an unknown field, falls back to unsorted rather
// than failing the request.
func ParseProductSort(raw string) ProductSort {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ProductSort{}
	}

	field := raw
	desc := false
	switch {
	case strings.HasPrefix(raw, "-"):
		field = strings.TrimSpace(raw[1:])
		desc = true
	case strings.Contains(raw, ","):
		parts := strings.SplitN(raw, ",", 2)
		field = strings.TrimSpace(parts[0])
		desc = strings.EqualFold(strings.TrimSpace(parts[1]), "desc")
	}

	col, ok := productSortColumns[field]
	if !ok {
		return ProductSort{}
	}
	return ProductSort{Column: col, Desc: desc}
}

// OrderSortColumn resolves the order `sortBy` parameter, defaulting to
// createdAt. Unknown fields fail the request; order listing is the strict
// sort path.
func OrderSortColumn(sortBy string) (string, error) {
	sortBy = strings.TrimSpace(sortBy)
	if sortBy == "" {
		sortBy = "createdAt"
	}
	col, ok := orderSortColumns[sortBy]
	if !ok {
		return "", utils.ErrInvalidSortField
	}
	return col, nil
}

// ParseSortDirection resolves the order `sortDir` parameter, defaulting to
// descending. An invalid direction string fails fast.
func ParseSortDirection(sortDir string) (desc bool, err error) {
	switch strings.ToUpper(strings.TrimSpace(sortDir)) {
	case "":
		return true, nil
	case "DESC":
		return true, nil
	case "ASC":
		return false, nil
	}
	return false, utils.ErrInvalidSortDir
}

// NormalizePage clamps raw pagination values to safe bounds: page to >= 0
// and size to >= 1.
func NormalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 1
	}
	return page, size
}
