package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

func TestParseProductSortForms(t *testing.T) {
	tests := []struct {
		raw  string
		want ProductSort
	}{
		{"", ProductSort{}},
		{"price", ProductSort{Column: "price"}},
		{"-price", ProductSort{Column: "price", Desc: true}},
		{"price,desc", ProductSort{Column: "price", Desc: true}},
		{"price,DESC", ProductSort{Column: "price", Desc: true}},
		{"price,asc", ProductSort{Column: "price"}},
		{"price,bogus", ProductSort{Column: "price"}},
		{"reorderLevel", ProductSort{Column: "reorder_level"}},
		{"createdAt,desc", ProductSort{Column: "created_at", Desc: true}},
		{" name ", ProductSort{Column: "name"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseProductSort(tt.raw), "sort %q", tt.raw)
	}
}

func TestParseProductSortUnknownFieldFallsBack(t *testing.T) {
	assert.Equal(t, ProductSort{}, ParseProductSort("passwordHash"))
	assert.Equal(t, ProductSort{}, ParseProductSort("-passwordHash"))
	assert.Equal(t, ProductSort{}, ParseProductSort("price; DROP TABLE products"))
}

func TestOrderSortColumnDefaultsToCreatedAt(t *testing.T) {
	col, err := OrderSortColumn("")
	assert.NoError(t, err)
	assert.Equal(t, "created_at", col)
}

func TestOrderSortColumnRejectsUnknownFields(t *testing.T) {
	_, err := OrderSortColumn("shoeSize")
	assert.ErrorIs(t, err, utils.ErrInvalidSortField)
}

func TestOrderSortColumnWhitelist(t *testing.T) {
	col, err := OrderSortColumn("customerName")
	assert.NoError(t, err)
	assert.Equal(t, "customer_name", col)
}

func TestParseSortDirection(t *testing.T) {
	desc, err := ParseSortDirection("")
	assert.NoError(t, err)
	assert.True(t, desc, "blank defaults to descending")

	desc, err = ParseSortDirection("asc")
	assert.NoError(t, err)
	assert.False(t, desc)

	desc, err = ParseSortDirection("DESC")
	assert.NoError(t, err)
	assert.True(t, desc)

	_, err = ParseSortDirection("sideways")
	assert.ErrorIs(t, err, utils.ErrInvalidSortDir)
}

func TestNormalizePage(t *testing.T) {
	page, size := NormalizePage(-3, 0)
	assert.Equal(t, 0, page)
	assert.Equal(t, 1, size)

	page, size = NormalizePage(2, 25)
	assert.Equal(t, 2, page)
	assert.Equal(t, 25, size)
}
