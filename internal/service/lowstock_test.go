package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AppariLavanya/inventory-management-system/internal/models"
)

func product(name string, stock *int, reorderLevel *int) models.Product {
	return models.Product{Name: name, SKU: name, Stock: stock, ReorderLevel: reorderLevel}
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestClassifyLowStockCritical(t *testing.T) {
	products := []models.Product{product("p1", intPtr(2), intPtr(4))}

	result := classifyLowStock(products, 5)

	require.Len(t, result, 1)
	assert.Equal(t, models.SeverityCritical, result[0].Severity)
	assert.True(t, result[0].ReorderFlag)
	assert.Equal(t, 2, result[0].ReorderSuggestion)
}

func TestClassifyLowStockLowWithoutReorderFlag(t *testing.T) {
	products := []models.Product{product("p1", intPtr(4), intPtr(3))}

	result := classifyLowStock(products, 10)

	require.Len(t, result, 1)
	assert.Equal(t, models.SeverityLow, result[0].Severity)
	assert.False(t, result[0].ReorderFlag)
	assert.Equal(t, 0, result[0].ReorderSuggestion)
}

func TestClassifyLowStockMedium(t *testing.T) {
	products := []models.Product{product("p1", intPtr(8), intPtr(3))}

	result := classifyLowStock(products, 10)

	require.Len(t, result, 1)
	assert.Equal(t, models.SeverityMedium, result[0].Severity)
}

func TestClassifyLowStockExcludesAboveThreshold(t *testing.T) {
	products := []models.Product{
		product("in", intPtr(5), nil),
		product("out", intPtr(6), nil),
	}

	result := classifyLowStock(products, 5)

	require.Len(t, result, 1)
	assert.Equal(t, "in", result[0].Name)
}

func TestClassifyLowStockSkipsUnknownStock(t *testing.T) {
	products := []models.Product{product("p1", nil, intPtr(100))}

	assert.Empty(t, classifyLowStock(products, 1000))
}

func TestClassifyLowStockNegativeThresholdFallsBack(t *testing.T) {
	products := []models.Product{
		product("in", intPtr(5), nil),
		product("out", intPtr(6), nil),
	}

	result := classifyLowStock(products, -1)

	require.Len(t, result, 1)
	assert.Equal(t, "in", result[0].Name)
}

func TestFilterLowStockSummaryIsMorePermissive(t *testing.T) {
	// Stock 4 with reorder level 5 is outside the list at threshold 3 but
	// inside the summary, whose limit is max(threshold, reorder level).
	products := []models.Product{product("p1", intPtr(4), intPtr(5))}

	assert.Empty(t, classifyLowStock(products, 3))

	summary := filterLowStockSummary(products, 3)
	require.Len(t, summary, 1)
	assert.Equal(t, "p1", summary[0].Name)
}

func TestFilterLowStockSummarySkipsUnknownStock(t *testing.T) {
	products := []models.Product{product("p1", nil, intPtr(5))}

	assert.Empty(t, filterLowStockSummary(products, 100))
}

func TestFilterLowStockSummaryNegativeThreshold(t *testing.T) {
	// No fallback here: the effective reorder level alone bounds inclusion.
	products := []models.Product{
		product("in", intPtr(5), nil),
		product("out", intPtr(6), nil),
	}

	result := filterLowStockSummary(products, -1)

	require.Len(t, result, 1)
	assert.Equal(t, "in", result[0].Name)
}

func TestStockSeverityBoundaries(t *testing.T) {
	assert.Equal(t, models.SeverityCritical, stockSeverity(0, 10))
	assert.Equal(t, models.SeverityCritical, stockSeverity(2, 10))
	assert.Equal(t, models.SeverityLow, stockSeverity(3, 10))
	assert.Equal(t, models.SeverityLow, stockSeverity(5, 10))
	assert.Equal(t, models.SeverityMedium, stockSeverity(6, 10))

	// Tiny thresholds collapse the LOW band; anything above critical is
	// MEDIUM.
	assert.Equal(t, models.SeverityMedium, stockSeverity(3, 1))
}
