package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AppariLavanya/inventory-management-system/internal/models"
)

func orderAt(total float64, createdAt *time.Time, items ...models.OrderItem) models.Order {
	return models.Order{Total: total, CreatedAt: createdAt, Items: items}
}

func item(name string, qty int) models.OrderItem {
	return models.OrderItem{ProductName: name, Quantity: qty}
}

func localTime(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 12, 0, 0, 0, time.Local)
	return &t
}

func TestBuildSummaryTotals(t *testing.T) {
	products := []models.Product{
		product("p1", intPtr(3), intPtr(5)),
		product("p2", intPtr(50), nil),
	}
	orders := []models.Order{
		orderAt(100, localTime(2025, time.March, 1)),
		orderAt(250, localTime(2025, time.March, 2)),
	}

	summary := buildSummary(products, orders)

	assert.Equal(t, int64(2), summary.TotalProducts)
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.Equal(t, 350.0, summary.TotalRevenue)
	assert.Equal(t, int64(1), summary.LowStockCount)
}

func TestBuildSummaryLowStockCountUsesReorderLevel(t *testing.T) {
	products := []models.Product{
		product("at-level", intPtr(5), nil),      // default level 5, counted
		product("above-level", intPtr(6), nil),   // not counted
		product("custom", intPtr(9), intPtr(10)), // custom level, counted
		product("unknown", nil, intPtr(100)),     // unknown stock, never counted
	}

	summary := buildSummary(products, nil)

	assert.Equal(t, int64(2), summary.LowStockCount)
}

func TestBuildSummaryCategoryCounts(t *testing.T) {
	products := []models.Product{
		{Name: "p1", Category: strPtr("Electronics")},
		{Name: "p2", Category: strPtr("Electronics")},
		{Name: "p3"},
	}

	summary := buildSummary(products, nil)

	assert.Equal(t, map[string]int64{
		"Electronics": 2,
		"Unknown":     1,
	}, summary.CategoryCounts)
}

func TestPriceSegmentsBoundaries(t *testing.T) {
	products := []models.Product{
		{Name: "free"},                             // nil price counts as 0
		{Name: "low", Price: floatPtr(20000)},      // inclusive upper bound
		{Name: "mid", Price: floatPtr(20000.01)},   // first of next bucket
		{Name: "mid2", Price: floatPtr(50000)},     // inclusive upper bound
		{Name: "high", Price: floatPtr(100000)},    // inclusive upper bound
		{Name: "premium", Price: floatPtr(100001)}, // open-ended bucket
	}

	segments := priceSegments(products)

	require.Len(t, segments, 4)
	assert.Equal(t, PriceSegment{Range: "0 - 20000", Count: 2}, segments[0])
	assert.Equal(t, PriceSegment{Range: "20000 - 50000", Count: 2}, segments[1])
	assert.Equal(t, PriceSegment{Range: "50000 - 100000", Count: 1}, segments[2])
	assert.Equal(t, PriceSegment{Range: "100000+", Count: 1}, segments[3])
}

func TestPriceSegmentsAlwaysEmitted(t *testing.T) {
	segments := priceSegments(nil)

	require.Len(t, segments, 4)
	for _, seg := range segments {
		assert.Equal(t, int64(0), seg.Count)
	}
}

func TestTopProductsGroupsAcrossOrders(t *testing.T) {
	orders := []models.Order{
		orderAt(0, nil, item("widget", 3), item("gadget", 1)),
		orderAt(0, nil, item("widget", 2)),
	}

	top := topProducts(orders)

	require.Len(t, top, 2)
	assert.Equal(t, TopProduct{ProductName: "widget", QuantitySold: 5}, top[0])
	assert.Equal(t, TopProduct{ProductName: "gadget", QuantitySold: 1}, top[1])
}

func TestTopProductsLimitsToFive(t *testing.T) {
	orders := []models.Order{orderAt(0, nil,
		item("a", 1), item("b", 2), item("c", 3),
		item("d", 4), item("e", 5), item("f", 6),
	)}

	top := topProducts(orders)

	require.Len(t, top, 5)
	assert.Equal(t, "f", top[0].ProductName)
	assert.Equal(t, "b", top[4].ProductName)
}

func TestTopProductsTiesKeepEncounterOrder(t *testing.T) {
	orders := []models.Order{orderAt(0, nil, item("first", 2), item("second", 2))}

	top := topProducts(orders)

	require.Len(t, top, 2)
	assert.Equal(t, "first", top[0].ProductName)
	assert.Equal(t, "second", top[1].ProductName)
}

func TestMonthlyRevenueExcludesUndatedOrders(t *testing.T) {
	orders := []models.Order{
		orderAt(100, localTime(2025, time.March, 5)),
		orderAt(50, localTime(2025, time.March, 20)),
		orderAt(75, localTime(2025, time.April, 1)),
		orderAt(999, nil), // undated, dropped entirely
	}

	monthly := monthlyRevenue(orders)

	require.Len(t, monthly, 2)
	assert.Equal(t, MonthlyRevenue{Month: "Mar 2025", Revenue: 150}, monthly[0])
	assert.Equal(t, MonthlyRevenue{Month: "Apr 2025", Revenue: 75}, monthly[1])
}

func TestDailySalesBucketsUndatedAsUnknown(t *testing.T) {
	orders := []models.Order{
		orderAt(10, localTime(2025, time.January, 2)),
		orderAt(20, localTime(2025, time.January, 2)),
		orderAt(5, nil),
	}

	daily := dailySales(orders)

	require.Len(t, daily, 2)
	assert.Equal(t, DailySales{Day: "02 Jan", Revenue: 30}, daily[0])
	assert.Equal(t, DailySales{Day: "Unknown", Revenue: 5}, daily[1])
}

func TestDailySalesSortsByLabelString(t *testing.T) {
	// Labels sort lexically, not chronologically: "01 Feb" precedes
	// "02 Jan" even though January comes first.
	orders := []models.Order{
		orderAt(1, localTime(2025, time.January, 2)),
		orderAt(2, localTime(2025, time.February, 1)),
	}

	daily := dailySales(orders)

	require.Len(t, daily, 2)
	assert.Equal(t, "01 Feb", daily[0].Day)
	assert.Equal(t, "02 Jan", daily[1].Day)
}
