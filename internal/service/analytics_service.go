package service

import (
	"sort"

	"github.com/AppariLavanya/inventory-management-system/internal/models"
	"github.com/AppariLavanya/inventory-management-system/internal/repository"
)

// AnalyticsService computes point-in-time summaries over the full product
// and order collections. Every call is a fresh read-only scan; nothing is
// cached or maintained incrementally. Concurrent writes may land between
// the two collection reads, which is acceptable for a small inventory
// dataset but is the first thing to revisit if write rates grow.
type AnalyticsService struct {
	productRepo *repository.ProductRepository
	orderRepo   *repository.OrderRepository
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(productRepo *repository.ProductRepository, orderRepo *repository.OrderRepository) *AnalyticsService {
	return &AnalyticsService{productRepo: productRepo, orderRepo: orderRepo}
}

// AnalyticsSummary is the main analytics payload.
type AnalyticsSummary struct {
	TotalProducts  int64            `json:"totalProducts"`
	TotalOrders    int64            `json:"totalOrders"`
	TotalRevenue   float64          `json:"totalRevenue"`
	LowStockCount  int64            `json:"lowStockCount"`
	CategoryCounts map[string]int64 `json:"categoryCounts"`
	PriceSegments  []PriceSegment   `json:"priceSegments"`
	TopProducts    []TopProduct     `json:"topProducts"`
	MonthlyRevenue []MonthlyRevenue `json:"monthlyRevenue"`
}

// PriceSegment is one fixed price-range bucket.
type PriceSegment struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

// TopProduct is one entry of the best-seller list.
type TopProduct struct {
	ProductName  string `json:"productName"`
	QuantitySold int64  `json:"quantitySold"`
}

// MonthlyRevenue is the revenue total for one month-year label.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// DailySales is the revenue total for one day-month label.
type DailySales struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// LowStockSummary is the payload of the permissive low-stock summary
// endpoint.
type LowStockSummary struct {
	Threshold int              `json:"threshold"`
	Count     int              `json:"count"`
	Items     []models.Product `json:"items"`
}

// Summary computes the main analytics summary.
func (s *AnalyticsService) Summary() (*AnalyticsSummary, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.GetAllWithItems()
	if err != nil {
		return nil, err
	}
	return buildSummary(products, orders), nil
}

// DailySales computes the daily sales trend.
func (s *AnalyticsService) DailySales() ([]DailySales, error) {
	orders, err := s.orderRepo.GetAllWithItems()
	if err != nil {
		return nil, err
	}
	return dailySales(orders), nil
}

// LowStockSummary computes the permissive low-stock summary for the given
// threshold.
func (s *AnalyticsService) LowStockSummary(threshold int) (*LowStockSummary, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	items := filterLowStockSummary(products, threshold)
	return &LowStockSummary{Threshold: threshold, Count: len(items), Items: items}, nil
}

// buildSummary aggregates the full collections into the summary payload.
func buildSummary(products []models.Product, orders []models.Order) *AnalyticsSummary {
	summary := &AnalyticsSummary{
		TotalProducts:  int64(len(products)),
		TotalOrders:    int64(len(orders)),
		CategoryCounts: map[string]int64{},
		MonthlyRevenue: []MonthlyRevenue{},
		TopProducts:    []TopProduct{},
	}

	for _, o := range orders {
		summary.TotalRevenue += o.Total
	}

	for _, p := range products {
		if p.Stock != nil && *p.Stock <= p.EffectiveReorderLevel() {
			summary.LowStockCount++
		}

		category := "Unknown"
		if p.Category != nil {
			category = *p.Category
		}
		summary.CategoryCounts[category]++
	}

	summary.PriceSegments = priceSegments(products)
	summary.TopProducts = topProducts(orders)
	summary.MonthlyRevenue = monthlyRevenue(orders)
	return summary
}

// priceSegments buckets every product into exactly one of the fixed price
// ranges. The boundaries are not configurable; a missing price counts as 0
// and lands in the first bucket. All four buckets are always emitted, in
// order.
func priceSegments(products []models.Product) []PriceSegment {
	segments := []PriceSegment{
		{Range: "0 - 20000"},
		{Range: "20000 - 50000"},
		{Range: "50000 - 100000"},
		{Range: "100000+"},
	}

	for _, p := range products {
		price := 0.0
		if p.Price != nil {
			price = *p.Price
		}
		switch {
		case price <= 20000:
			segments[0].Count++
		case price <= 50000:
			segments[1].Count++
		case price <= 100000:
			segments[2].Count++
		default:
			segments[3].Count++
		}
	}
	return segments
}

// topProducts flattens all order items, groups quantities by product name
// and returns the five biggest sellers. Names tied on quantity keep their
// first-encounter order.
func topProducts(orders []models.Order) []TopProduct {
	qtyByName := map[string]int64{}
	names := []string{}
	for _, o := range orders {
		for _, item := range o.Items {
			if _, seen := qtyByName[item.ProductName]; !seen {
				names = append(names, item.ProductName)
			}
			qtyByName[item.ProductName] += int64(item.Quantity)
		}
	}

	sort.SliceStable(names, func(i, j int) bool {
		return qtyByName[names[i]] > qtyByName[names[j]]
	})
	if len(names) > 5 {
		names = names[:5]
	}

	top := make([]TopProduct, 0, len(names))
	for _, name := range names {
		top = append(top, TopProduct{ProductName: name, QuantitySold: qtyByName[name]})
	}
	return top
}

// monthlyRevenue groups order totals by month-year label in the server's
// local time zone, keeping labels in first-encounter order. Orders without
// a creation time are excluded entirely; this differs from the daily trend,
// which buckets them as "Unknown", and both behaviors are relied upon.
func monthlyRevenue(orders []models.Order) []MonthlyRevenue {
	totals := map[string]float64{}
	labels := []string{}
	for _, o := range orders {
		if o.CreatedAt == nil {
			continue
		}
		label := o.CreatedAt.Local().Format("Jan 2006")
		if _, seen := totals[label]; !seen {
			labels = append(labels, label)
		}
		totals[label] += o.Total
	}

	result := make([]MonthlyRevenue, 0, len(labels))
	for _, label := range labels {
		result = append(result, MonthlyRevenue{Month: label, Revenue: totals[label]})
	}
	return result
}

// dailySales groups order totals by day-month label in the server's local
// time zone, sorted ascending by the label string. The string sort is part
// of the wire contract even though it misorders days across a year
// boundary; consumers render the labels as-is.
func dailySales(orders []models.Order) []DailySales {
	totals := map[string]float64{}
	for _, o := range orders {
		label := "Unknown"
		if o.CreatedAt != nil {
			label = o.CreatedAt.Local().Format("02 Jan")
		}
		totals[label] += o.Total
	}

	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	result := make([]DailySales, 0, len(labels))
	for _, label := range labels {
		result = append(result, DailySales{Day: label, Revenue: totals[label]})
	}
	return result
}
