package service

import (
	"github.com/AppariLavanya/inventory-management-system/internal/models"
)

// classifyLowStock implements the low-stock list: a product is included
// when its stock is at or below the caller's threshold. Products with
// unknown stock are never reported as low, regardless of threshold. A
// negative threshold falls back to the default reorder level.
func classifyLowStock(products []models.Product, threshold int) []models.LowStockProduct {
	if threshold < 0 {
		threshold = models.DefaultReorderLevel
	}

	result := []models.LowStockProduct{}
	for _, p := range products {
		if p.Stock == nil {
			continue
		}
		stock := *p.Stock
		if stock > threshold {
			continue
		}

		rl := p.EffectiveReorderLevel()
		result = append(result, models.LowStockProduct{
			Product:           p,
			Severity:          stockSeverity(stock, threshold),
			ReorderFlag:       stock <= rl,
			ReorderSuggestion: max(rl-stock, 0),
		})
	}
	return result
}

// stockSeverity grades a stock level against the caller's threshold.
func stockSeverity(stock, threshold int) models.StockSeverity {
	switch {
	case stock <= 2:
		return models.SeverityCritical
	case stock <= max(1, threshold/2):
		return models.SeverityLow
	default:
		return models.SeverityMedium
	}
}

// filterLowStockSummary implements the summary variant: inclusion uses
// max(threshold, effective reorder level) as the limit, which makes it
// deliberately more permissive than the list variant for the same
// threshold. Callers depend on both behaviors, so they stay separate
// operations. Items carry no severity annotations in this variant.
func filterLowStockSummary(products []models.Product, threshold int) []models.Product {
	result := []models.Product{}
	for _, p := range products {
		if p.Stock == nil {
			continue
		}
		limit := max(threshold, p.EffectiveReorderLevel())
		if *p.Stock <= limit {
			result = append(result, p)
		}
	}
	return result
}
