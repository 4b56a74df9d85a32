package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AppariLavanya/inventory-management-system/internal/models"
	"github.com/AppariLavanya/inventory-management-system/internal/service"
)

// LowStockWorker periodically scans the catalog and logs products that need
// reordering. It is an alerting loop only; it never mutates stock.
type LowStockWorker struct {
	productService *service.ProductService
	interval       time.Duration
	threshold      int
}

// NewLowStockWorker constructs a LowStockWorker.
func NewLowStockWorker(productService *service.ProductService, interval time.Duration, threshold int) *LowStockWorker {
	return &LowStockWorker{
		productService: productService,
		interval:       interval,
		threshold:      threshold,
	}
}

// Start begins the scan loop and listens for context cancellation.
func (w *LowStockWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Int("threshold", w.threshold).Msg("Starting low stock worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run()
		case <-ctx.Done():
			log.Info().Msg("Low stock worker stopped")
			return
		}
	}
}

func (w *LowStockWorker) run() {
	products, err := w.productService.LowStock(w.threshold)
	if err != nil {
		log.Error().Err(err).Msg("Low stock scan failed")
		return
	}
	if len(products) == 0 {
		return
	}

	var critical, low, medium int
	for _, p := range products {
		switch p.Severity {
		case models.SeverityCritical:
			critical++
		case models.SeverityLow:
			low++
		case models.SeverityMedium:
			medium++
		}
	}

	log.Warn().
		Int("total", len(products)).
		Int("critical", critical).
		Int("low", low).
		Int("medium", medium).
		Msg("Products below stock threshold")

	for _, p := range products {
		if p.Severity != models.SeverityCritical {
			continue
		}
		stock := 0
		if p.Stock != nil {
			stock = *p.Stock
		}
		log.Warn().
			Str("sku", p.SKU).
			Str("name", p.Name).
			Int("stock", stock).
			Int("reorder_suggestion", p.ReorderSuggestion).
			Msg("Critical stock level")
	}
}
