package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/AppariLavanya/inventory-management-system/internal/models"
	"github.com/AppariLavanya/inventory-management-system/internal/repository"
)

// ExportService renders the inventory, order and analytics data as a
// single CSV report with one section per dataset.
type ExportService struct {
	productRepo *repository.ProductRepository
	orderRepo   *repository.OrderRepository
	analytics   *AnalyticsService
}

func NewExportService(productRepo *repository.ProductRepository, orderRepo *repository.OrderRepository, analytics *AnalyticsService) *ExportService {
	return &ExportService{productRepo: productRepo, orderRepo: orderRepo, analytics: analytics}
}

// WriteCSV streams the full report to w.
func (s *ExportService) WriteCSV(w io.Writer) error {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return err
	}
	orders, err := s.orderRepo.GetAllWithItems()
	if err != nil {
		return err
	}
	summary := buildSummary(products, orders)
	lowStock := classifyLowStock(products, models.DefaultReorderLevel)

	cw := csv.NewWriter(w)

	if err := writeProductSection(cw, products); err != nil {
		return err
	}
	if err := writeOrderSection(cw, orders); err != nil {
		return err
	}
	if err := writeLowStockSection(cw, lowStock); err != nil {
		return err
	}
	if err := writeSummarySection(cw, summary); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func writeProductSection(cw *csv.Writer, products []models.Product) error {
	rows := [][]string{
		{"Products"},
		{"ID", "SKU", "Name", "Category", "Brand", "Stock", "Price", "Reorder Level"},
	}
	for _, p := range products {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			p.SKU,
			p.Name,
			strVal(p.Category),
			strVal(p.Brand),
			intVal(p.Stock),
			floatVal(p.Price),
			fmt.Sprintf("%d", p.EffectiveReorderLevel()),
		})
	}
	rows = append(rows, nil)
	return writeRows(cw, rows)
}

func writeOrderSection(cw *csv.Writer, orders []models.Order) error {
	rows := [][]string{
		{"Orders"},
		{"ID", "Customer", "Email", "Status", "Total", "Items", "Created At"},
	}
	for _, o := range orders {
		created := ""
		if o.CreatedAt != nil {
			created = o.CreatedAt.Local().Format(time.RFC3339)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", o.ID),
			o.CustomerName,
			o.CustomerEmail,
			string(o.Status),
			fmt.Sprintf("%.2f", o.Total),
			fmt.Sprintf("%d", len(o.Items)),
			created,
		})
	}
	rows = append(rows, nil)
	return writeRows(cw, rows)
}

func writeLowStockSection(cw *csv.Writer, lowStock []models.LowStockProduct) error {
	rows := [][]string{
		{"Low Stock"},
		{"SKU", "Name", "Stock", "Reorder Level", "Severity", "Reorder Suggestion"},
	}
	for _, p := range lowStock {
		rows = append(rows, []string{
			p.SKU,
			p.Name,
			intVal(p.Stock),
			fmt.Sprintf("%d", p.EffectiveReorderLevel()),
			string(p.Severity),
			fmt.Sprintf("%d", p.ReorderSuggestion),
		})
	}
	rows = append(rows, nil)
	return writeRows(cw, rows)
}

func writeSummarySection(cw *csv.Writer, summary *AnalyticsSummary) error {
	rows := [][]string{
		{"Summary"},
		{"Total Products", fmt.Sprintf("%d", summary.TotalProducts)},
		{"Total Orders", fmt.Sprintf("%d", summary.TotalOrders)},
		{"Total Revenue", fmt.Sprintf("%.2f", summary.TotalRevenue)},
		{"Low Stock Count", fmt.Sprintf("%d", summary.LowStockCount)},
	}
	for _, seg := range summary.PriceSegments {
		rows = append(rows, []string{"Price " + seg.Range, fmt.Sprintf("%d", seg.Count)})
	}
	for _, top := range summary.TopProducts {
		rows = append(rows, []string{"Top Seller " + top.ProductName, fmt.Sprintf("%d", top.QuantitySold)})
	}
	return writeRows(cw, rows)
}

func writeRows(cw *csv.Writer, rows [][]string) error {
	for _, row := range rows {
		if row == nil {
			row = []string{""}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intVal(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func floatVal(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}
