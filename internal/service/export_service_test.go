package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AppariLavanya/inventory-management-system/internal/models"
)

func TestWriteProductSection(t *testing.T) {
	products := []models.Product{
		{ID: 1, SKU: "SKU-1", Name: "Widget", Stock: intPtr(3), Price: floatPtr(19.9)},
		{ID: 2, SKU: "SKU-2", Name: "Gadget"},
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	require.NoError(t, writeProductSection(cw, products))
	cw.Flush()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Products", lines[0])
	assert.Equal(t, "ID,SKU,Name,Category,Brand,Stock,Price,Reorder Level", lines[1])
	assert.Equal(t, "1,SKU-1,Widget,,,3,19.90,5", lines[2])
	assert.Equal(t, "2,SKU-2,Gadget,,,,,5", lines[3])
	assert.Equal(t, "", lines[4], "sections are separated by a blank row")
}

func TestWriteSummarySectionIncludesSegmentsAndTopSellers(t *testing.T) {
	summary := &AnalyticsSummary{
		TotalProducts: 2,
		TotalOrders:   1,
		TotalRevenue:  99.5,
		PriceSegments: []PriceSegment{{Range: "0 - 20000", Count: 2}},
		TopProducts:   []TopProduct{{ProductName: "Widget", QuantitySold: 4}},
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	require.NoError(t, writeSummarySection(cw, summary))
	cw.Flush()

	out := buf.String()
	assert.Contains(t, out, "Total Revenue,99.50")
	assert.Contains(t, out, "Price 0 - 20000,2")
	assert.Contains(t, out, "Top Seller Widget,4")
}
