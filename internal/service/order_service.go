package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/AppariLavanya/inventory-management-system/internal/models"
	"github.com/AppariLavanya/inventory-management-system/internal/repository"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

// OrderService provides order-related business logic.
type OrderService struct {
	orderRepo   *repository.OrderRepository
	productRepo *repository.ProductRepository
}

// NewOrderService constructs an OrderService.
func NewOrderService(orderRepo *repository.OrderRepository, productRepo *repository.ProductRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, productRepo: productRepo}
}

// OrderItemRequest is one inbound order line. Quantity is a pointer so a
// missing value can default (create) or drop the row (update).
type OrderItemRequest struct {
	ProductID int  `json:"productId"`
	Quantity  *int `json:"quantity"`
}

// OrderRequest is the inbound payload for order create/update.
type OrderRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	Status        *string            `json:"status"`
	Items         []OrderItemRequest `json:"items"`
}

// Create builds an order from the request. Item rows capture a snapshot of
// the product name and unit price at this moment; the total is derived
// from the items and never taken from the caller.
func (s *OrderService) Create(req *OrderRequest) (*models.Order, error) {
	status := models.OrderStatusPending
	if req.Status != nil {
		parsed, err := models.ParseOrderStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidOrderStatus, err)
		}
		status = parsed
	}

	o := models.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        status,
	}
	o.Items, o.Total = s.buildItems(req.Items, false)

	if err := s.orderRepo.Create(&o); err != nil {
		return nil, err
	}
	log.Info().Int("order_id", o.ID).Float64("total", o.Total).Msg("Order created")
	return &o, nil
}

// Get returns an order with its items.
func (s *OrderService) Get(id int) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// Update replaces the mutable fields and all items of an existing order.
// Items are rebuilt from scratch (delete-all-then-reinsert) and the total
// is recomputed. Rows with a missing or non-positive quantity are dropped.
func (s *OrderService) Update(id int, req *OrderRequest) (*models.Order, error) {
	existing, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	status := existing.Status
	if req.Status != nil {
		parsed, err := models.ParseOrderStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidOrderStatus, err)
		}
		status = parsed
	}

	o := models.Order{
		ID:            id,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        status,
	}
	o.Items, o.Total = s.buildItems(req.Items, true)

	if err := s.orderRepo.Update(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus changes only the order status. The status string is
// validated strictly.
func (s *OrderService) UpdateStatus(id int, status string) (*models.Order, error) {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidOrderStatus, err)
	}
	if err := s.orderRepo.UpdateStatus(id, parsed); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(id)
}

// Delete removes an order and its items.
func (s *OrderService) Delete(id int) error {
	return s.orderRepo.Delete(id)
}

// List runs a filtered, paginated order query. Unlike the product sort
// parser this path is strict: an invalid sort direction or unknown sort
// field fails the request.
func (s *OrderService) List(f repository.OrderFilter, sortBy, sortDir string, page, size int) ([]models.Order, int, error) {
	col, err := repository.OrderSortColumn(sortBy)
	if err != nil {
		return nil, 0, err
	}
	desc, err := repository.ParseSortDirection(sortDir)
	if err != nil {
		return nil, 0, err
	}
	return s.orderRepo.List(f, col, desc, page, size)
}

// buildItems converts request rows into item snapshots and computes the
// derived total. Rows with a non-positive product id are skipped. When
// dropMissingQty is set (update path) rows without a positive quantity are
// skipped too; otherwise (create path) a missing quantity defaults to 1.
// Unknown products still produce a row, named "Unknown" with unit price 0.
func (s *OrderService) buildItems(rows []OrderItemRequest, dropMissingQty bool) ([]models.OrderItem, float64) {
	items := []models.OrderItem{}
	total := 0.0

	for _, row := range rows {
		if row.ProductID <= 0 {
			continue
		}

		qty := 1
		if row.Quantity != nil {
			qty = *row.Quantity
		}
		if dropMissingQty && (row.Quantity == nil || *row.Quantity <= 0) {
			continue
		}

		name := "Unknown"
		unitPrice := 0.0
		if p, err := s.productRepo.GetByID(row.ProductID); err == nil {
			name = p.Name
			if p.Price != nil {
				unitPrice = *p.Price
			}
		} else if !errors.Is(err, utils.ErrProductNotFound) {
			log.Warn().Err(err).Int("product_id", row.ProductID).Msg("Product lookup failed; using snapshot defaults")
		}

		items = append(items, models.OrderItem{
			ProductID:   row.ProductID,
			ProductName: name,
			UnitPrice:   unitPrice,
			Quantity:    qty,
		})
		total += unitPrice * float64(qty)
	}
	return items, total
}
