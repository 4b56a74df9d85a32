package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AppariLavanya/inventory-management-system/internal/models"
	"github.com/AppariLavanya/inventory-management-system/internal/repository"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

// ProductService provides product-related business logic.
type ProductService struct {
	productRepo *repository.ProductRepository
}

// NewProductService constructs a ProductService.
func NewProductService(productRepo *repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductRequest is the inbound payload for product create/update.
type ProductRequest struct {
	SKU          string   `json:"sku"`
	Name         string   `json:"name"`
	Category     *string  `json:"category"`
	Brand        *string  `json:"brand"`
	Stock        *int     `json:"stock"`
	Price        *float64 `json:"price"`
	ReorderLevel *int     `json:"reorderLevel"`
}

func (req *ProductRequest) validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", utils.ErrValidation)
	}
	if req.Stock != nil && *req.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", utils.ErrValidation)
	}
	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", utils.ErrValidation)
	}
	return nil
}

func (req *ProductRequest) toModel() models.Product {
	p := models.Product{
		SKU:          req.SKU,
		Name:         req.Name,
		Category:     req.Category,
		Brand:        req.Brand,
		Stock:        req.Stock,
		Price:        req.Price,
		ReorderLevel: req.ReorderLevel,
	}
	if p.ReorderLevel == nil {
		rl := models.DefaultReorderLevel
		p.ReorderLevel = &rl
	}
	return p
}

// Create inserts a new product. A blank SKU gets a generated one.
func (s *ProductService) Create(req *ProductRequest) (*models.Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	p := req.toModel()
	if strings.TrimSpace(p.SKU) == "" {
		p.SKU = "SKU-" + strings.ToUpper(uuid.New().String()[:8])
	}

	if err := s.productRepo.Create(&p); err != nil {
		return nil, err
	}
	log.Info().Int("product_id", p.ID).Str("sku", p.SKU).Msg("Product created")
	return &p, nil
}

// Update replaces the mutable fields of an existing product.
func (s *ProductService) Update(id int, req *ProductRequest) (*models.Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	p := req.toModel()
	p.ID = existing.ID
	if strings.TrimSpace(p.SKU) == "" {
		p.SKU = existing.SKU
	}
	p.CreatedAt = existing.CreatedAt

	if err := s.productRepo.Update(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Get returns a product by id.
func (s *ProductService) Get(id int) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// Delete removes a product by id.
func (s *ProductService) Delete(id int) error {
	return s.productRepo.Delete(id)
}

// DeleteMany removes the products with the given ids.
func (s *ProductService) DeleteMany(ids []int) error {
	return s.productRepo.DeleteMany(ids)
}

// Search runs a filtered, paginated product query. The sort string is
// parsed leniently: anything unparseable degrades to unsorted instead of
// failing the request.
func (s *ProductService) Search(f repository.ProductFilter, sortRaw string, page, size int) ([]models.Product, int, error) {
	return s.productRepo.Search(f, repository.ParseProductSort(sortRaw), page, size)
}

// LowStock returns products whose stock is at or below the threshold,
// annotated with severity and reorder metadata.
func (s *ProductService) LowStock(threshold int) ([]models.LowStockProduct, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return classifyLowStock(products, threshold), nil
}
