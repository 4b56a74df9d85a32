package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AppariLavanya/inventory-management-system/internal/repository"
	"github.com/AppariLavanya/inventory-management-system/internal/service"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

// ProductHandler handles product-related HTTP endpoints.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// SearchProducts returns the product page matching the query parameters.
// Malformed numeric filters are rejected; an unknown sort field is ignored
// and leaves the page unsorted.
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	p := query(c)
	filter := repository.ProductFilter{
		Q:        c.Query("q"),
		MinPrice: p.floatPtr("minPrice"),
		MaxPrice: p.floatPtr("maxPrice"),
		MinStock: p.intPtr("minStock"),
		MaxStock: p.intPtr("maxStock"),
		Category: c.Query("category"),
	}
	page, size := p.page()
	if err := p.Err(); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}

	products, total, err := h.productService.Search(filter, c.Query("sort"), page, size)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to search products")
		return
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved successfully", gin.H{
		"products": products,
	}, page, size, total)
}

// GetProduct returns a single product by id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.productService.Get(id)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get product")
		return
	}

	utils.Success(c, 200, "Product retrieved successfully", product)
}

// CreateProduct creates a product.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrSKUExists):
			utils.Error(c, 409, "SKU_EXISTS", "SKU already exists")
		case isValidationErr(err):
			utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create product")
		}
		return
	}

	utils.Success(c, 201, "Product created successfully", product)
}

// UpdateProduct replaces a product's fields.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrProductNotFound):
			utils.Error(c, 404, "NOT_FOUND", "Product not found")
		case errors.Is(err, utils.ErrSKUExists):
			utils.Error(c, 409, "SKU_EXISTS", "SKU already exists")
		case isValidationErr(err):
			utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update product")
		}
		return
	}

	utils.Success(c, 200, "Product updated successfully", product)
}

// DeleteProduct removes a product by id.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(id); err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete product")
		return
	}

	utils.Success(c, 200, "Product deleted successfully", nil)
}

// DeleteProducts removes a batch of products. Missing ids are skipped
// silently.
func (h *ProductHandler) DeleteProducts(c *gin.Context) {
	var req struct {
		IDs []int `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.productService.DeleteMany(req.IDs); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete products")
		return
	}

	utils.Success(c, 200, "Products deleted successfully", nil)
}

// GetLowStock returns the annotated low-stock list.
func (h *ProductHandler) GetLowStock(c *gin.Context) {
	p := query(c)
	threshold := p.intDefault("threshold", 5)
	if err := p.Err(); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		return
	}

	products, err := h.productService.LowStock(threshold)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get low stock products")
		return
	}

	utils.Success(c, 200, "Low stock products retrieved successfully", gin.H{
		"threshold": threshold,
		"count":     len(products),
		"products":  products,
	})
}

// pathID parses the :id path parameter, writing the error response itself
// when it is not a number.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid id")
		return 0, false
	}
	return id, true
}

func isValidationErr(err error) bool {
	return errors.Is(err, utils.ErrValidation)
}
