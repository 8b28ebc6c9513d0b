package handlers

import (
	"net/http"
	"strconv"
	"time"

	"medstock/internal/common"
	"medstock/internal/models"
	"medstock/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProductHandlers handles product-related HTTP requests
type ProductHandlers struct {
	productService services.ProductService
}

func NewProductHandlers(productService services.ProductService) *ProductHandlers {
	return &ProductHandlers{productService: productService}
}

// ProductRequest represents the product create/update payload
type ProductRequest struct {
	Code           string     `json:"code"`
	Name           string     `json:"name"`
	Category       *string    `json:"category"`
	UnitOfMeasure  string     `json:"unit_of_measure"`
	CurrentStock   float64    `json:"current_stock"`
	MinStock       float64    `json:"min_stock"`
	MaxStock       float64    `json:"max_stock"`
	PurchasePrice  float64    `json:"purchase_price"`
	SalePrice      float64    `json:"sale_price"`
	SupplierID     *uuid.UUID `json:"supplier_id"`
	Active         *bool      `json:"active"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

func (r *ProductRequest) toModel() *models.Product {
	product := &models.Product{
		Code:           r.Code,
		Name:           r.Name,
		Category:       r.Category,
		UnitOfMeasure:  r.UnitOfMeasure,
		CurrentStock:   r.CurrentStock,
		MinStock:       r.MinStock,
		MaxStock:       r.MaxStock,
		PurchasePrice:  r.PurchasePrice,
		SalePrice:      r.SalePrice,
		SupplierID:     r.SupplierID,
		Active:         true,
		ExpirationDate: r.ExpirationDate,
	}
	if r.Active != nil {
		product.Active = *r.Active
	}
	return product
}

// CreateProduct handles creating a new product
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Name == "" {
		return common.SendValidationError(c, "name", "name is required")
	}
	if req.Code == "" {
		return common.SendValidationError(c, "code", "code is required")
	}

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	product := req.toModel()
	if err := h.productService.Create(ctx, tenantID, product); err != nil {
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusCreated, product)
}

// GetProduct handles getting a single product by ID
func (h *ProductHandlers) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := common.ValidateUUID(c.Param("id"), "product ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	product, err := h.productService.GetByID(ctx, tenantID, productID)
	if err != nil {
		return common.SendNotFoundError(c, "product")
	}

	return c.JSON(http.StatusOK, product)
}

// UpdateProduct handles updating an existing product
func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := common.ValidateUUID(c.Param("id"), "product ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	product := req.toModel()
	product.ID = productID
	if err := h.productService.Update(ctx, tenantID, product); err != nil {
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles deleting a product
func (h *ProductHandlers) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := common.ValidateUUID(c.Param("id"), "product ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	if err := h.productService.Delete(ctx, tenantID, productID); err != nil {
		return common.SendServerError(c, "Failed to delete product")
	}

	return c.NoContent(http.StatusNoContent)
}

// ListProducts handles getting a paginated list of products
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, offset = common.ValidatePaginationParams(limit, offset)

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	products, err := h.productService.List(ctx, tenantID, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list products")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"limit":    limit,
		"offset":   offset,
	})
}
