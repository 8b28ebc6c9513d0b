package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"medstock/internal/common"
	"medstock/internal/models"
	"medstock/internal/services"

	"github.com/labstack/echo/v4"
)

// SupplierHandlers handles supplier-related HTTP requests
type SupplierHandlers struct {
	supplierService services.SupplierService
}

func NewSupplierHandlers(supplierService services.SupplierService) *SupplierHandlers {
	return &SupplierHandlers{supplierService: supplierService}
}

// SupplierRequest represents the supplier create/update payload
type SupplierRequest struct {
	Name        string  `json:"name"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Active      *bool   `json:"active"`
}

func (r *SupplierRequest) toModel() *models.Supplier {
	supplier := &models.Supplier{
		Name:        r.Name,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Active:      true,
	}
	if r.Active != nil {
		supplier.Active = *r.Active
	}
	return supplier
}

// CreateSupplier handles creating a new supplier
func (h *SupplierHandlers) CreateSupplier(c echo.Context) error {
	ctx := c.Request().Context()

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Name == "" {
		return common.SendValidationError(c, "name", "name is required")
	}
	if email := common.SafeString(req.Email); email != "" && !strings.Contains(email, "@") {
		return common.SendValidationError(c, "email", "invalid email address")
	}

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	supplier := req.toModel()
	if err := h.supplierService.Create(ctx, tenantID, supplier); err != nil {
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusCreated, supplier)
}

// GetSupplier handles getting a single supplier by ID
func (h *SupplierHandlers) GetSupplier(c echo.Context) error {
	ctx := c.Request().Context()

	supplierID, err := common.ValidateUUID(c.Param("id"), "supplier ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	supplier, err := h.supplierService.GetByID(ctx, tenantID, supplierID)
	if err != nil {
		return common.SendNotFoundError(c, "supplier")
	}

	return c.JSON(http.StatusOK, supplier)
}

// UpdateSupplier handles updating an existing supplier
func (h *SupplierHandlers) UpdateSupplier(c echo.Context) error {
	ctx := c.Request().Context()

	supplierID, err := common.ValidateUUID(c.Param("id"), "supplier ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Name == "" {
		return common.SendValidationError(c, "name", "name is required")
	}
	if email := common.SafeString(req.Email); email != "" && !strings.Contains(email, "@") {
		return common.SendValidationError(c, "email", "invalid email address")
	}

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	supplier := req.toModel()
	supplier.ID = supplierID
	if err := h.supplierService.Update(ctx, tenantID, supplier); err != nil {
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier handles deleting a supplier
func (h *SupplierHandlers) DeleteSupplier(c echo.Context) error {
	ctx := c.Request().Context()

	supplierID, err := common.ValidateUUID(c.Param("id"), "supplier ID")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	if err := h.supplierService.Delete(ctx, tenantID, supplierID); err != nil {
		return common.SendServerError(c, "Failed to delete supplier")
	}

	return c.NoContent(http.StatusNoContent)
}

// ListSuppliers handles getting a paginated list of suppliers
func (h *SupplierHandlers) ListSuppliers(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, offset = common.ValidatePaginationParams(limit, offset)

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	suppliers, err := h.supplierService.List(ctx, tenantID, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list suppliers")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"suppliers": suppliers,
		"limit":     limit,
		"offset":    offset,
	})
}
