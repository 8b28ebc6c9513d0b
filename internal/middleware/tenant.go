package middleware

import (
	"net/http"

	"medstock/internal/common"

	"github.com/labstack/echo/v4"
)

// TenantHeader carries the tenant scope for every API request.
const TenantHeader = "X-Tenant-ID"

// TenantMiddleware resolves the tenant from the request header and stores
// it in the request context for the handlers and services downstream.
func TenantMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(TenantHeader)
			if header == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "Missing "+TenantHeader+" header")
			}

			tenantID, err := common.ValidateUUID(header, "tenant ID")
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid "+TenantHeader+" header")
			}

			ctx := common.WithTenantID(c.Request().Context(), tenantID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
