package handlers

import (
	"net/http"

	"medstock/internal/alerts"
	"medstock/internal/common"
	"medstock/internal/models"
	"medstock/internal/services"

	"github.com/labstack/echo/v4"
)

// AlertHandlers exposes the alert engine over HTTP.
type AlertHandlers struct {
	alertService  services.AlertService
	reportService services.ReportService
}

func NewAlertHandlers(alertService services.AlertService, reportService services.ReportService) *AlertHandlers {
	return &AlertHandlers{
		alertService:  alertService,
		reportService: reportService,
	}
}

// ListAlertsRequest represents query parameters for listing alerts
type ListAlertsRequest struct {
	Type     string `query:"type"`
	Severity string `query:"severity"`
	Critical bool   `query:"critical"`
	Refresh  bool   `query:"refresh"`
}

// ListAlerts returns the tenant's current alerts, optionally filtered by
// type, severity, or the critical cutoff.
func (h *AlertHandlers) ListAlerts(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListAlertsRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}

	if req.Type != "" && !validAlertType(req.Type) {
		return common.SendValidationError(c, "type", "unknown alert type")
	}
	if req.Severity != "" && !validSeverity(req.Severity) {
		return common.SendValidationError(c, "severity", "unknown severity")
	}

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	current, err := h.alertService.LatestAlerts(ctx, tenantID, req.Refresh)
	if err != nil {
		return common.SendServerError(c, "Failed to evaluate alerts")
	}

	filtered := current
	if req.Type != "" {
		filtered = alerts.ByType(filtered, models.AlertType(req.Type))
	}
	if req.Severity != "" {
		filtered = alerts.BySeverity(filtered, models.Severity(req.Severity))
	}
	if req.Critical {
		filtered = alerts.Critical(filtered)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"alerts": filtered,
		"count":  len(filtered),
	})
}

// GetAlertStats returns aggregate counts and the trend signal.
func (h *AlertHandlers) GetAlertStats(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	stats, err := h.alertService.Stats(ctx, tenantID)
	if err != nil {
		return common.SendServerError(c, "Failed to compute alert stats")
	}

	return c.JSON(http.StatusOK, stats)
}

// GetOrderRecommendations returns reorder suggestions derived from the
// tenant's current stock alerts.
func (h *AlertHandlers) GetOrderRecommendations(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	recommendations, err := h.alertService.OrderRecommendations(ctx, tenantID)
	if err != nil {
		return common.SendServerError(c, "Failed to generate recommendations")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recommendations": recommendations,
		"count":           len(recommendations),
	})
}

// ExportRecommendations writes the current recommendations to object
// storage and returns a download URL.
func (h *AlertHandlers) ExportRecommendations(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	url, err := h.reportService.ExportRecommendationsCSV(ctx, tenantID)
	if err != nil {
		return common.SendServerError(c, "Failed to export recommendations")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"url": url,
	})
}

// GetAlertConfig returns the active alert configuration.
func (h *AlertHandlers) GetAlertConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.alertService.Config())
}

// UpdateAlertConfig applies a partial configuration update. Fields omitted
// from the payload keep their current values.
func (h *AlertHandlers) UpdateAlertConfig(c echo.Context) error {
	var patch models.AlertConfigUpdate
	if err := c.Bind(&patch); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	updated, err := h.alertService.UpdateConfig(patch)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	return c.JSON(http.StatusOK, updated)
}

func validAlertType(value string) bool {
	for _, t := range models.AlertTypes {
		if string(t) == value {
			return true
		}
	}
	return false
}

func validSeverity(value string) bool {
	switch models.Severity(value) {
	case models.SeverityInfo, models.SeverityWarning, models.SeverityError:
		return true
	}
	return false
}
