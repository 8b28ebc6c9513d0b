package alerts

import (
	"fmt"
	"math"

	"medstock/internal/models"
)

// Stock alert priorities. 1 is the most urgent.
const (
	priorityOutOfStock     = 1
	priorityBelowMinimum   = 2
	priorityApproachingMin = 4
)

// EvaluateStockLevel applies the low-stock rule to a single product and
// returns nil when stock is healthy. The caller is responsible for gating on
// EnableLowStockAlerts and for stamping ID and CreatedAt on the result.
func EvaluateStockLevel(product *models.Product, cfg models.AlertConfig) *models.Alert {
	stock := normalizeStock(product.CurrentStock)

	if stock <= 0 {
		level := stock
		return &models.Alert{
			Type:       models.AlertTypeOutOfStock,
			Product:    product,
			Message:    fmt.Sprintf("Product '%s' has no stock available", product.Name),
			Severity:   models.SeverityError,
			StockLevel: &level,
			Priority:   priorityOutOfStock,
		}
	}

	var threshold float64
	switch cfg.LowStockThresholdType {
	case models.ThresholdTypePercentage:
		threshold = product.MinStock * (1 + cfg.LowStockThresholdValue/100)
	default:
		threshold = product.MinStock + cfg.LowStockThresholdValue
	}

	if stock > threshold {
		return nil
	}

	severity := models.SeverityWarning
	priority := priorityApproachingMin
	if stock <= product.MinStock {
		severity = models.SeverityError
		priority = priorityBelowMinimum
	}

	level := stock
	return &models.Alert{
		Type:    models.AlertTypeLowStock,
		Product: product,
		Message: fmt.Sprintf("Product '%s' is low on stock: %g %s left (minimum %g)",
			product.Name, stock, product.UnitOfMeasure, product.MinStock),
		Severity:   severity,
		StockLevel: &level,
		Priority:   priority,
	}
}

// normalizeStock guards the rule math against NaN and infinite values coming
// from upstream data. Policy: any non-finite stock value is treated as 0.
func normalizeStock(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
