package models

import (
	"time"
)

// AlertType classifies what condition an alert reports.
type AlertType string

const (
	AlertTypeLowStock     AlertType = "low_stock"
	AlertTypeOutOfStock   AlertType = "out_of_stock"
	AlertTypeExpiringSoon AlertType = "expiring_soon"
	AlertTypeExpired      AlertType = "expired"
)

// AlertTypes lists every alert type in a fixed order; stats reports a count
// for each of them even when the count is zero.
var AlertTypes = []AlertType{
	AlertTypeLowStock,
	AlertTypeOutOfStock,
	AlertTypeExpiringSoon,
	AlertTypeExpired,
}

// Severity is the qualitative urgency bucket attached to an alert.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ThresholdType selects how the low-stock threshold is derived from MinStock.
type ThresholdType string

const (
	ThresholdTypePercentage ThresholdType = "percentage"
	ThresholdTypeAbsolute   ThresholdType = "absolute"
)

// Trend is the coarse directional signal computed from an alert list.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendWorsening Trend = "worsening"
)

// RecommendationPriority ranks reorder urgency.
type RecommendationPriority string

const (
	RecommendationPriorityHigh   RecommendationPriority = "high"
	RecommendationPriorityMedium RecommendationPriority = "medium"
	RecommendationPriorityLow    RecommendationPriority = "low"
)

// AlertConfig holds the tunable thresholds of the alert engine.
type AlertConfig struct {
	EnableLowStockAlerts   bool          `json:"enable_low_stock_alerts" toml:"enable_low_stock_alerts"`
	EnableExpirationAlerts bool          `json:"enable_expiration_alerts" toml:"enable_expiration_alerts"`
	LowStockThresholdType  ThresholdType `json:"low_stock_threshold_type" toml:"low_stock_threshold_type"`
	LowStockThresholdValue float64       `json:"low_stock_threshold_value" toml:"low_stock_threshold_value"`
	ExpirationWarningDays  int           `json:"expiration_warning_days" toml:"expiration_warning_days"`
	CriticalExpirationDays int           `json:"critical_expiration_days" toml:"critical_expiration_days"`
}

// AlertConfigUpdate is a partial AlertConfig; nil fields are left unchanged
// by a merge-update.
type AlertConfigUpdate struct {
	EnableLowStockAlerts   *bool          `json:"enable_low_stock_alerts,omitempty"`
	EnableExpirationAlerts *bool          `json:"enable_expiration_alerts,omitempty"`
	LowStockThresholdType  *ThresholdType `json:"low_stock_threshold_type,omitempty"`
	LowStockThresholdValue *float64       `json:"low_stock_threshold_value,omitempty"`
	ExpirationWarningDays  *int           `json:"expiration_warning_days,omitempty"`
	CriticalExpirationDays *int           `json:"critical_expiration_days,omitempty"`
}

// Alert is a generated notice that a product's stock or expiration state
// requires attention. Alerts are value objects: created fresh on each
// evaluation, never mutated, never persisted.
type Alert struct {
	ID           string     `json:"id"`
	Type         AlertType  `json:"type"`
	Product      *Product   `json:"product"`
	Message      string     `json:"message"`
	Severity     Severity   `json:"severity"`
	DaysToExpire *int       `json:"days_to_expire,omitempty"`
	StockLevel   *float64   `json:"stock_level,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	Priority     int        `json:"priority"`
}

// OrderRecommendation is a suggested purchase order derived from stock alerts.
type OrderRecommendation struct {
	ProductID           string                 `json:"product_id"`
	ProductName         string                 `json:"product_name"`
	CurrentStock        float64                `json:"current_stock"`
	RecommendedQuantity float64                `json:"recommended_quantity"`
	Reason              string                 `json:"reason"`
	Priority            RecommendationPriority `json:"priority"`
}

// AlertStats aggregates an alert list into dashboard counters.
type AlertStats struct {
	Total    int               `json:"total"`
	Critical int               `json:"critical"`
	Warning  int               `json:"warning"`
	ByType   map[AlertType]int `json:"by_type"`
	Trend    Trend             `json:"trend"`
}
