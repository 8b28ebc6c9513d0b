package alerts

import (
	"medstock/internal/models"
)

// criticalPriorityCutoff is the fixed priority at or below which an alert
// counts as critical. Not configurable.
const criticalPriorityCutoff = 3

// ByType returns the alerts of the given type, preserving order.
func ByType(alerts []models.Alert, alertType models.AlertType) []models.Alert {
	filtered := make([]models.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.Type == alertType {
			filtered = append(filtered, alert)
		}
	}
	return filtered
}

// BySeverity returns the alerts of the given severity, preserving order.
func BySeverity(alerts []models.Alert, severity models.Severity) []models.Alert {
	filtered := make([]models.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.Severity == severity {
			filtered = append(filtered, alert)
		}
	}
	return filtered
}

// Critical returns the alerts with priority at or below the critical cutoff.
func Critical(alerts []models.Alert) []models.Alert {
	filtered := make([]models.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.Priority <= criticalPriorityCutoff {
			filtered = append(filtered, alert)
		}
	}
	return filtered
}
