package alerts

import (
	"medstock/internal/models"
)

// Trend cutoffs on the critical-to-total ratio. Kept as-is for
// compatibility with the dashboard's historical behavior.
const (
	worseningRatio = 0.5
	improvingRatio = 0.2
)

// GetAlertStats aggregates an alert list into dashboard counters. The ByType
// map always contains all four alert types. An empty list reports an
// improving trend.
func GetAlertStats(alerts []models.Alert) models.AlertStats {
	stats := models.AlertStats{
		Total:  len(alerts),
		ByType: make(map[models.AlertType]int, len(models.AlertTypes)),
	}
	for _, t := range models.AlertTypes {
		stats.ByType[t] = 0
	}

	for _, alert := range alerts {
		stats.ByType[alert.Type]++
		switch alert.Severity {
		case models.SeverityError:
			stats.Critical++
		case models.SeverityWarning:
			stats.Warning++
		}
	}

	stats.Trend = trendFor(stats.Critical, stats.Total)
	return stats
}

func trendFor(critical, total int) models.Trend {
	if total == 0 {
		return models.TrendImproving
	}
	ratio := float64(critical) / float64(total)
	switch {
	case ratio > worseningRatio:
		return models.TrendWorsening
	case ratio < improvingRatio:
		return models.TrendImproving
	default:
		return models.TrendStable
	}
}
