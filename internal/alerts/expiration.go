package alerts

import (
	"fmt"
	"math"
	"time"

	"medstock/internal/models"
)

// Expiration alert priorities.
const (
	priorityExpired         = 1
	priorityExpiringSoon    = 3
	priorityExpiringWarning = 5
)

// EvaluateExpiration applies the expiration rule to a single product and
// returns nil when the product has no expiration date or it is outside the
// warning window. Days to expire are rounded up, so a product expiring later
// today counts as 1 day remaining. The caller gates on
// EnableExpirationAlerts and stamps ID and CreatedAt.
func EvaluateExpiration(product *models.Product, cfg models.AlertConfig, now time.Time) *models.Alert {
	if product.ExpirationDate == nil {
		return nil
	}

	days := daysToExpire(*product.ExpirationDate, now)

	switch {
	case days < 0:
		elapsed := -days
		d := days
		return &models.Alert{
			Type:         models.AlertTypeExpired,
			Product:      product,
			Message:      fmt.Sprintf("Product '%s' expired %d days ago", product.Name, elapsed),
			Severity:     models.SeverityError,
			DaysToExpire: &d,
			Priority:     priorityExpired,
		}
	case days <= cfg.CriticalExpirationDays:
		d := days
		return &models.Alert{
			Type:    models.AlertTypeExpiringSoon,
			Product: product,
			Message: fmt.Sprintf("Product '%s' expires in %d days (%s)",
				product.Name, days, product.ExpirationDate.Format("2006-01-02")),
			Severity:     models.SeverityError,
			DaysToExpire: &d,
			Priority:     priorityExpiringSoon,
		}
	case days <= cfg.ExpirationWarningDays:
		d := days
		return &models.Alert{
			Type:    models.AlertTypeExpiringSoon,
			Product: product,
			Message: fmt.Sprintf("Product '%s' expires in %d days (%s)",
				product.Name, days, product.ExpirationDate.Format("2006-01-02")),
			Severity:     models.SeverityWarning,
			DaysToExpire: &d,
			Priority:     priorityExpiringWarning,
		}
	default:
		return nil
	}
}

func daysToExpire(expiration, now time.Time) int {
	return int(math.Ceil(expiration.Sub(now).Hours() / 24))
}
