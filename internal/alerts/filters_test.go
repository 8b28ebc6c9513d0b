package alerts

import (
	"testing"

	"medstock/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleAlerts() []models.Alert {
	return []models.Alert{
		{ID: "a", Type: models.AlertTypeOutOfStock, Severity: models.SeverityError, Priority: 1},
		{ID: "b", Type: models.AlertTypeLowStock, Severity: models.SeverityError, Priority: 2},
		{ID: "c", Type: models.AlertTypeExpiringSoon, Severity: models.SeverityError, Priority: 3},
		{ID: "d", Type: models.AlertTypeLowStock, Severity: models.SeverityWarning, Priority: 4},
		{ID: "e", Type: models.AlertTypeExpiringSoon, Severity: models.SeverityWarning, Priority: 5},
	}
}

func TestByType(t *testing.T) {
	filtered := ByType(sampleAlerts(), models.AlertTypeLowStock)
	assert.Len(t, filtered, 2)
	assert.Equal(t, "b", filtered[0].ID)
	assert.Equal(t, "d", filtered[1].ID)

	assert.Empty(t, ByType(sampleAlerts(), models.AlertTypeExpired))
}

func TestBySeverity(t *testing.T) {
	errors := BySeverity(sampleAlerts(), models.SeverityError)
	assert.Len(t, errors, 3)

	warnings := BySeverity(sampleAlerts(), models.SeverityWarning)
	assert.Len(t, warnings, 2)

	assert.Empty(t, BySeverity(sampleAlerts(), models.SeverityInfo))
}

func TestCritical(t *testing.T) {
	critical := Critical(sampleAlerts())
	assert.Len(t, critical, 3)
	for _, alert := range critical {
		assert.LessOrEqual(t, alert.Priority, 3)
	}
}

func TestFilters_EmptyInput(t *testing.T) {
	assert.Empty(t, ByType(nil, models.AlertTypeLowStock))
	assert.Empty(t, BySeverity(nil, models.SeverityError))
	assert.Empty(t, Critical(nil))
}
