package alerts

import (
	"testing"

	"medstock/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestConfigStore_Defaults(t *testing.T) {
	store := NewConfigStore()
	cfg := store.Get()

	assert.True(t, cfg.EnableLowStockAlerts)
	assert.True(t, cfg.EnableExpirationAlerts)
	assert.Equal(t, models.ThresholdTypeAbsolute, cfg.LowStockThresholdType)
	assert.Equal(t, 10.0, cfg.LowStockThresholdValue)
	assert.Equal(t, 30, cfg.ExpirationWarningDays)
	assert.Equal(t, 7, cfg.CriticalExpirationDays)
}

func TestConfigStore_MergeUpdateKeepsOmittedFields(t *testing.T) {
	store := NewConfigStore()

	value := 20.0
	err := store.Update(models.AlertConfigUpdate{LowStockThresholdValue: &value})
	assert.NoError(t, err)

	cfg := store.Get()
	assert.Equal(t, 20.0, cfg.LowStockThresholdValue)
	assert.True(t, cfg.EnableLowStockAlerts) // untouched by the partial update
	assert.Equal(t, 30, cfg.ExpirationWarningDays)
}

func TestConfigStore_UpdateMultipleFields(t *testing.T) {
	store := NewConfigStore()

	enabled := false
	thresholdType := models.ThresholdTypePercentage
	value := 25.0
	err := store.Update(models.AlertConfigUpdate{
		EnableExpirationAlerts: &enabled,
		LowStockThresholdType:  &thresholdType,
		LowStockThresholdValue: &value,
	})
	assert.NoError(t, err)

	cfg := store.Get()
	assert.False(t, cfg.EnableExpirationAlerts)
	assert.Equal(t, models.ThresholdTypePercentage, cfg.LowStockThresholdType)
	assert.Equal(t, 25.0, cfg.LowStockThresholdValue)
	assert.True(t, cfg.EnableLowStockAlerts)
}

func TestConfigStore_RejectsInvalidThresholdType(t *testing.T) {
	store := NewConfigStore()

	bad := models.ThresholdType("relative")
	err := store.Update(models.AlertConfigUpdate{LowStockThresholdType: &bad})
	assert.Error(t, err)

	// Store is untouched after a rejected update.
	assert.Equal(t, models.ThresholdTypeAbsolute, store.Get().LowStockThresholdType)
}

func TestConfigStore_RejectsNegativeValues(t *testing.T) {
	store := NewConfigStore()

	negValue := -5.0
	assert.Error(t, store.Update(models.AlertConfigUpdate{LowStockThresholdValue: &negValue}))

	negDays := -1
	assert.Error(t, store.Update(models.AlertConfigUpdate{ExpirationWarningDays: &negDays}))
	assert.Error(t, store.Update(models.AlertConfigUpdate{CriticalExpirationDays: &negDays}))
}

func TestConfigStore_RejectsCriticalWindowBeyondWarning(t *testing.T) {
	store := NewConfigStore()

	days := 45 // default warning window is 30
	err := store.Update(models.AlertConfigUpdate{CriticalExpirationDays: &days})
	assert.Error(t, err)
	assert.Equal(t, 7, store.Get().CriticalExpirationDays)
}

func TestConfigStore_SnapshotIsIsolated(t *testing.T) {
	store := NewConfigStore()

	cfg := store.Get()
	cfg.LowStockThresholdValue = 999

	assert.Equal(t, 10.0, store.Get().LowStockThresholdValue)
}

func TestNewConfigStoreWith_ValidatesSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LowStockThresholdType = "bogus"

	_, err := NewConfigStoreWith(cfg)
	assert.Error(t, err)

	store, err := NewConfigStoreWith(DefaultConfig())
	assert.NoError(t, err)
	assert.NotNil(t, store)
}
