package alerts

import (
	"fmt"
	"sync"

	"medstock/internal/models"
)

// DefaultConfig returns the engine defaults applied at service start.
func DefaultConfig() models.AlertConfig {
	return models.AlertConfig{
		EnableLowStockAlerts:   true,
		EnableExpirationAlerts: true,
		LowStockThresholdType:  models.ThresholdTypeAbsolute,
		LowStockThresholdValue: 10,
		ExpirationWarningDays:  30,
		CriticalExpirationDays: 7,
	}
}

// ConfigStore holds the current alert configuration. Reads return a value
// copy, so callers can never mutate internal state through the result, and a
// snapshot taken at the start of an evaluation stays stable for its duration.
type ConfigStore struct {
	mu  sync.RWMutex
	cfg models.AlertConfig
}

// NewConfigStore creates a store seeded with DefaultConfig.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{cfg: DefaultConfig()}
}

// NewConfigStoreWith creates a store seeded with the given configuration,
// typically loaded from the app config file.
func NewConfigStoreWith(cfg models.AlertConfig) (*ConfigStore, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &ConfigStore{cfg: cfg}, nil
}

// Get returns a snapshot of the current configuration.
func (s *ConfigStore) Get() models.AlertConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update merges the supplied fields into the current configuration. Nil
// fields keep their prior value. Invalid values are rejected at the
// boundary and leave the store untouched.
func (s *ConfigStore) Update(patch models.AlertConfigUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.cfg
	if patch.EnableLowStockAlerts != nil {
		merged.EnableLowStockAlerts = *patch.EnableLowStockAlerts
	}
	if patch.EnableExpirationAlerts != nil {
		merged.EnableExpirationAlerts = *patch.EnableExpirationAlerts
	}
	if patch.LowStockThresholdType != nil {
		merged.LowStockThresholdType = *patch.LowStockThresholdType
	}
	if patch.LowStockThresholdValue != nil {
		merged.LowStockThresholdValue = *patch.LowStockThresholdValue
	}
	if patch.ExpirationWarningDays != nil {
		merged.ExpirationWarningDays = *patch.ExpirationWarningDays
	}
	if patch.CriticalExpirationDays != nil {
		merged.CriticalExpirationDays = *patch.CriticalExpirationDays
	}

	if err := validateConfig(merged); err != nil {
		return err
	}

	s.cfg = merged
	return nil
}

func validateConfig(cfg models.AlertConfig) error {
	switch cfg.LowStockThresholdType {
	case models.ThresholdTypeAbsolute, models.ThresholdTypePercentage:
	default:
		return fmt.Errorf("invalid low stock threshold type %q", cfg.LowStockThresholdType)
	}
	if cfg.LowStockThresholdValue < 0 {
		return fmt.Errorf("low stock threshold value cannot be negative")
	}
	if cfg.ExpirationWarningDays < 0 {
		return fmt.Errorf("expiration warning days cannot be negative")
	}
	if cfg.CriticalExpirationDays < 0 {
		return fmt.Errorf("critical expiration days cannot be negative")
	}
	if cfg.CriticalExpirationDays > cfg.ExpirationWarningDays {
		return fmt.Errorf("critical expiration days (%d) cannot exceed warning days (%d)",
			cfg.CriticalExpirationDays, cfg.ExpirationWarningDays)
	}
	return nil
}
