package config

import (
	"fmt"

	"medstock/internal/models"

	"github.com/BurntSushi/toml"
)

// AppConfig represents the complete service configuration
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Minio    MinioConfig    `toml:"minio"`
	Jobs     JobsConfig     `toml:"jobs"`
	Alerts   AlertDefaults  `toml:"alerts"`
}

// ServerConfig contains HTTP listener settings
type ServerConfig struct {
	Port int `toml:"port"`
}

// DatabaseConfig contains Postgres connection settings
type DatabaseConfig struct {
	URL string `toml:"url"`
}

// RedisConfig contains cache connection settings
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MinioConfig contains object storage settings for report exports
type MinioConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	UseSSL    bool   `toml:"use_ssl"`
	Bucket    string `toml:"bucket"`
}

// JobsConfig contains background job settings
type JobsConfig struct {
	StockMonitorIntervalMinutes int `toml:"stock_monitor_interval_minutes"`
}

// AlertDefaults seeds the alert engine configuration at startup
type AlertDefaults struct {
	EnableLowStockAlerts   *bool    `toml:"enable_low_stock_alerts"`
	EnableExpirationAlerts *bool    `toml:"enable_expiration_alerts"`
	LowStockThresholdType  string   `toml:"low_stock_threshold_type"`
	LowStockThresholdValue *float64 `toml:"low_stock_threshold_value"`
	ExpirationWarningDays  *int     `toml:"expiration_warning_days"`
	CriticalExpirationDays *int     `toml:"critical_expiration_days"`
}

// Load loads configuration from a TOML file
func Load(filename string) (*AppConfig, error) {
	config := &AppConfig{}
	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return config, nil
}

// ApplyTo overlays the file-provided alert defaults onto base. Unset fields
// keep the base value.
func (d AlertDefaults) ApplyTo(base models.AlertConfig) models.AlertConfig {
	if d.EnableLowStockAlerts != nil {
		base.EnableLowStockAlerts = *d.EnableLowStockAlerts
	}
	if d.EnableExpirationAlerts != nil {
		base.EnableExpirationAlerts = *d.EnableExpirationAlerts
	}
	if d.LowStockThresholdType != "" {
		base.LowStockThresholdType = models.ThresholdType(d.LowStockThresholdType)
	}
	if d.LowStockThresholdValue != nil {
		base.LowStockThresholdValue = *d.LowStockThresholdValue
	}
	if d.ExpirationWarningDays != nil {
		base.ExpirationWarningDays = *d.ExpirationWarningDays
	}
	if d.CriticalExpirationDays != nil {
		base.CriticalExpirationDays = *d.CriticalExpirationDays
	}
	return base
}
