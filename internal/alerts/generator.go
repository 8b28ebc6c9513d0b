package alerts

import (
	"sort"
	"time"

	"medstock/internal/models"

	"github.com/google/uuid"
)

// Evaluator composes the stock and expiration rules over a product
// collection. Each Evaluator owns its ConfigStore, so independent instances
// can coexist with separate configurations.
type Evaluator struct {
	store *ConfigStore
	clock func() time.Time
}

func NewEvaluator(store *ConfigStore) *Evaluator {
	return &Evaluator{store: store, clock: time.Now}
}

// NewEvaluatorWithClock injects a clock, used by tests and replayable jobs.
func NewEvaluatorWithClock(store *ConfigStore, clock func() time.Time) *Evaluator {
	return &Evaluator{store: store, clock: clock}
}

// Config returns a snapshot of the evaluator's current configuration.
func (e *Evaluator) Config() models.AlertConfig {
	return e.store.Get()
}

// UpdateConfig merge-updates the evaluator's configuration.
func (e *Evaluator) UpdateConfig(patch models.AlertConfigUpdate) error {
	return e.store.Update(patch)
}

// GenerateAlerts evaluates every product against the configured rules and
// returns the emitted alerts sorted ascending by priority. Ties keep the
// per-product iteration order (stable sort). When override is non-nil it
// replaces the stored configuration for this call only. The config snapshot
// is taken once, so a concurrent Update cannot change behavior mid-run.
func (e *Evaluator) GenerateAlerts(products []*models.Product, override *models.AlertConfig) []models.Alert {
	cfg := e.store.Get()
	if override != nil {
		cfg = *override
	}
	now := e.clock()

	alerts := make([]models.Alert, 0, len(products))
	for _, product := range products {
		if product == nil {
			continue
		}
		if cfg.EnableLowStockAlerts {
			if alert := EvaluateStockLevel(product, cfg); alert != nil {
				alerts = append(alerts, stamp(*alert, now))
			}
		}
		if cfg.EnableExpirationAlerts {
			if alert := EvaluateExpiration(product, cfg, now); alert != nil {
				alerts = append(alerts, stamp(*alert, now))
			}
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority < alerts[j].Priority
	})
	return alerts
}

func stamp(alert models.Alert, now time.Time) models.Alert {
	alert.ID = uuid.NewString()
	alert.CreatedAt = now
	return alert
}
