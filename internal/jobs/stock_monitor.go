package jobs

import (
	"context"
	"log"

	"medstock/internal/alerts"
	"medstock/internal/repositories"
	"medstock/internal/services"

	"github.com/google/uuid"
)

// StockMonitor periodically re-evaluates alerts for every tenant so the
// cached snapshots stay warm and critical conditions reach the logs even
// when nobody is watching the dashboard.
type StockMonitor struct {
	productRepo  repositories.ProductRepository
	alertService services.AlertService
}

func NewStockMonitor(productRepo repositories.ProductRepository, alertService services.AlertService) *StockMonitor {
	return &StockMonitor{
		productRepo:  productRepo,
		alertService: alertService,
	}
}

// RunOnce evaluates alerts for all known tenants. A failing tenant does
// not stop the sweep.
func (m *StockMonitor) RunOnce(ctx context.Context) error {
	tenantIDs, err := m.productRepo.TenantIDs(ctx)
	if err != nil {
		log.Printf("Failed to list tenants for stock monitoring: %v", err)
		return err
	}

	for _, tenantID := range tenantIDs {
		m.evaluateTenant(ctx, tenantID)
	}

	log.Printf("Completed stock monitoring sweep for %d tenants", len(tenantIDs))
	return nil
}

func (m *StockMonitor) evaluateTenant(ctx context.Context, tenantID uuid.UUID) {
	generated, err := m.alertService.Evaluate(ctx, tenantID)
	if err != nil {
		log.Printf("Failed to evaluate alerts for tenant %s: %v", tenantID.String(), err)
		return
	}

	critical := alerts.Critical(generated)
	if len(critical) == 0 {
		return
	}

	log.Printf("ALERT: Tenant %s has %d critical alerts:", tenantID.String(), len(critical))
	for _, alert := range critical {
		log.Printf("- [%s] %s", alert.Type, alert.Message)
	}
}
