package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"medstock/internal/alerts"
	"medstock/internal/caching"
	"medstock/internal/models"
	"medstock/internal/repositories"

	"github.com/google/uuid"
)

// snapshotTTL bounds how stale a cached alert evaluation may get before
// the next read goes back to the database.
const snapshotTTL = 5 * time.Minute

type AlertService interface {
	Evaluate(ctx context.Context, tenantID uuid.UUID) ([]models.Alert, error)
	LatestAlerts(ctx context.Context, tenantID uuid.UUID, refresh bool) ([]models.Alert, error)
	OrderRecommendations(ctx context.Context, tenantID uuid.UUID) ([]models.OrderRecommendation, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.AlertStats, error)
	Config() models.AlertConfig
	UpdateConfig(patch models.AlertConfigUpdate) (models.AlertConfig, error)
}

type alertService struct {
	productRepo  repositories.ProductRepository
	evaluator    *alerts.Evaluator
	cacheService caching.CacheService
}

func NewAlertService(productRepo repositories.ProductRepository, evaluator *alerts.Evaluator, cacheService caching.CacheService) AlertService {
	return &alertService{
		productRepo:  productRepo,
		evaluator:    evaluator,
		cacheService: cacheService,
	}
}

// Evaluate runs a fresh pass over the tenant's active products and
// replaces the cached snapshot with the result.
func (s *alertService) Evaluate(ctx context.Context, tenantID uuid.UUID) ([]models.Alert, error) {
	products, err := s.productRepo.ListActive(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products for tenant %s: %w", tenantID, err)
	}

	generated := s.evaluator.GenerateAlerts(products, nil)

	if cacheErr := s.cacheService.SetAlertSnapshot(ctx, tenantID, generated, snapshotTTL); cacheErr != nil {
		log.Printf("failed to cache alert snapshot for tenant %s: %v", tenantID, cacheErr)
	}
	return generated, nil
}

func (s *alertService) LatestAlerts(ctx context.Context, tenantID uuid.UUID, refresh bool) ([]models.Alert, error) {
	if !refresh {
		cached, err := s.cacheService.GetAlertSnapshot(ctx, tenantID)
		if err != nil {
			log.Printf("alert snapshot cache error for tenant %s: %v", tenantID, err)
		}
		if cached != nil {
			return cached, nil
		}
	}
	return s.Evaluate(ctx, tenantID)
}

func (s *alertService) OrderRecommendations(ctx context.Context, tenantID uuid.UUID) ([]models.OrderRecommendation, error) {
	current, err := s.LatestAlerts(ctx, tenantID, false)
	if err != nil {
		return nil, err
	}
	return alerts.GenerateOrderRecommendations(current), nil
}

func (s *alertService) Stats(ctx context.Context, tenantID uuid.UUID) (*models.AlertStats, error) {
	current, err := s.LatestAlerts(ctx, tenantID, false)
	if err != nil {
		return nil, err
	}
	stats := alerts.GetAlertStats(current)
	return &stats, nil
}

func (s *alertService) Config() models.AlertConfig {
	return s.evaluator.Config()
}

func (s *alertService) UpdateConfig(patch models.AlertConfigUpdate) (models.AlertConfig, error) {
	if err := s.evaluator.UpdateConfig(patch); err != nil {
		return models.AlertConfig{}, err
	}
	return s.evaluator.Config(), nil
}
