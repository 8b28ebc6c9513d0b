package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"medstock/internal/caching"
	"medstock/internal/models"
	"medstock/internal/repositories"

	"github.com/google/uuid"
)

type ProductService interface {
	Create(ctx context.Context, tenantID uuid.UUID, product *models.Product) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error)
	GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*models.Product, error)
	Update(ctx context.Context, tenantID uuid.UUID, product *models.Product) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Product, error)
	ListActive(ctx context.Context, tenantID uuid.UUID) ([]*models.Product, error)
}

type productService struct {
	productRepo  repositories.ProductRepository
	supplierRepo repositories.SupplierRepository
	cacheService caching.CacheService
}

func NewProductService(productRepo repositories.ProductRepository, supplierRepo repositories.SupplierRepository, cacheService caching.CacheService) ProductService {
	return &productService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		cacheService: cacheService,
	}
}

func (s *productService) Create(ctx context.Context, tenantID uuid.UUID, product *models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return errors.New("product name is required")
	}
	if strings.TrimSpace(product.Code) == "" {
		return errors.New("product code is required")
	}
	if product.CurrentStock < 0 {
		return errors.New("current stock cannot be negative")
	}
	if product.MinStock < 0 || product.MaxStock < 0 {
		return errors.New("stock thresholds cannot be negative")
	}
	if product.MaxStock > 0 && product.MaxStock < product.MinStock {
		return errors.New("max stock cannot be below min stock")
	}

	if _, err := s.productRepo.GetByCode(ctx, tenantID, product.Code); err == nil {
		return fmt.Errorf("product code %s already exists", product.Code)
	}

	if product.SupplierID != nil {
		if _, err := s.supplierRepo.GetByID(ctx, tenantID, *product.SupplierID); err != nil {
			return fmt.Errorf("supplier not found: %w", err)
		}
	}

	product.TenantID = tenantID
	product.ID = uuid.New()
	if err := s.productRepo.Create(ctx, product); err != nil {
		return err
	}

	// A new product changes what the alert evaluation sees for this tenant.
	if cacheErr := s.cacheService.DeleteAlertSnapshot(ctx, tenantID); cacheErr != nil {
		log.Printf("failed to invalidate alert snapshot for tenant %s: %v", tenantID, cacheErr)
	}
	return nil
}

func (s *productService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error) {
	if cached, err := s.cacheService.GetProduct(ctx, tenantID, id); cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("cache error for product %s: %v", id, err)
	}

	product, err := s.productRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cacheService.SetProduct(ctx, tenantID, product, 15*time.Minute); cacheErr != nil {
		log.Printf("failed to cache product %s: %v", id, cacheErr)
	}
	return product, nil
}

func (s *productService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*models.Product, error) {
	return s.productRepo.GetByCode(ctx, tenantID, code)
}

func (s *productService) Update(ctx context.Context, tenantID uuid.UUID, product *models.Product) error {
	product.TenantID = tenantID
	if _, err := s.productRepo.GetByID(ctx, tenantID, product.ID); err != nil {
		return err
	}
	if product.CurrentStock < 0 {
		return errors.New("current stock cannot be negative")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return err
	}

	if cacheErr := s.cacheService.DeleteProduct(ctx, tenantID, product.ID); cacheErr != nil {
		log.Printf("failed to invalidate cache for product %s: %v", product.ID, cacheErr)
	}
	if cacheErr := s.cacheService.DeleteAlertSnapshot(ctx, tenantID); cacheErr != nil {
		log.Printf("failed to invalidate alert snapshot for tenant %s: %v", tenantID, cacheErr)
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	// A removed product invalidates both its cache entry and the tenant's
	// alert snapshot, so wipe the tenant's keys in one pass.
	if cacheErr := s.cacheService.InvalidateTenantCache(ctx, tenantID); cacheErr != nil {
		log.Printf("failed to invalidate cache for tenant %s: %v", tenantID, cacheErr)
	}
	return nil
}

func (s *productService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Product, error) {
	return s.productRepo.List(ctx, tenantID, limit, offset)
}

func (s *productService) ListActive(ctx context.Context, tenantID uuid.UUID) ([]*models.Product, error) {
	return s.productRepo.ListActive(ctx, tenantID)
}
