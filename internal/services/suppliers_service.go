package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medstock/internal/models"
	"medstock/internal/repositories"

	"github.com/google/uuid"
)

type SupplierService interface {
	Create(ctx context.Context, tenantID uuid.UUID, supplier *models.Supplier) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Supplier, error)
	Update(ctx context.Context, tenantID uuid.UUID, supplier *models.Supplier) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Supplier, error)
}

type supplierService struct {
	supplierRepo repositories.SupplierRepository
}

func NewSupplierService(supplierRepo repositories.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) Create(ctx context.Context, tenantID uuid.UUID, supplier *models.Supplier) error {
	if strings.TrimSpace(supplier.Name) == "" {
		return errors.New("supplier name is required")
	}

	if _, err := s.supplierRepo.GetByName(ctx, tenantID, supplier.Name); err == nil {
		return fmt.Errorf("supplier %s already exists", supplier.Name)
	}

	supplier.TenantID = tenantID
	supplier.ID = uuid.New()
	return s.supplierRepo.Create(ctx, supplier)
}

func (s *supplierService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Supplier, error) {
	return s.supplierRepo.GetByID(ctx, tenantID, id)
}

func (s *supplierService) Update(ctx context.Context, tenantID uuid.UUID, supplier *models.Supplier) error {
	if strings.TrimSpace(supplier.Name) == "" {
		return errors.New("supplier name is required")
	}
	supplier.TenantID = tenantID
	if _, err := s.supplierRepo.GetByID(ctx, tenantID, supplier.ID); err != nil {
		return err
	}
	return s.supplierRepo.Update(ctx, supplier)
}

func (s *supplierService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.supplierRepo.Delete(ctx, tenantID, id)
}

func (s *supplierService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Supplier, error) {
	return s.supplierRepo.List(ctx, tenantID, limit, offset)
}
