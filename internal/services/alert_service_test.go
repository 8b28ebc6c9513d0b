package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"medstock/internal/alerts"
	"medstock/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*models.Product, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Product, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) ListActive(ctx context.Context, tenantID uuid.UUID) ([]*models.Product, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockProductRepository) TenantIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetProduct(ctx context.Context, tenantID, productID uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCacheService) SetProduct(ctx context.Context, tenantID uuid.UUID, product *models.Product, ttl time.Duration) error {
	args := m.Called(ctx, tenantID, product, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteProduct(ctx context.Context, tenantID, productID uuid.UUID) error {
	args := m.Called(ctx, tenantID, productID)
	return args.Error(0)
}

func (m *MockCacheService) GetAlertSnapshot(ctx context.Context, tenantID uuid.UUID) ([]models.Alert, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Alert), args.Error(1)
}

func (m *MockCacheService) SetAlertSnapshot(ctx context.Context, tenantID uuid.UUID, alerts []models.Alert, ttl time.Duration) error {
	args := m.Called(ctx, tenantID, alerts, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteAlertSnapshot(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateTenantCache(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

type AlertServiceTestSuite struct {
	suite.Suite
	mockProductRepo  *MockProductRepository
	mockCacheService *MockCacheService
	service          AlertService
	tenantID         uuid.UUID
	ctx              context.Context
}

func (suite *AlertServiceTestSuite) SetupTest() {
	suite.mockProductRepo = &MockProductRepository{}
	suite.mockCacheService = &MockCacheService{}
	suite.service = NewAlertService(suite.mockProductRepo, alerts.NewEvaluator(alerts.NewConfigStore()), suite.mockCacheService)
	suite.tenantID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *AlertServiceTestSuite) TearDownTest() {
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockCacheService.AssertExpectations(suite.T())
}

func TestAlertServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AlertServiceTestSuite))
}

func (suite *AlertServiceTestSuite) TestEvaluate_GeneratesAndCachesAlerts() {
	products := []*models.Product{
		{
			ID:            uuid.New(),
			TenantID:      suite.tenantID,
			Name:          "Surgical Gloves",
			UnitOfMeasure: "boxes",
			CurrentStock:  0,
			MinStock:      10,
			MaxStock:      100,
			Active:        true,
		},
	}

	suite.mockProductRepo.On("ListActive", suite.ctx, suite.tenantID).Return(products, nil)
	suite.mockCacheService.On("SetAlertSnapshot", suite.ctx, suite.tenantID, mock.Anything, snapshotTTL).Return(nil)

	generated, err := suite.service.Evaluate(suite.ctx, suite.tenantID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), generated, 1)
	assert.Equal(suite.T(), models.AlertTypeOutOfStock, generated[0].Type)
}

func (suite *AlertServiceTestSuite) TestEvaluate_RepositoryError() {
	suite.mockProductRepo.On("ListActive", suite.ctx, suite.tenantID).Return(nil, errors.New("connection refused"))

	_, err := suite.service.Evaluate(suite.ctx, suite.tenantID)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to load products")
}

func (suite *AlertServiceTestSuite) TestLatestAlerts_ServedFromCache() {
	cached := []models.Alert{{ID: uuid.NewString(), Type: models.AlertTypeLowStock}}

	suite.mockCacheService.On("GetAlertSnapshot", suite.ctx, suite.tenantID).Return(cached, nil)

	got, err := suite.service.LatestAlerts(suite.ctx, suite.tenantID, false)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), cached, got)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "ListActive", mock.Anything, mock.Anything)
}

func (suite *AlertServiceTestSuite) TestLatestAlerts_RefreshBypassesCache() {
	suite.mockProductRepo.On("ListActive", suite.ctx, suite.tenantID).Return([]*models.Product{}, nil)
	suite.mockCacheService.On("SetAlertSnapshot", suite.ctx, suite.tenantID, mock.Anything, snapshotTTL).Return(nil)

	got, err := suite.service.LatestAlerts(suite.ctx, suite.tenantID, true)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), got)
	suite.mockCacheService.AssertNotCalled(suite.T(), "GetAlertSnapshot", mock.Anything, mock.Anything)
}

func (suite *AlertServiceTestSuite) TestLatestAlerts_CacheMissFallsBackToEvaluation() {
	suite.mockCacheService.On("GetAlertSnapshot", suite.ctx, suite.tenantID).Return(nil, nil)
	suite.mockProductRepo.On("ListActive", suite.ctx, suite.tenantID).Return([]*models.Product{}, nil)
	suite.mockCacheService.On("SetAlertSnapshot", suite.ctx, suite.tenantID, mock.Anything, snapshotTTL).Return(nil)

	got, err := suite.service.LatestAlerts(suite.ctx, suite.tenantID, false)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), got)
}

func (suite *AlertServiceTestSuite) TestOrderRecommendations_FromCurrentAlerts() {
	stock := 0.0
	cached := []models.Alert{
		{
			ID:   uuid.NewString(),
			Type: models.AlertTypeOutOfStock,
			Product: &models.Product{
				ID:       uuid.New(),
				Name:     "Insulin Vials",
				MinStock: 10,
				MaxStock: 50,
			},
			StockLevel: &stock,
		},
	}

	suite.mockCacheService.On("GetAlertSnapshot", suite.ctx, suite.tenantID).Return(cached, nil)

	recs, err := suite.service.OrderRecommendations(suite.ctx, suite.tenantID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), recs, 1)
	assert.Equal(suite.T(), models.RecommendationPriorityHigh, recs[0].Priority)
	assert.Equal(suite.T(), 50.0, recs[0].RecommendedQuantity)
}

func (suite *AlertServiceTestSuite) TestStats_FromCurrentAlerts() {
	cached := []models.Alert{
		{ID: uuid.NewString(), Type: models.AlertTypeOutOfStock, Severity: models.SeverityError, Priority: 1},
		{ID: uuid.NewString(), Type: models.AlertTypeLowStock, Severity: models.SeverityWarning, Priority: 4},
	}

	suite.mockCacheService.On("GetAlertSnapshot", suite.ctx, suite.tenantID).Return(cached, nil)

	stats, err := suite.service.Stats(suite.ctx, suite.tenantID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, stats.Total)
	assert.Equal(suite.T(), 1, stats.Critical)
	assert.Equal(suite.T(), models.TrendWorsening, stats.Trend)
}

func (suite *AlertServiceTestSuite) TestUpdateConfig_AppliesPatch() {
	days := 45
	updated, err := suite.service.UpdateConfig(models.AlertConfigUpdate{ExpirationWarningDays: &days})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 45, updated.ExpirationWarningDays)

	// Untouched fields keep their previous values.
	assert.Equal(suite.T(), 7, updated.CriticalExpirationDays)
}

func (suite *AlertServiceTestSuite) TestUpdateConfig_RejectsInvalidPatch() {
	days := -3
	_, err := suite.service.UpdateConfig(models.AlertConfigUpdate{ExpirationWarningDays: &days})
	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), 30, suite.service.Config().ExpirationWarningDays)
}
