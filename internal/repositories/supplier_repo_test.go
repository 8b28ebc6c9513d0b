package repositories

import (
	"context"
	"testing"
	"time"

	"medstock/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SupplierRepoTestSuite struct {
	suite.Suite
	mock     pgxmock.PgxPoolIface
	repo     SupplierRepository
	tenantID uuid.UUID
	context  context.Context
}

func (suite *SupplierRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewSupplierRepository(mock)
	suite.tenantID = uuid.New()
	suite.context = context.Background()
}

func (suite *SupplierRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestSupplierRepoTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierRepoTestSuite))
}

func (suite *SupplierRepoTestSuite) sampleSupplier() *models.Supplier {
	return &models.Supplier{
		ID:        uuid.New(),
		TenantID:  suite.tenantID,
		Name:      "PharmaDirect",
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (suite *SupplierRepoTestSuite) supplierRow(supplier *models.Supplier) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "tenant_id", "name", "contact_name", "email", "phone", "active", "created_at", "updated_at",
	}).AddRow(
		supplier.ID, supplier.TenantID, supplier.Name, supplier.ContactName,
		supplier.Email, supplier.Phone, supplier.Active, supplier.CreatedAt, supplier.UpdatedAt,
	)
}

func (suite *SupplierRepoTestSuite) TestCreate_Success() {
	supplier := suite.sampleSupplier()

	suite.mock.ExpectExec(`INSERT INTO suppliers`).
		WithArgs(supplier.ID, supplier.TenantID, supplier.Name, supplier.ContactName,
			supplier.Email, supplier.Phone, supplier.Active).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, supplier)
	assert.NoError(suite.T(), err)
}

func (suite *SupplierRepoTestSuite) TestGetByName_Success() {
	supplier := suite.sampleSupplier()

	suite.mock.ExpectQuery(`SELECT .+ FROM suppliers\s+WHERE tenant_id = \$1 AND name = \$2`).
		WithArgs(suite.tenantID, supplier.Name).
		WillReturnRows(suite.supplierRow(supplier))

	got, err := suite.repo.GetByName(suite.context, suite.tenantID, supplier.Name)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), supplier.ID, got.ID)
}

func (suite *SupplierRepoTestSuite) TestList_Paginated() {
	supplier := suite.sampleSupplier()

	suite.mock.ExpectQuery(`SELECT .+ FROM suppliers\s+WHERE tenant_id = \$1\s+ORDER BY name`).
		WithArgs(suite.tenantID, 50, 0).
		WillReturnRows(suite.supplierRow(supplier))

	suppliers, err := suite.repo.List(suite.context, suite.tenantID, 50, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), suppliers, 1)
}

func (suite *SupplierRepoTestSuite) TestDelete_Success() {
	supplierID := uuid.New()

	suite.mock.ExpectExec(`DELETE FROM suppliers WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs(suite.tenantID, supplierID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.Delete(suite.context, suite.tenantID, supplierID)
	assert.NoError(suite.T(), err)
}
