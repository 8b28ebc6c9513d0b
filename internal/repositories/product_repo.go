package repositories

import (
	"context"

	"medstock/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the slice of pgxpool.Pool the repositories use; pgxmock
// satisfies it in tests.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Product, error)
	ListActive(ctx context.Context, tenantID uuid.UUID) ([]*models.Product, error)
	GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*models.Product, error)
	TenantIDs(ctx context.Context) ([]uuid.UUID, error)
}

type productRepo struct {
	db Database
}

func NewProductRepository(db Database) ProductRepository {
	return &productRepo{db: db}
}

const productColumns = `id, tenant_id, code, name, category, unit_of_measure, current_stock, min_stock, max_stock, purchase_price, sale_price, supplier_id, active, expiration_date, created_at, updated_at`

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, tenant_id, code, name, category, unit_of_measure, current_stock, min_stock, max_stock, purchase_price, sale_price, supplier_id, active, expiration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, product.ID, product.TenantID, product.Code, product.Name, product.Category, product.UnitOfMeasure, product.CurrentStock, product.MinStock, product.MaxStock, product.PurchasePrice, product.SalePrice, product.SupplierID, product.Active, product.ExpirationDate)
	return err
}

func (r *productRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE tenant_id = $1 AND id = $2
	`
	return r.scanProduct(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *productRepo) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE tenant_id = $1 AND code = $2
	`
	return r.scanProduct(r.db.QueryRow(ctx, query, tenantID, code))
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET code = $3, name = $4, category = $5, unit_of_measure = $6, current_stock = $7, min_stock = $8, max_stock = $9, purchase_price = $10, sale_price = $11, supplier_id = $12, active = $13, expiration_date = $14, updated_at = NOW()
		WHERE tenant_id = $1 AND id = $2
	`
	_, err := r.db.Exec(ctx, query, product.TenantID, product.ID, product.Code, product.Name, product.Category, product.UnitOfMeasure, product.CurrentStock, product.MinStock, product.MaxStock, product.PurchasePrice, product.SalePrice, product.SupplierID, product.Active, product.ExpirationDate)
	return err
}

func (r *productRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM products WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *productRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE tenant_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectProducts(rows)
}

// ListActive returns every active product of a tenant. Alert evaluation
// works over the full active set, so no pagination here.
func (r *productRepo) ListActive(ctx context.Context, tenantID uuid.UUID) ([]*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE tenant_id = $1 AND active = true
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectProducts(rows)
}

// TenantIDs lists every tenant that has products, for scheduled sweeps.
func (r *productRepo) TenantIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `SELECT DISTINCT tenant_id FROM products`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *productRepo) scanProduct(row pgx.Row) (*models.Product, error) {
	product := &models.Product{}
	err := row.Scan(&product.ID, &product.TenantID, &product.Code, &product.Name, &product.Category, &product.UnitOfMeasure, &product.CurrentStock, &product.MinStock, &product.MaxStock, &product.PurchasePrice, &product.SalePrice, &product.SupplierID, &product.Active, &product.ExpirationDate, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) collectProducts(rows pgx.Rows) ([]*models.Product, error) {
	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		err := rows.Scan(&product.ID, &product.TenantID, &product.Code, &product.Name, &product.Category, &product.UnitOfMeasure, &product.CurrentStock, &product.MinStock, &product.MaxStock, &product.PurchasePrice, &product.SalePrice, &product.SupplierID, &product.Active, &product.ExpirationDate, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}
