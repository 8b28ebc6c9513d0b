package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a stocked pharmacy/supply item. The alert engine treats
// products as read-only input; only the CRUD layer mutates them.
type Product struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	TenantID       uuid.UUID  `json:"tenant_id" db:"tenant_id"`
	Code           string     `json:"code" db:"code"`
	Name           string     `json:"name" db:"name"`
	Category       *string    `json:"category" db:"category"`
	UnitOfMeasure  string     `json:"unit_of_measure" db:"unit_of_measure"`
	CurrentStock   float64    `json:"current_stock" db:"current_stock"`
	MinStock       float64    `json:"min_stock" db:"min_stock"`
	MaxStock       float64    `json:"max_stock" db:"max_stock"`
	PurchasePrice  float64    `json:"purchase_price" db:"purchase_price"`
	SalePrice      float64    `json:"sale_price" db:"sale_price"`
	SupplierID     *uuid.UUID `json:"supplier_id" db:"supplier_id"`
	Active         bool       `json:"active" db:"active"`
	ExpirationDate *time.Time `json:"expiration_date" db:"expiration_date"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}
