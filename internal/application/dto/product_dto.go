package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto (solo administradores).
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	URLImage    string          `json:"urlImage"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// UpdateProductRequest cambios parciales de producto. Campos nil no se tocan.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	URLImage    *string          `json:"urlImage"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Available   *bool            `json:"available"`
}

// ProductResponse representación de un producto del catálogo.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	URLImage    string          `json:"urlImage"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
