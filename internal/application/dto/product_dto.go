package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=120"`
	Description string          `json:"description" validate:"max=500"`
	Category    string          `json:"category" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"min=0"`
	Image       string          `json:"image"`
}

// UpdateProductRequest entrada para actualización parcial: solo los campos
// presentes se aplican.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Image       *string          `json:"image"`
	IsActive    *bool            `json:"isActive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductListResponse lista de productos del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
