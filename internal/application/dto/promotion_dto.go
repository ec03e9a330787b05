package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePromotionRequest entrada para crear una promoción.
type CreatePromotionRequest struct {
	Name               string          `json:"name" validate:"required,min=1,max=120"`
	Description        string          `json:"description" validate:"max=500"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	StartDate          time.Time       `json:"startDate"`
	EndDate            time.Time       `json:"endDate"`
	ProductIDs         []string        `json:"productIds"`
}

// UpdatePromotionRequest actualización parcial de una promoción.
type UpdatePromotionRequest struct {
	Name               *string          `json:"name" validate:"omitempty,min=1,max=120"`
	Description        *string          `json:"description" validate:"omitempty,max=500"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"`
	StartDate          *time.Time       `json:"startDate"`
	EndDate            *time.Time       `json:"endDate"`
	ProductIDs         []string         `json:"productIds"`
}

// PromotionResponse salida de una promoción.
type PromotionResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	StartDate          time.Time       `json:"startDate"`
	EndDate            time.Time       `json:"endDate"`
	ProductIDs         []string        `json:"productIds"`
	IsActive           bool            `json:"isActive"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// DiscountResponse porcentaje de descuento vigente para un producto.
type DiscountResponse struct {
	ProductID          string          `json:"productId"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
}
