package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest entrada para agregar un ítem al carrito.
type AddCartItemRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	Image     string          `json:"image"`
}

// CartItemResponse línea del carrito.
type CartItemResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// CartResponse carrito con sus derivados: conteo (suma de cantidades) y
// total (suma de precio por cantidad), recalculados en cada lectura.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int                `json:"count"`
	Total decimal.Decimal    `json:"total"`
}
