package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemDTO línea de venta. El subtotal lo aporta el caller (puede traer
// precio unitario ya rebajado por promoción).
type SaleItemDTO struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	CustomerName string           `json:"customerName" validate:"required,min=1,max=200"`
	Items        []SaleItemDTO    `json:"items" validate:"required,min=1"`
	Discount     *decimal.Decimal `json:"discount"`
}

// UpdateSaleStatusRequest entrada para cambiar el estado de una venta.
type UpdateSaleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=COMPLETADA PENDIENTE CANCELADA"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Items        []SaleItemDTO   `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// SaleListResponse historial de ventas (más reciente primero).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}

// SalesStatsResponse agregados del dashboard de ventas.
type SalesStatsResponse struct {
	TotalSales    int             `json:"totalSales"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	ProductsSold  int             `json:"productsSold"`
	AverageTicket decimal.Decimal `json:"averageTicket"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
}
