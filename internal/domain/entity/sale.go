package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleCompleted = "COMPLETADA"
	SalePending   = "PENDIENTE"
	SaleCancelled = "CANCELADA"
)

// ValidSaleStatus indica si s es uno de los estados conocidos de venta.
func ValidSaleStatus(s string) bool {
	switch s {
	case SaleCompleted, SalePending, SaleCancelled:
		return true
	}
	return false
}

// SaleItem línea de una venta. Subtotal viene fijado al crear la venta;
// no se recalcula en lecturas posteriores.
type SaleItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Sale orden del historial de ventas. Invariante al crear:
// Total = Subtotal - Discount, Subtotal = suma de subtotales de ítems.
type Sale struct {
	ID           string
	CustomerName string
	Items        []SaleItem
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal
	Status       string
	CreatedAt    time.Time
}

// UnitsSold suma las cantidades de todos los ítems de la venta.
func (s *Sale) UnitsSold() int {
	units := 0
	for _, it := range s.Items {
		units += it.Quantity
	}
	return units
}
