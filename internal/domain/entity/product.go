package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías del catálogo (enum cerrado).
const (
	CategoryCafeCaliente    = "Café Caliente"
	CategoryBebidasCaliente = "Bebidas Calientes"
	CategoryPostres         = "Postres"
	CategorySnacks          = "Snacks"
)

// Categories lista las categorías válidas en orden de presentación.
var Categories = []string{
	CategoryCafeCaliente,
	CategoryBebidasCaliente,
	CategoryPostres,
	CategorySnacks,
}

// ValidCategory indica si la categoría pertenece al enum del catálogo.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Product representa un ítem del catálogo de la cafetería.
// Price usa decimal para evitar errores de redondeo en dinero.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
	Image       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
