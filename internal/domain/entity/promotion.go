package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion descuento porcentual acotado en el tiempo sobre un conjunto de productos.
type Promotion struct {
	ID                 string
	Name               string
	Description        string
	DiscountPercentage decimal.Decimal
	StartDate          time.Time
	EndDate            time.Time
	ProductIDs         []string
	IsActive           bool
	CreatedAt          time.Time
}

// ValidAt indica si la promoción está vigente en el instante dado:
// IsActive y now dentro de [StartDate, EndDate] (extremos inclusivos).
func (p *Promotion) ValidAt(now time.Time) bool {
	return p.IsActive && !now.Before(p.StartDate) && !now.After(p.EndDate)
}

// AppliesTo indica si la promoción cubre el producto.
func (p *Promotion) AppliesTo(productID string) bool {
	for _, id := range p.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
