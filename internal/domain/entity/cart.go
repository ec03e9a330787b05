package entity

import "github.com/shopspring/decimal"

// CartItem línea del carrito de compras. Se serializa tal cual al snapshot
// local (clave cart_items), de ahí los tags JSON.
type CartItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// LineTotal precio por cantidad de la línea.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
