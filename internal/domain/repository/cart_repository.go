package repository

import "github.com/cafeteriasoma/soma-api/internal/domain/entity"

// CartRepository puerto sobre la lista persistida del carrito
// (clave cart_items del snapshot local). Save escribe la lista completa
// en cada mutación.
type CartRepository interface {
	Load() ([]entity.CartItem, error)
	Save(items []entity.CartItem) error
}
