package repository

import "github.com/cafeteriasoma/soma-api/internal/domain/entity"

// SaleRepository puerto de persistencia para el historial de ventas.
// Insert deja la venta al inicio: el historial se mantiene de más
// reciente a más antigua.
type SaleRepository interface {
	Insert(sale *entity.Sale) error
	Update(sale *entity.Sale) error
	List() ([]*entity.Sale, error)
	GetByID(id string) (*entity.Sale, error)
}
