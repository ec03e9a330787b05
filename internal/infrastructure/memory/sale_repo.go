package memory

import (
	"sync"

	"github.com/cafeteriasoma/soma-api/internal/domain"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo historial de ventas en memoria, ordenado de más reciente a más
// antigua.
type SaleRepo struct {
	mu    sync.RWMutex
	sales []*entity.Sale
}

// NewSaleRepository construye el repo con el historial indicado.
func NewSaleRepository(seed []*entity.Sale) *SaleRepo {
	return &SaleRepo{sales: seed}
}

// Insert agrega la venta al inicio del historial.
func (r *SaleRepo) Insert(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *sale
	r.sales = append([]*entity.Sale{&cp}, r.sales...)
	return nil
}

// Update reemplaza la venta con el mismo ID, conservando su posición en el
// historial; ErrNotFound si no existe.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.sales {
		if s.ID == sale.ID {
			cp := *sale
			r.sales[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve una copia del historial.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

// GetByID devuelve la venta o ErrNotFound.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sales {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}
