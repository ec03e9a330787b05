package memory

import (
	"context"
	"sync"

	"github.com/cafeteriasoma/soma-api/internal/domain"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo en memoria. El context viene del puerto (la
// implementación remota lo usa para HTTP); aquí se ignora.
type ProductRepo struct {
	mu       sync.RWMutex
	products []*entity.Product
}

// NewProductRepository construye el repo con los productos indicados
// (nil = catálogo vacío).
func NewProductRepository(seed []*entity.Product) *ProductRepo {
	return &ProductRepo{products: seed}
}

// List devuelve una copia del catálogo.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID devuelve el producto o ErrNotFound.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create agrega el producto al final del catálogo.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.products = append(r.products, &cp)
	return nil
}

// Update reemplaza el producto con el mismo ID, o ErrNotFound.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == product.ID {
			cp := *product
			r.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el producto, o ErrNotFound si no existe.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Replace sustituye el catálogo completo (lo usa el modo remoto como caché
// de último estado conocido).
func (r *ProductRepo) Replace(products []*entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = products
}
