package memory

import (
	"sync"

	"github.com/cafeteriasoma/soma-api/internal/domain"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/domain/repository"
)

var _ repository.PromotionRepository = (*PromotionRepo)(nil)

// PromotionRepo promociones en memoria.
type PromotionRepo struct {
	mu         sync.RWMutex
	promotions []*entity.Promotion
}

// NewPromotionRepository construye el repo con las promociones indicadas.
func NewPromotionRepository(seed []*entity.Promotion) *PromotionRepo {
	return &PromotionRepo{promotions: seed}
}

// List devuelve una copia de la lista de promociones.
func (r *PromotionRepo) List() ([]*entity.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Promotion, len(r.promotions))
	copy(out, r.promotions)
	return out, nil
}

// GetByID devuelve la promoción o ErrNotFound.
func (r *PromotionRepo) GetByID(id string) (*entity.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.promotions {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create agrega la promoción al final.
func (r *PromotionRepo) Create(promotion *entity.Promotion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *promotion
	r.promotions = append(r.promotions, &cp)
	return nil
}

// Update reemplaza la promoción con el mismo ID, o ErrNotFound.
func (r *PromotionRepo) Update(promotion *entity.Promotion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.promotions {
		if p.ID == promotion.ID {
			cp := *promotion
			r.promotions[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la promoción, o ErrNotFound si no existe.
func (r *PromotionRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.promotions {
		if p.ID == id {
			r.promotions = append(r.promotions[:i], r.promotions[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
