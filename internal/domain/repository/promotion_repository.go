package repository

import "github.com/cafeteriasoma/soma-api/internal/domain/entity"

// PromotionRepository puerto de persistencia para Promotion.
type PromotionRepository interface {
	List() ([]*entity.Promotion, error)
	GetByID(id string) (*entity.Promotion, error)
	Create(promotion *entity.Promotion) error
	Update(promotion *entity.Promotion) error
	Delete(id string) error
}
