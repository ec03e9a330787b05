package repository

import (
	"context"

	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Lleva context porque la implementación remota hace llamadas HTTP;
// la implementación en memoria lo ignora.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
