package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cafeteriasoma/soma-api/internal/application/dto"
	"github.com/cafeteriasoma/soma-api/internal/application/events"
	"github.com/cafeteriasoma/soma-api/internal/domain"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/domain/repository"
)

// CatalogUseCase CRUD y consultas del catálogo de productos. El repo puede
// ser el de memoria o el remoto con caché; el caso de uso no distingue.
type CatalogUseCase struct {
	repo repository.ProductRepository
	bus  *events.Bus
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository, bus *events.Bus) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, bus: bus}
}

// List devuelve el catálogo completo.
func (uc *CatalogUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductList(products), nil
}

// GetByID devuelve el producto o ErrNotFound.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// Create da de alta un producto activo.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       in.Image,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	uc.bus.Publish(events.Event{Type: events.TypeCreated, Entity: events.EntityProduct, Payload: out})
	return &out, nil
}

// Update aplica una actualización parcial: solo los campos presentes cambian,
// más UpdatedAt. ErrNotFound si el id no existe.
func (uc *CatalogUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		product.Category = *in.Category
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	uc.bus.Publish(events.Event{Type: events.TypeUpdated, Entity: events.EntityProduct, Payload: out})
	return &out, nil
}

// Delete elimina el producto; ErrNotFound deja el catálogo intacto. No hay
// cascada hacia carrito ni ventas.
func (uc *CatalogUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.bus.Publish(events.Event{Type: events.TypeDeleted, Entity: events.EntityProduct, Payload: id})
	return nil
}

// ByCategory filtra por igualdad exacta de categoría.
func (uc *CatalogUseCase) ByCategory(ctx context.Context, category string) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := products[:0:0]
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return toProductList(filtered), nil
}

// Search filtra por subcadena sobre nombre y descripción, sin distinguir
// mayúsculas ni acentos ("cafe" encuentra "Café").
func (uc *CatalogUseCase) Search(ctx context.Context, query string) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q := searchFold(query)
	filtered := products[:0:0]
	for _, p := range products {
		if strings.Contains(searchFold(p.Name), q) || strings.Contains(searchFold(p.Description), q) {
			filtered = append(filtered, p)
		}
	}
	return toProductList(filtered), nil
}

// foldTransformer descompone y elimina marcas diacríticas (NFD + quitar Mn).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// searchFold normaliza para búsqueda: minúsculas y sin acentos.
func searchFold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductList(products []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}
