package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cafeteriasoma/soma-api/internal/domain"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/domain/repository"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/memory"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo contra GET/POST/PUT {base}/productos, con caché de
// último estado conocido. Si el listado remoto falla se sirve la caché en
// lugar de propagar el error; las escrituras sí propagan.
//
// GetByID y Delete operan solo sobre la caché: el backend original no
// expone esas rutas.
type ProductRepo struct {
	client *Client
	cache  *memory.ProductRepo
	log    zerolog.Logger
}

// NewProductRepository construye el repo remoto sobre la caché indicada.
func NewProductRepository(client *Client, cache *memory.ProductRepo, log zerolog.Logger) *ProductRepo {
	return &ProductRepo{client: client, cache: cache, log: log}
}

// remoteProduct representación heterogénea del backend: admite claves en
// inglés (name, price, image…) o en español (nombre, precio, imagenUrl…).
type remoteProduct struct {
	ID          string          `json:"id"`
	IDProducto  json.Number     `json:"idProducto"`
	Name        string          `json:"name"`
	Nombre      string          `json:"nombre"`
	Description string          `json:"description"`
	Descripcion string          `json:"descripcion"`
	Category    string          `json:"category"`
	Categoria   string          `json:"categoria"`
	Price       decimal.Decimal `json:"price"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	ImagenURL   string          `json:"imagenUrl"`
	IsActive    *bool           `json:"isActive"`
	Activo      *bool           `json:"activo"`
	CreatedAt   *time.Time      `json:"createdAt"`
	FechaCre    *time.Time      `json:"fechaCreacion"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
	FechaAct    *time.Time      `json:"fechaActualizacion"`
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// normalize proyecta la representación remota al Product canónico.
func (rp remoteProduct) normalize() *entity.Product {
	id := rp.ID
	if id == "" {
		id = rp.IDProducto.String()
	}
	price := rp.Price
	if price.IsZero() {
		price = rp.Precio
	}
	active := true
	if rp.IsActive != nil {
		active = *rp.IsActive
	} else if rp.Activo != nil {
		active = *rp.Activo
	}
	p := &entity.Product{
		ID:          id,
		Name:        pick(rp.Name, rp.Nombre),
		Description: pick(rp.Description, rp.Descripcion),
		Category:    pick(rp.Category, rp.Categoria),
		Price:       price,
		Stock:       rp.Stock,
		Image:       pick(rp.Image, rp.ImagenURL),
		IsActive:    active,
	}
	if rp.CreatedAt != nil {
		p.CreatedAt = *rp.CreatedAt
	} else if rp.FechaCre != nil {
		p.CreatedAt = *rp.FechaCre
	}
	if rp.UpdatedAt != nil {
		p.UpdatedAt = *rp.UpdatedAt
	} else if rp.FechaAct != nil {
		p.UpdatedAt = *rp.FechaAct
	}
	return p
}

// List trae el catálogo remoto, lo normaliza y reemplaza la caché. Si el
// remoto falla devuelve el último estado conocido.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	var rows []remoteProduct
	if err := r.client.doJSON(ctx, http.MethodGet, "/productos", nil, &rows); err != nil {
		r.log.Warn().Err(err).Msg("listado remoto falló, sirviendo caché")
		return r.cache.List(ctx)
	}
	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.normalize())
	}
	r.cache.Replace(products)
	return r.cache.List(ctx)
}

// GetByID sirve desde la caché.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.cache.GetByID(ctx, id)
}

// Create envía POST /productos y refleja el resultado en la caché.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	var created remoteProduct
	if err := r.client.doJSON(ctx, http.MethodPost, "/productos", toRemote(product), &created); err != nil {
		return err
	}
	normalized := created.normalize()
	if normalized.ID != "" {
		*product = *normalized
	}
	return r.cache.Create(ctx, product)
}

// Update envía PUT /productos/{id} y refleja el resultado en la caché.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	var updated remoteProduct
	if err := r.client.doJSON(ctx, http.MethodPut, "/productos/"+product.ID, toRemote(product), &updated); err != nil {
		return err
	}
	if normalized := updated.normalize(); normalized.ID != "" {
		*product = *normalized
	}
	if err := r.cache.Update(ctx, product); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// Delete elimina solo de la caché.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, id)
}

// toRemote serializa hacia el esquema en inglés, el que acepta el backend.
func toRemote(p *entity.Product) map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"price":       p.Price,
		"stock":       p.Stock,
		"image":       p.Image,
		"isActive":    p.IsActive,
	}
}
