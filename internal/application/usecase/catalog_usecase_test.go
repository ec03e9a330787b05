package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafeteriasoma/soma-api/internal/application/dto"
	"github.com/cafeteriasoma/soma-api/internal/application/events"
	"github.com/cafeteriasoma/soma-api/internal/domain"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/memory"
)

func catalogUC(seed ...*entity.Product) *CatalogUseCase {
	return NewCatalogUseCase(memory.NewProductRepository(seed), events.NewBus())
}

func producto(id, name, category, price string) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    pct(price),
		IsActive: true,
	}
}

// La búsqueda no distingue mayúsculas ni acentos: "cafe" encuentra "Café".
func TestBuscar_SinAcentosNiMayusculas(t *testing.T) {
	uc := catalogUC(
		producto("1", "Café Americano", entity.CategoryCafeCaliente, "3.75"),
		producto("2", "Té Verde", entity.CategoryBebidasCaliente, "3.25"),
	)

	out, err := uc.Search(context.Background(), "cafe")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Café Americano", out.Items[0].Name)

	out, err = uc.Search(context.Background(), "TÉ")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Té Verde", out.Items[0].Name)
}

// La búsqueda también cubre la descripción.
func TestBuscar_PorDescripcion(t *testing.T) {
	conDesc := producto("1", "Espresso", entity.CategoryCafeCaliente, "3.50")
	conDesc.Description = "Café espresso italiano tradicional"
	uc := catalogUC(conDesc)

	out, err := uc.Search(context.Background(), "italiano")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
}

// ByCategory filtra por igualdad exacta.
func TestPorCategoria_FiltraExacto(t *testing.T) {
	uc := catalogUC(
		producto("1", "Espresso", entity.CategoryCafeCaliente, "3.50"),
		producto("2", "Latte", entity.CategoryCafeCaliente, "4.75"),
		producto("3", "Té Verde", entity.CategoryBebidasCaliente, "3.25"),
	)

	out, err := uc.ByCategory(context.Background(), entity.CategoryCafeCaliente)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)

	vacio, err := uc.ByCategory(context.Background(), entity.CategoryPostres)
	require.NoError(t, err)
	assert.Equal(t, 0, vacio.Total)
}

// Crear exige una categoría del enum.
func TestCrearProducto_CategoriaInvalidaFalla(t *testing.T) {
	uc := catalogUC()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Jugo de Lulo",
		Category: "Jugos",
		Price:    pct("4.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Crear asigna id, activa el producto y lo deja consultable.
func TestCrearProducto_QuedaEnCatalogo(t *testing.T) {
	uc := catalogUC()

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Brownie",
		Category: entity.CategoryPostres,
		Price:    pct("2.80"),
		Stock:    25,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brownie", got.Name)
	assert.Equal(t, 25, got.Stock)
}

// Update parcial: los campos ausentes se conservan y UpdatedAt avanza.
func TestActualizarProducto_ParcialConservaElResto(t *testing.T) {
	original := producto("1", "Espresso", entity.CategoryCafeCaliente, "3.50")
	original.Description = "Café espresso italiano tradicional"
	original.Stock = 100
	uc := catalogUC(original)

	nuevoPrecio := pct("3.90")
	out, err := uc.Update(context.Background(), "1", dto.UpdateProductRequest{Price: &nuevoPrecio})
	require.NoError(t, err)

	assert.True(t, out.Price.Equal(pct("3.90")))
	assert.Equal(t, "Espresso", out.Name, "el nombre no debía cambiar")
	assert.Equal(t, "Café espresso italiano tradicional", out.Description)
	assert.Equal(t, 100, out.Stock)
	assert.False(t, out.UpdatedAt.IsZero())
}

func TestActualizarProducto_CategoriaInvalidaFalla(t *testing.T) {
	uc := catalogUC(producto("1", "Espresso", entity.CategoryCafeCaliente, "3.50"))

	invalida := "Licores"
	_, err := uc.Update(context.Background(), "1", dto.UpdateProductRequest{Category: &invalida})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Eliminar un id inexistente devuelve ErrNotFound y deja el catálogo intacto.
func TestEliminarProducto_NoExisteDejaCatalogoIntacto(t *testing.T) {
	uc := catalogUC(producto("1", "Espresso", entity.CategoryCafeCaliente, "3.50"))

	err := uc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
}

func TestEliminarProducto_Existente(t *testing.T) {
	uc := catalogUC(producto("1", "Espresso", entity.CategoryCafeCaliente, "3.50"))

	require.NoError(t, uc.Delete(context.Background(), "1"))

	_, err := uc.GetByID(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
