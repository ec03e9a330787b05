package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/memory"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/remote"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func repoContra(t *testing.T, handler http.HandlerFunc, seed ...*entity.Product) *remote.ProductRepo {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return remote.NewProductRepository(
		remote.NewClient(srv.URL),
		memory.NewProductRepository(seed),
		zerolog.Nop(),
	)
}

// El backend puede responder con claves en español; se normalizan al esquema
// canónico.
func TestListadoRemoto_NormalizaClavesEnEspanol(t *testing.T) {
	repo := repoContra(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/productos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"idProducto": 7, "nombre": "Mocaccino", "descripcion": "Café con chocolate",
			 "categoria": "Café Caliente", "precio": 5.25, "stock": 40,
			 "imagenUrl": "assets/images/mocaccino.svg", "activo": true}
		]`))
	})

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "7", p.ID)
	assert.Equal(t, "Mocaccino", p.Name)
	assert.Equal(t, "Café con chocolate", p.Description)
	assert.Equal(t, entity.CategoryCafeCaliente, p.Category)
	assert.True(t, p.Price.Equal(dec("5.25")))
	assert.Equal(t, "assets/images/mocaccino.svg", p.Image)
	assert.True(t, p.IsActive)
}

// Las claves en inglés pasan igual de bien.
func TestListadoRemoto_ClavesEnIngles(t *testing.T) {
	repo := repoContra(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "9", "name": "Chai", "category": "Bebidas Calientes", "price": 4.10}]`))
	})

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Chai", products[0].Name)
	assert.True(t, products[0].IsActive, "sin bandera explícita el producto queda activo")
}

// Si el remoto no responde, el listado cae a la caché del último estado
// conocido en lugar de fallar.
func TestListadoRemoto_CaidaSirveLaCache(t *testing.T) {
	enCache := &entity.Product{ID: "1", Name: "Espresso", Price: dec("3.50"), IsActive: true}
	repo := repoContra(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, enCache)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Espresso", products[0].Name)
}

// Las escrituras sí propagan el error remoto.
func TestCrearRemoto_ErrorSePropaga(t *testing.T) {
	repo := repoContra(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := repo.Create(context.Background(), &entity.Product{ID: "x", Name: "Nuevo"})
	assert.Error(t, err)
}

// Create adopta el producto que devuelve el backend (id asignado allá) y lo
// deja consultable en la caché.
func TestCrearRemoto_AdoptaRespuestaDelBackend(t *testing.T) {
	repo := repoContra(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"idProducto": 42, "nombre": "Brownie", "precio": 2.80}`))
	})

	p := &entity.Product{Name: "Brownie", Price: dec("2.80")}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, "42", p.ID, "el id lo asigna el backend")

	got, err := repo.GetByID(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Brownie", got.Name)
}
