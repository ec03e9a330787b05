package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafeteriasoma/soma-api/internal/application/auth"
	"github.com/cafeteriasoma/soma-api/internal/application/dto"
	"github.com/cafeteriasoma/soma-api/internal/application/events"
	"github.com/cafeteriasoma/soma-api/internal/application/usecase"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/localstore"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/memory"
	"github.com/cafeteriasoma/soma-api/internal/infrastructure/remote"
	apphttp "github.com/cafeteriasoma/soma-api/internal/interfaces/http"
)

// recibosDeTest evita generar PDFs reales en los tests del router.
type recibosDeTest struct{}

func (recibosDeTest) Generate(*entity.Sale) ([]byte, error) {
	return []byte("%PDF-test"), nil
}

// newTestServer levanta la app completa con seeds y snapshot temporal.
func newTestServer(t *testing.T) *fiber.App {
	t.Helper()

	store, err := localstore.NewFileStore(filepath.Join(t.TempDir(), "localstore.json"))
	require.NoError(t, err)

	bus := events.NewBus()
	authUC := auth.NewAuthUseCase(
		memory.NewAccountRepository(store),
		memory.NewSessionRepository(store),
		nil,
		bus,
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
		auth.AdminIdentity{Username: "admin", Email: "admin@cafeteriasoma.com", Password: "admin123"},
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   usecase.NewCatalogUseCase(memory.NewProductRepository(memory.SeedProducts()), bus),
		PromotionUC: usecase.NewPromotionUseCase(memory.NewPromotionRepository(memory.SeedPromotions()), bus),
		SalesUC:     usecase.NewSalesUseCase(memory.NewSaleRepository(memory.SeedSales()), recibosDeTest{}, bus),
		CartUC:      usecase.NewCartUseCase(memory.NewCartRepository(store), bus),
		Bus:         bus,
		JWTSecret:   testJWTSecret,
	})
	return app
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// loginAdmin devuelve el header Authorization del admin.
func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: "admin", Password: "admin123"}), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

// El catálogo sembrado es público y trae los seis productos.
func TestRutas_CatalogoPublico(t *testing.T) {
	app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/productos/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 6, out.Total)
}

// ?q= busca sin acentos: "cafe" también encuentra "Café".
func TestRutas_BusquedaPorQuery(t *testing.T) {
	app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/productos/?q=espresso", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.GreaterOrEqual(t, out.Total, 1)
	assert.Equal(t, "Espresso", out.Items[0].Name)
}

// Las escrituras del catálogo exigen sesión de ADMIN.
func TestRutas_CrearProductoExigeAdmin(t *testing.T) {
	app := newTestServer(t)
	body := dto.CreateProductRequest{
		Name:     "Brownie",
		Category: entity.CategoryPostres,
	}

	// Sin token → 401
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/productos/", body), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Con token de admin → 201
	req := jsonRequest(t, http.MethodPost, "/api/productos/", body)
	req.Header.Set("Authorization", loginAdmin(t, app))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

// Un CLIENT autenticado no pasa el RBAC de las rutas de administración.
func TestRutas_ClienteBloqueadoEnVentas(t *testing.T) {
	app := newTestServer(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Email: "ana@mail.com", Password: "secreta1"}), -1)
	require.NoError(t, err)
	var session dto.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/ventas/", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// El historial sembrado llega completo para el admin, más reciente primero.
func TestRutas_HistorialDeVentasParaAdmin(t *testing.T) {
	app := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ventas/", nil)
	req.Header.Set("Authorization", loginAdmin(t, app))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.SaleListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.Total)
}

// Promociones activas y descuento por producto son públicos.
func TestRutas_PromocionesPublicas(t *testing.T) {
	app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/promociones/activas", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/promociones/descuento/1", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Flujo del carrito por HTTP: agregar, fusionar, ver y vaciar.
func TestRutas_FlujoDeCarrito(t *testing.T) {
	app := newTestServer(t)

	add := func(qty int) dto.CartResponse {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/carrito/items", fiber.Map{
			"productId": "1",
			"name":      "Espresso",
			"price":     "3.50",
			"quantity":  qty,
		}), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out dto.CartResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	add(1)
	out := add(2)
	require.Len(t, out.Items, 1, "mismo producto se fusiona en una línea")
	assert.Equal(t, 3, out.Count)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/carrito/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var vacio dto.CartResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&vacio))
	assert.Equal(t, 0, vacio.Count)
}

// newRemoteTestServer levanta la app con el catálogo en modo pass-through
// contra backendURL; devuelve también el caso de uso de auth para inspeccionar
// la sesión persistida.
func newRemoteTestServer(t *testing.T, backendURL string) (*fiber.App, *auth.AuthUseCase) {
	t.Helper()

	store, err := localstore.NewFileStore(filepath.Join(t.TempDir(), "localstore.json"))
	require.NoError(t, err)

	bus := events.NewBus()
	authUC := auth.NewAuthUseCase(
		memory.NewAccountRepository(store),
		memory.NewSessionRepository(store),
		nil,
		bus,
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
		auth.AdminIdentity{Username: "admin", Email: "admin@cafeteriasoma.com", Password: "admin123"},
	)
	cache := memory.NewProductRepository(memory.SeedProducts())
	catalogRepo := remote.NewProductRepository(remote.NewClient(backendURL), cache, zerolog.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   usecase.NewCatalogUseCase(catalogRepo, bus),
		PromotionUC: usecase.NewPromotionUseCase(memory.NewPromotionRepository(memory.SeedPromotions()), bus),
		SalesUC:     usecase.NewSalesUseCase(memory.NewSaleRepository(memory.SeedSales()), recibosDeTest{}, bus),
		CartUC:      usecase.NewCartUseCase(memory.NewCartRepository(store), bus),
		Bus:         bus,
		JWTSecret:   testJWTSecret,
	})
	return app, authUC
}

// Un 401 del backend remoto en una escritura del catálogo responde 401 y
// además descarta la sesión local: el siguiente guard manda al login.
func TestRutas_Remoto401DescartaSesion(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	app, authUC := newRemoteTestServer(t, backend.URL)
	authHeader := loginAdmin(t, app)
	require.True(t, authUC.IsAuthenticated())

	req := jsonRequest(t, http.MethodPut, "/api/productos/1", fiber.Map{"name": "Espresso Doble"})
	req.Header.Set("Authorization", authHeader)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "UNAUTHORIZED", out.Code)

	// La sesión del snapshot ya no existe.
	assert.False(t, authUC.IsAuthenticated(), "el 401 remoto debe limpiar la sesión local")

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", authHeader)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// El límite superior del rango: una fecha simple cubre el día completo; un
// instante RFC 3339 explícito se respeta sin ensanchar.
func TestRutas_RangoDeFechasLimiteSuperior(t *testing.T) {
	app := newTestServer(t)
	authHeader := loginAdmin(t, app)

	rango := func(hasta string) dto.SaleListResponse {
		req := httptest.NewRequest(http.MethodGet, "/api/ventas/rango?desde=2024-10-15&hasta="+hasta, nil)
		req.Header.Set("Authorization", authHeader)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out dto.SaleListResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	// Fecha simple: incluye la venta de las 09:15 del día 17.
	assert.Equal(t, 2, rango("2024-10-17").Total)
	// Medianoche explícita del 17: esa venta queda fuera.
	assert.Equal(t, 1, rango("2024-10-17T00:00:00Z").Total)
}

// Logout invalida la sesión persistida: /me pasa a 401.
func TestRutas_LogoutInvalidaSesion(t *testing.T) {
	app := newTestServer(t)
	authHeader := loginAdmin(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", authHeader)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// El token JWT sigue siendo verificable, pero la sesión del snapshot ya
	// no existe: Me responde 401.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", authHeader)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
