package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cafeteriasoma/soma-api/internal/application/auth"
	"github.com/cafeteriasoma/soma-api/internal/application/events"
	"github.com/cafeteriasoma/soma-api/internal/application/usecase"
	"github.com/cafeteriasoma/soma-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *usecase.CatalogUseCase
	PromotionUC *usecase.PromotionUseCase
	SalesUC     *usecase.SalesUseCase
	CartUC      *usecase.CartUseCase
	Bus         *events.Bus
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authed := AuthMiddleware(deps.JWTSecret)
	admin := RequireRole(entity.RoleAdmin)

	// Auth (login y registro públicos; logout y me requieren token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/logout", authed, authHandler.Logout)
	authGroup.Get("/me", authed, authHandler.Me)

	// Productos (lectura pública; escritura solo ADMIN)
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.CatalogUC, deps.AuthUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authed, admin, productHandler.Create)
	products.Put("/:id", authed, admin, productHandler.Update)
	products.Delete("/:id", authed, admin, productHandler.Delete)

	// Promociones (las activas y el descuento por producto son públicos,
	// el storefront los consulta sin sesión; la gestión es de ADMIN)
	promotions := api.Group("/promociones")
	promotionHandler := NewPromotionHandler(deps.PromotionUC)
	promotions.Get("/activas", promotionHandler.ListActive)
	promotions.Get("/descuento/:productId", promotionHandler.DiscountForProduct)
	promotions.Get("/", authed, admin, promotionHandler.List)
	promotions.Get("/:id", authed, admin, promotionHandler.GetByID)
	promotions.Post("/", authed, admin, promotionHandler.Create)
	promotions.Put("/:id", authed, admin, promotionHandler.Update)
	promotions.Delete("/:id", authed, admin, promotionHandler.Delete)
	promotions.Patch("/:id/toggle", authed, admin, promotionHandler.Toggle)

	// Ventas (registrar requiere sesión; consultas solo ADMIN)
	sales := api.Group("/ventas")
	saleHandler := NewSaleHandler(deps.SalesUC)
	sales.Post("/", authed, saleHandler.Create)
	sales.Get("/", authed, admin, saleHandler.List)
	sales.Get("/estadisticas", authed, admin, saleHandler.Stats)
	sales.Get("/rango", authed, admin, saleHandler.ByDateRange)
	sales.Get("/:id", authed, admin, saleHandler.GetByID)
	sales.Get("/:id/recibo", authed, admin, saleHandler.Receipt)
	sales.Patch("/:id/estado", authed, admin, saleHandler.UpdateStatus)

	// Carrito (público: el storefront agrega antes de autenticarse)
	cart := api.Group("/carrito")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.View)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.Add)
	cart.Delete("/items/:productId", cartHandler.Remove)

	// Eventos de stores por WebSocket
	wsHandler := NewWSHandler(deps.Bus)
	app.Use("/ws", wsHandler.Upgrade)
	app.Get("/ws", wsHandler.Stream())
}
