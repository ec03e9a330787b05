package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cafeteriasoma/soma-api/internal/application/dto"
	"github.com/cafeteriasoma/soma-api/internal/application/usecase"
	"github.com/cafeteriasoma/soma-api/internal/domain"
)

// CartHandler maneja las peticiones HTTP del carrito de compras.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// View godoc
// @Summary      Ver carrito con conteo y total
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrito [get]
func (h *CartHandler) View(c *fiber.Ctx) error {
	out, err := h.uc.View()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar ítem (mismo productId suma cantidades)
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Ítem a agregar"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/carrito/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId y quantity >= 1 son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar línea del carrito
// @Tags         carrito
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrito/items/{productId} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	out, err := h.uc.Remove(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrito [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	out, err := h.uc.Clear()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
