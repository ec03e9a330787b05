package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cafeteriasoma/soma-api/internal/application/dto"
	"github.com/cafeteriasoma/soma-api/internal/application/usecase"
	"github.com/cafeteriasoma/soma-api/internal/domain"
)

// PromotionHandler maneja las peticiones HTTP de promociones.
type PromotionHandler struct {
	uc *usecase.PromotionUseCase
}

// NewPromotionHandler construye el handler.
func NewPromotionHandler(uc *usecase.PromotionUseCase) *PromotionHandler {
	return &PromotionHandler{uc: uc}
}

// List godoc
// @Summary      Listar promociones
// @Tags         promociones
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PromotionResponse
// @Router       /api/promociones [get]
func (h *PromotionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return promotionError(c, err)
	}
	return c.JSON(out)
}

// ListActive godoc
// @Summary      Promociones vigentes (storefront)
// @Tags         promociones
// @Produce      json
// @Success      200  {array}  dto.PromotionResponse
// @Router       /api/promociones/activas [get]
func (h *PromotionHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return promotionError(c, err)
	}
	return c.JSON(out)
}

// DiscountForProduct godoc
// @Summary      Descuento vigente para un producto
// @Tags         promociones
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.DiscountResponse
// @Router       /api/promociones/descuento/{productId} [get]
func (h *PromotionHandler) DiscountForProduct(c *fiber.Ctx) error {
	productID := c.Params("productId")
	discount, err := h.uc.DiscountForProduct(productID)
	if err != nil {
		return promotionError(c, err)
	}
	return c.JSON(dto.DiscountResponse{ProductID: productID, DiscountPercentage: discount})
}

// GetByID godoc
// @Summary      Obtener promoción por ID
// @Tags         promociones
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la promoción"
// @Success      200  {object}  dto.PromotionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/promociones/{id} [get]
func (h *PromotionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return promotionError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear promoción
// @Tags         promociones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePromotionRequest  true  "Datos de la promoción"
// @Success      201   {object}  dto.PromotionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/promociones [post]
func (h *PromotionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePromotionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return promotionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar promoción (parcial)
// @Tags         promociones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la promoción"
// @Param        body  body  dto.UpdatePromotionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PromotionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/promociones/{id} [put]
func (h *PromotionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePromotionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return promotionError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar promoción
// @Tags         promociones
// @Security     Bearer
// @Param        id  path  string  true  "ID de la promoción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/promociones/{id} [delete]
func (h *PromotionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return promotionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Toggle godoc
// @Summary      Activar/desactivar promoción
// @Tags         promociones
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la promoción"
// @Success      200  {object}  dto.PromotionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/promociones/{id}/toggle [patch]
func (h *PromotionHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.uc.ToggleActive(c.Params("id"))
	if err != nil {
		return promotionError(c, err)
	}
	return c.JSON(out)
}

func promotionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "promoción no encontrada"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
