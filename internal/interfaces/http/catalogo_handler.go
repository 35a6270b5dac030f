package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmcastro/textil-api/internal/application/catalogo"
	"github.com/jmcastro/textil-api/internal/application/dto"
)

// CatalogoHandler maneja los cinco catálogos (marcas, telas, colores, tallas,
// hilos) bajo una sola ruta parametrizada por tipo.
type CatalogoHandler struct {
	uc *catalogo.UseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *catalogo.UseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// List godoc
// @Summary      Listar ítems de un catálogo
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Param        tipo  path  string  true  "marcas|telas|colores|tallas|hilos"
// @Success      200  {array}   dto.ItemCatalogoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogos/{tipo} [get]
func (h *CatalogoHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.Params("tipo"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Crear ítem de catálogo
// @Tags         catalogos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        tipo  path  string                    true  "marcas|telas|colores|tallas|hilos"
// @Param        body  body  dto.ItemCatalogoRequest  true  "nombre"
// @Success      201   {object}  dto.ItemCatalogoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogos/{tipo} [post]
func (h *CatalogoHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemCatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), c.Params("tipo"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update godoc
// @Summary      Renombrar ítem de catálogo
// @Tags         catalogos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        tipo  path  string                    true  "marcas|telas|colores|tallas|hilos"
// @Param        id    path  string                    true  "ID del ítem"
// @Param        body  body  dto.ItemCatalogoRequest  true  "nombre"
// @Success      200   {object}  dto.ItemCatalogoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalogos/{tipo}/{id} [put]
func (h *CatalogoHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemCatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Context(), c.Params("tipo"), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar ítem de catálogo
// @Tags         catalogos
// @Security     Bearer
// @Param        tipo  path  string  true  "marcas|telas|colores|tallas|hilos"
// @Param        id    path  string  true  "ID del ítem"
// @Success      204   "sin contenido"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalogos/{tipo}/{id} [delete]
func (h *CatalogoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("tipo"), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
