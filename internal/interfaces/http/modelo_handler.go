package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/application/produccion"
)

// ModeloHandler maneja los modelos de producción y su lista de consumos.
type ModeloHandler struct {
	uc *produccion.ModeloUseCase
}

// NewModeloHandler construye el handler.
func NewModeloHandler(uc *produccion.ModeloUseCase) *ModeloHandler {
	return &ModeloHandler{uc: uc}
}

// Create godoc
// @Summary      Crear modelo con su lista de consumos
// @Tags         modelos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateModeloRequest  true  "modelo"
// @Success      201   {object}  dto.ModeloResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/modelos [post]
func (h *ModeloHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateModeloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar modelos
// @Tags         modelos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "por página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.ModeloResponse
// @Router       /api/modelos [get]
func (h *ModeloHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Detalle de un modelo con sus consumos
// @Tags         modelos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del modelo"
// @Success      200  {object}  dto.ModeloResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/modelos/{id} [get]
func (h *ModeloHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar modelo; consumos no nulos reemplazan la lista completa
// @Tags         modelos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del modelo"
// @Param        body  body  dto.UpdateModeloRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ModeloResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/modelos/{id} [put]
func (h *ModeloHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateModeloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}
