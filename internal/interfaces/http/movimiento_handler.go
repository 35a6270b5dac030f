package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/application/produccion"
)

// MovimientoHandler maneja las entregas a servicios externos (corte,
// confección, acabado) y sus devoluciones.
type MovimientoHandler struct {
	uc *produccion.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *produccion.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrega de prendas a un servicio externo
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovimientoRequest  true  "movimiento"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// RegistrarDevolucion godoc
// @Summary      Marcar la devolución de una entrega
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "ya devuelto"
// @Router       /api/movimientos/{id}/devolucion [put]
func (h *MovimientoHandler) RegistrarDevolucion(c *fiber.Ctx) error {
	resp, err := h.uc.RegistrarDevolucion(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// ListByRegistro godoc
// @Summary      Movimientos de un registro de producción
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        registro_id  query  string  true  "ID del registro"
// @Success      200  {array}   dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) ListByRegistro(c *fiber.Ctx) error {
	registroID := c.Query("registro_id")
	if registroID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "registro_id requerido"})
	}
	resp, err := h.uc.ListByRegistro(c.Context(), registroID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}
