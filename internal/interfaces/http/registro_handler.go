package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/application/produccion"
)

// RegistroHandler maneja los registros de producción, su flujo de estados y la
// orden de corte en PDF.
type RegistroHandler struct {
	uc      *produccion.RegistroUseCase
	ordenUC *produccion.OrdenCorteUseCase
}

// NewRegistroHandler construye el handler.
func NewRegistroHandler(uc *produccion.RegistroUseCase, ordenUC *produccion.OrdenCorteUseCase) *RegistroHandler {
	return &RegistroHandler{uc: uc, ordenUC: ordenUC}
}

// Create godoc
// @Summary      Crear registro de producción (nace en PENDIENTE)
// @Tags         registros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRegistroRequest  true  "registro"
// @Success      201   {object}  dto.RegistroResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/registros [post]
func (h *RegistroHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar registros, con filtro opcional por estado
// @Tags         registros
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "PENDIENTE|CORTADO|EN_CONFECCION|ACABADO|ENTREGADO|ANULADO"
// @Param        limit   query  int     false  "por página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}   dto.RegistroResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/registros [get]
func (h *RegistroHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(c.Context(), c.Query("estado"), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Detalle de un registro con sus tallas
// @Tags         registros
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  dto.RegistroResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/registros/{id} [get]
func (h *RegistroHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// CambiarEstado godoc
// @Summary      Avanzar o anular el estado del registro
// @Tags         registros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del registro"
// @Param        body  body  dto.CambiarEstadoRequest  true  "nuevo estado"
// @Success      200   {object}  dto.RegistroResponse
// @Failure      400   {object}  dto.ErrorResponse  "estado desconocido"
// @Failure      409   {object}  dto.ErrorResponse  "transición no permitida"
// @Router       /api/registros/{id}/estado [put]
func (h *RegistroHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CambiarEstado(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// OrdenCorte godoc
// @Summary      Orden de corte del registro en PDF
// @Tags         registros
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/registros/{id}/orden-corte.pdf [get]
func (h *RegistroHandler) OrdenCorte(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.ordenUC.Generar(c.Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="orden-corte-%s.pdf"`, id))
	return c.Send(pdfBytes)
}
