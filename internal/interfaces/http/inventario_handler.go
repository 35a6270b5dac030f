package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/application/inventory"
)

// InventarioHandler maneja ingresos, salidas y ajustes de stock.
type InventarioHandler struct {
	ingresoUC *inventory.RegistrarIngresoUseCase
	salidaUC  *inventory.RegistrarSalidaUseCase
	ajusteUC  *inventory.RegistrarAjusteUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(
	ingresoUC *inventory.RegistrarIngresoUseCase,
	salidaUC *inventory.RegistrarSalidaUseCase,
	ajusteUC *inventory.RegistrarAjusteUseCase,
) *InventarioHandler {
	return &InventarioHandler{ingresoUC: ingresoUC, salidaUC: salidaUC, ajusteUC: ajusteUC}
}

// RegistrarIngreso godoc
// @Summary      Registrar ingreso (crea lote; rollos opcionales para telas)
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarIngresoRequest  true  "ingreso"
// @Success      201   {object}  dto.IngresoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/ingresos [post]
func (h *InventarioHandler) RegistrarIngreso(c *fiber.Ctx) error {
	var in dto.RegistrarIngresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.ingresoUC.RegistrarIngreso(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// RegistrarSalida godoc
// @Summary      Registrar salida con consumo FIFO
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarSalidaRequest  true  "salida"
// @Success      201   {object}  dto.SalidaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK incluye requested y available"
// @Router       /api/inventario/salidas [post]
func (h *InventarioHandler) RegistrarSalida(c *fiber.Ctx) error {
	var in dto.RegistrarSalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.salidaUC.RegistrarSalida(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListSalidas godoc
// @Summary      Historial de salidas de un artículo con desglose FIFO
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        articulo_id  query  string  true   "ID del artículo"
// @Param        limit        query  int     false  "por página"
// @Param        offset       query  int     false  "desplazamiento"
// @Success      200  {array}   dto.SalidaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/salidas [get]
func (h *InventarioHandler) ListSalidas(c *fiber.Ctx) error {
	articuloID := c.Query("articulo_id")
	if articuloID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "articulo_id requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	resp, err := h.salidaUC.ListByArticulo(articuloID, page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// RegistrarAjuste godoc
// @Summary      Registrar ajuste manual sobre el agregado (no toca lotes)
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarAjusteRequest  true  "ajuste"
// @Success      201   {object}  dto.AjusteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/ajustes [post]
func (h *InventarioHandler) RegistrarAjuste(c *fiber.Ctx) error {
	var in dto.RegistrarAjusteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.ajusteUC.RegistrarAjuste(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListAjustes godoc
// @Summary      Historial de ajustes de un artículo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        articulo_id  query  string  true   "ID del artículo"
// @Param        limit        query  int     false  "por página"
// @Param        offset       query  int     false  "desplazamiento"
// @Success      200  {array}   dto.AjusteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/ajustes [get]
func (h *InventarioHandler) ListAjustes(c *fiber.Ctx) error {
	articuloID := c.Query("articulo_id")
	if articuloID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "articulo_id requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	resp, err := h.ajusteUC.ListByArticulo(articuloID, page.Limit, page.Offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}
