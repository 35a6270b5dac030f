package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/application/inventory"
)

// ArticuloHandler maneja las peticiones HTTP de artículos (protegido).
type ArticuloHandler struct {
	uc       *inventory.ArticuloUseCase
	reservas *inventory.ReservasUseCase
	alertas  *inventory.AlertasUseCase
}

// NewArticuloHandler construye el handler.
func NewArticuloHandler(uc *inventory.ArticuloUseCase, reservas *inventory.ReservasUseCase, alertas *inventory.AlertasUseCase) *ArticuloHandler {
	return &ArticuloHandler{uc: uc, reservas: reservas, alertas: alertas}
}

// Create godoc
// @Summary      Crear artículo
// @Tags         articulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticuloRequest  true  "codigo, nombre, categoria, unidad_medida, stock_minimo, control_por_rollos"
// @Success      201   {object}  dto.ArticuloResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/articulos [post]
func (h *ArticuloHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticuloRequest
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
// @Summary      Listar artículos con disponibilidad derivada
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "por página (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.ArticuloListResponse
// @Router       /api/articulos [get]
func (h *ArticuloHandler) List(c *fiber.Ctx) error {
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

// GetDetalle godoc
// @Summary      Detalle de artículo con lotes y rollos
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ArticuloDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [get]
func (h *ArticuloHandler) GetDetalle(c *fiber.Ctx) error {
	resp, err := h.uc.GetDetalle(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar artículo (stock no editable)
// @Tags         articulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del artículo"
// @Param        body  body  dto.UpdateArticuloRequest  true  "campos editables"
// @Success      200   {object}  dto.ArticuloResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [put]
func (h *ArticuloHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// Reservas godoc
// @Summary      Reservas derivadas del artículo con drill-down por registro
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ReservasResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articulos/{id}/reservas [get]
func (h *ArticuloHandler) Reservas(c *fiber.Ctx) error {
	resp, err := h.reservas.Detalle(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// Cuadre godoc
// @Summary      Cuadre del agregado contra el libro de lotes
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.CuadreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articulos/{id}/cuadre [get]
func (h *ArticuloHandler) Cuadre(c *fiber.Ctx) error {
	resp, err := h.reservas.Cuadre(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(resp)
}

// Alertas godoc
// @Summary      Artículos en o bajo su stock mínimo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlertaStockDTO
// @Router       /api/inventario/alertas [get]
func (h *ArticuloHandler) Alertas(c *fiber.Ctx) error {
	alertas, err := h.alertas.ListAlertas(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(alertas), "alertas": alertas})
}
