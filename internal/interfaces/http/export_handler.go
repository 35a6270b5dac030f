package http

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jmcastro/textil-api/internal/application/export"
)

// ExportHandler expone las descargas CSV por tabla y el respaldo JSON
// completo. Solo administradores.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// ExportCSV godoc
// @Summary      Exportar una tabla en CSV
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        tabla  path  string  true  "articulos|ingresos|salidas|ajustes|registros"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/export/{tabla}.csv [get]
func (h *ExportHandler) ExportCSV(c *fiber.Ctx) error {
	tabla := c.Params("tabla")
	var buf bytes.Buffer
	if err := h.uc.ExportCSV(c.Context(), tabla, &buf); err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s-%s.csv"`, tabla, time.Now().Format("2006-01-02")))
	return c.Send(buf.Bytes())
}

// ExportBackup godoc
// @Summary      Respaldo JSON completo del sistema
// @Tags         export
// @Security     Bearer
// @Produce      json
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/export/backup.json [get]
func (h *ExportHandler) ExportBackup(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.ExportBackupJSON(c.Context(), &buf); err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="backup-%s.json"`, time.Now().Format("2006-01-02")))
	return c.Send(buf.Bytes())
}
