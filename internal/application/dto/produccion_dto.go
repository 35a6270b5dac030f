package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsumoInput línea de BOM en creación/actualización de modelos.
type ConsumoInput struct {
	ArticuloID        string          `json:"articulo_id"`
	CantidadPorPrenda decimal.Decimal `json:"cantidad_por_prenda"`
	Talla             *string         `json:"talla,omitempty"`
	Observaciones     string          `json:"observaciones"`
}

// CreateModeloRequest body para POST /api/modelos.
type CreateModeloRequest struct {
	Codigo   string         `json:"codigo"`
	Nombre   string         `json:"nombre"`
	MarcaID  string         `json:"marca_id"`
	TelaID   string         `json:"tela_id"`
	Consumos []ConsumoInput `json:"consumos"`
}

// UpdateModeloRequest body para PUT /api/modelos/:id. Consumos no nil
// reemplaza el BOM completo.
type UpdateModeloRequest struct {
	Nombre   *string        `json:"nombre,omitempty"`
	MarcaID  *string        `json:"marca_id,omitempty"`
	TelaID   *string        `json:"tela_id,omitempty"`
	Consumos []ConsumoInput `json:"consumos,omitempty"`
}

// ConsumoResponse línea de BOM.
type ConsumoResponse struct {
	ID                string          `json:"id"`
	ArticuloID        string          `json:"articulo_id"`
	CantidadPorPrenda decimal.Decimal `json:"cantidad_por_prenda"`
	Talla             *string         `json:"talla,omitempty"`
	Observaciones     string          `json:"observaciones"`
}

// ModeloResponse representación de un modelo con su BOM.
type ModeloResponse struct {
	ID        string            `json:"id"`
	Codigo    string            `json:"codigo"`
	Nombre    string            `json:"nombre"`
	MarcaID   string            `json:"marca_id"`
	TelaID    string            `json:"tela_id"`
	Consumos  []ConsumoResponse `json:"consumos"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// TallaInput cantidad de prendas por talla de un registro.
type TallaInput struct {
	Talla    string          `json:"talla"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// CreateRegistroRequest body para POST /api/registros.
type CreateRegistroRequest struct {
	Codigo        string       `json:"codigo"`
	ModeloID      string       `json:"modelo_id"`
	Tallas        []TallaInput `json:"tallas"`
	Observaciones string       `json:"observaciones"`
	Fecha         *time.Time   `json:"fecha,omitempty"`
}

// CambiarEstadoRequest body para PUT /api/registros/:id/estado.
type CambiarEstadoRequest struct {
	Estado string `json:"estado"`
}

// RegistroResponse representación de un registro.
type RegistroResponse struct {
	ID            string          `json:"id"`
	Codigo        string          `json:"codigo"`
	ModeloID      string          `json:"modelo_id"`
	Estado        string          `json:"estado"`
	Tallas        []TallaInput    `json:"tallas"`
	TotalPrendas  decimal.Decimal `json:"total_prendas"`
	Observaciones string          `json:"observaciones"`
	Fecha         time.Time       `json:"fecha"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateMovimientoRequest body para POST /api/movimientos.
type CreateMovimientoRequest struct {
	RegistroID        string          `json:"registro_id"`
	Etapa             string          `json:"etapa"`
	TrabajadorOrigen  string          `json:"trabajador_origen"`
	TrabajadorDestino string          `json:"trabajador_destino"`
	Cantidad          decimal.Decimal `json:"cantidad"`
	PrecioUnitario    decimal.Decimal `json:"precio_unitario"`
	Observaciones     string          `json:"observaciones"`
}

// MovimientoResponse representación de un movimiento de servicio.
type MovimientoResponse struct {
	ID                string          `json:"id"`
	RegistroID        string          `json:"registro_id"`
	Etapa             string          `json:"etapa"`
	TrabajadorOrigen  string          `json:"trabajador_origen"`
	TrabajadorDestino string          `json:"trabajador_destino"`
	Cantidad          decimal.Decimal `json:"cantidad"`
	PrecioUnitario    decimal.Decimal `json:"precio_unitario"`
	Observaciones     string          `json:"observaciones"`
	FechaEntrega      time.Time       `json:"fecha_entrega"`
	FechaDevolucion   *time.Time      `json:"fecha_devolucion,omitempty"`
}
