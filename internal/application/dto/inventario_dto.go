package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RolloInput descripción de un rollo dentro de un ingreso de tela.
type RolloInput struct {
	Numero  int             `json:"numero"`
	Metraje decimal.Decimal `json:"metraje"`
	Ancho   decimal.Decimal `json:"ancho"`
	Tono    string          `json:"tono"`
}

// RegistrarIngresoRequest body para POST /api/inventario/ingresos.
// Rollos solo aplica (y es obligatorio que sus metrajes sumen cantidad)
// cuando el artículo se controla por rollos.
type RegistrarIngresoRequest struct {
	ArticuloID      string          `json:"articulo_id"`
	Cantidad        decimal.Decimal `json:"cantidad"`
	CostoUnitario   decimal.Decimal `json:"costo_unitario"`
	Proveedor       string          `json:"proveedor"`
	NumeroDocumento string          `json:"numero_documento"`
	Observaciones   string          `json:"observaciones"`
	Rollos          []RolloInput    `json:"rollos,omitempty"`
}

// IngresoResponse representación de un lote.
type IngresoResponse struct {
	ID                 string          `json:"id"`
	ArticuloID         string          `json:"articulo_id"`
	Cantidad           decimal.Decimal `json:"cantidad"`
	CostoUnitario      decimal.Decimal `json:"costo_unitario"`
	CantidadDisponible decimal.Decimal `json:"cantidad_disponible"`
	Proveedor          string          `json:"proveedor"`
	NumeroDocumento    string          `json:"numero_documento"`
	Observaciones      string          `json:"observaciones"`
	Fecha              time.Time       `json:"fecha"`
}

// RolloResponse representación de un rollo.
type RolloResponse struct {
	ID                string          `json:"id"`
	ArticuloID        string          `json:"articulo_id"`
	IngresoID         string          `json:"ingreso_id"`
	Numero            int             `json:"numero"`
	MetrajeTotal      decimal.Decimal `json:"metraje_total"`
	MetrajeDisponible decimal.Decimal `json:"metraje_disponible"`
	Ancho             decimal.Decimal `json:"ancho"`
	Tono              string          `json:"tono"`
	Activo            bool            `json:"activo"`
}

// RegistrarSalidaRequest body para POST /api/inventario/salidas.
// RolloID opcional fija un rollo concreto (solo artículos con control por rollos).
type RegistrarSalidaRequest struct {
	ArticuloID    string          `json:"articulo_id"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	RegistroID    *string         `json:"registro_id,omitempty"`
	RolloID       *string         `json:"rollo_id,omitempty"`
	Observaciones string          `json:"observaciones"`
}

// DetalleFifoDTO línea del desglose FIFO de una salida.
type DetalleFifoDTO struct {
	IngresoID     string          `json:"ingreso_id"`
	RolloID       string          `json:"rollo_id,omitempty"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
}

// SalidaResponse representación de una salida con su desglose y costo.
type SalidaResponse struct {
	ID            string           `json:"id"`
	ArticuloID    string           `json:"articulo_id"`
	Cantidad      decimal.Decimal  `json:"cantidad"`
	RegistroID    *string          `json:"registro_id,omitempty"`
	CostoTotal    decimal.Decimal  `json:"costo_total"`
	DetalleFifo   []DetalleFifoDTO `json:"detalle_fifo"`
	Observaciones string           `json:"observaciones"`
	Fecha         time.Time        `json:"fecha"`
}

// RegistrarAjusteRequest body para POST /api/inventario/ajustes.
type RegistrarAjusteRequest struct {
	ArticuloID    string          `json:"articulo_id"`
	Tipo          string          `json:"tipo"` // entrada | salida
	Cantidad      decimal.Decimal `json:"cantidad"`
	Motivo        string          `json:"motivo"`
	Observaciones string          `json:"observaciones"`
}

// AjusteResponse representación de un ajuste.
type AjusteResponse struct {
	ID            string          `json:"id"`
	ArticuloID    string          `json:"articulo_id"`
	Tipo          string          `json:"tipo"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	Motivo        string          `json:"motivo"`
	Observaciones string          `json:"observaciones"`
	Fecha         time.Time       `json:"fecha"`
}

// ReservaLineaDTO detalle por talla de lo reservado por un registro.
type ReservaLineaDTO struct {
	Talla             string          `json:"talla"`
	Prendas           decimal.Decimal `json:"prendas"`
	CantidadPorPrenda decimal.Decimal `json:"cantidad_por_prenda"`
	Subtotal          decimal.Decimal `json:"subtotal"`
}

// ReservaRegistroDTO subtotal reservado por un registro abierto.
type ReservaRegistroDTO struct {
	RegistroID string            `json:"registro_id"`
	Codigo     string            `json:"codigo"`
	Estado     string            `json:"estado"`
	Cantidad   decimal.Decimal   `json:"cantidad"`
	Lineas     []ReservaLineaDTO `json:"lineas"`
}

// ReservasResponse detalle completo de reservas de un artículo.
type ReservasResponse struct {
	ArticuloID      string               `json:"articulo_id"`
	Codigo          string               `json:"codigo"`
	Nombre          string               `json:"nombre"`
	StockActual     decimal.Decimal      `json:"stock_actual"`
	TotalReservado  decimal.Decimal      `json:"total_reservado"`
	StockDisponible decimal.Decimal      `json:"stock_disponible"`
	Registros       []ReservaRegistroDTO `json:"registros"`
}
