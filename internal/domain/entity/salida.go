package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleFifo es una línea del desglose de asignación de una salida:
// de qué ingreso se tomó, cuánto y a qué costo unitario.
type DetalleFifo struct {
	IngresoID     string
	RolloID       string // vacío si el artículo no se controla por rollos
	Cantidad      decimal.Decimal
	CostoUnitario decimal.Decimal
}

// Salida registra un retiro de inventario consumido vía FIFO.
// Inmutable una vez creada: una reversión es un ajuste compensatorio nuevo.
// CostoTotal == sum(det.Cantidad * det.CostoUnitario).
type Salida struct {
	ID            string
	ArticuloID    string
	Cantidad      decimal.Decimal
	RegistroID    *string // opcional: registro de producción destino
	CostoTotal    decimal.Decimal
	Detalle       []DetalleFifo
	Observaciones string
	Fecha         time.Time
	CreatedBy     string
}
