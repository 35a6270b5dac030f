package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingreso es un lote de recepción: tupla inmutable cantidad/costo/fecha con un
// contador mutable de disponibilidad. Nunca se borra (trazabilidad de costos);
// CantidadDisponible solo decrece, por asignación FIFO de salidas.
// Invariante: 0 <= CantidadDisponible <= Cantidad.
type Ingreso struct {
	ID                 string
	ArticuloID         string
	Cantidad           decimal.Decimal
	CostoUnitario      decimal.Decimal
	CantidadDisponible decimal.Decimal
	Proveedor          string
	NumeroDocumento    string
	Observaciones      string
	Fecha              time.Time // orden de asignación; no se edita después de creado
	CreatedBy          string
}
