package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovimientoServicio registra el paso de prendas de un registro entre
// trabajadores/talleres por etapa de producción (corte, confección, acabado).
type MovimientoServicio struct {
	ID                 string
	RegistroID         string
	Etapa              string // CORTE, CONFECCION, ACABADO
	TrabajadorOrigen   string
	TrabajadorDestino  string
	Cantidad           decimal.Decimal
	PrecioUnitario     decimal.Decimal // tarifa pactada del servicio por prenda
	Observaciones      string
	FechaEntrega       time.Time
	FechaDevolucion    *time.Time
	CreatedAt          time.Time
	CreatedBy          string
}
