package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ajuste manual.
const (
	AjusteEntrada = "entrada"
	AjusteSalida  = "salida"
)

// Ajuste es una corrección manual de stock. No toca el libro de ingresos:
// solo el agregado del artículo (ver reporte de cuadre para el descuadre
// resultante en artículos con lotes).
type Ajuste struct {
	ID            string
	ArticuloID    string
	Tipo          string // entrada | salida
	Cantidad      decimal.Decimal
	Motivo        string
	Observaciones string
	Fecha         time.Time
	CreatedBy     string
}
