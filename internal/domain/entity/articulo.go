package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Articulo representa un ítem de inventario (tela, hilo, insumo).
// StockActual es la columna materializada que leen los consumidores externos;
// se actualiza en la misma transacción que cada ingreso, salida o ajuste.
type Articulo struct {
	ID              string
	Codigo          string // único
	Nombre          string
	Categoria       string // tela, hilo, boton, cierre, etiqueta, otro
	UnidadMedida    string // m, kg, und, cono
	StockMinimo     decimal.Decimal
	ControlPorRollos bool // true: la existencia física se maneja por rollos individuales
	StockActual     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
