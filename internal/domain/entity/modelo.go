package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsumoModelo es una línea de la lista de materiales (BOM) de un modelo:
// cuánto de un artículo consume cada prenda. Talla nil aplica a todas las
// tallas; con Talla la línea solo aplica a esa talla del registro.
type ConsumoModelo struct {
	ID                 string
	ModeloID           string
	ArticuloID         string
	CantidadPorPrenda  decimal.Decimal
	Talla              *string
	Observaciones      string
}

// Modelo es una referencia de producción (prenda) con su BOM.
type Modelo struct {
	ID        string
	Codigo    string // único
	Nombre    string
	MarcaID   string
	TelaID    string
	Consumos  []ConsumoModelo
	CreatedAt time.Time
	UpdatedAt time.Time
}
