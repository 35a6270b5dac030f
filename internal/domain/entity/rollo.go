package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rollo es una unidad física individual dentro de un artículo controlado por
// rollos (tela). Misma disciplina de asignación que Ingreso, pero direccionable:
// una salida puede fijar un rollo concreto o dejar que el asignador tome el
// rollo activo más antiguo.
type Rollo struct {
	ID                string
	ArticuloID        string
	IngresoID         string // lote de origen; los descuentos se reflejan también ahí
	Numero            int
	MetrajeTotal      decimal.Decimal
	MetrajeDisponible decimal.Decimal
	Ancho             decimal.Decimal
	Tono              string
	Activo            bool
	CreatedAt         time.Time
}
