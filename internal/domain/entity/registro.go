package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del registro de producción (orden de corte).
const (
	EstadoPendiente    = "PENDIENTE"
	EstadoCortado      = "CORTADO"
	EstadoEnConfeccion = "EN_CONFECCION"
	EstadoAcabado      = "ACABADO"
	EstadoEntregado    = "ENTREGADO"
	EstadoAnulado      = "ANULADO"
)

// CantidadTalla es la cantidad de prendas de una talla dentro de un registro.
type CantidadTalla struct {
	Talla    string
	Cantidad decimal.Decimal
}

// Registro es una orden de corte/producción que avanza por un flujo de estados.
// Mientras su estado no sea terminal, su BOM reserva inventario (derivado,
// nunca persistido).
type Registro struct {
	ID            string
	Codigo        string // único
	ModeloID      string
	Estado        string
	Tallas        []CantidadTalla
	Observaciones string
	Fecha         time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CreatedBy     string
}

// TotalPrendas suma las prendas de todas las tallas.
func (r *Registro) TotalPrendas() decimal.Decimal {
	total := decimal.Zero
	for _, t := range r.Tallas {
		total = total.Add(t.Cantidad)
	}
	return total
}
