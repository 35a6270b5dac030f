package inventory

import (
	"sort"
	"time"

	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Lote es la vista mínima que necesita el asignador: funciona igual para
// ingresos (lotes de recepción) y para rollos individuales.
type Lote struct {
	ID            string
	Disponible    decimal.Decimal
	CostoUnitario decimal.Decimal
	Fecha         time.Time
	Orden         int // desempate estable cuando dos lotes comparten fecha
}

// Consumo es una línea del desglose: cuánto se tomó de qué lote y a qué costo.
type Consumo struct {
	LoteID        string
	Cantidad      decimal.Decimal
	CostoUnitario decimal.Decimal
}

// Asignacion es el resultado de una asignación FIFO completa.
type Asignacion struct {
	Consumos   []Consumo
	CostoTotal decimal.Decimal
}

// Asignar recorre los lotes del más antiguo al más reciente consumiendo
// disponibilidad hasta cubrir la cantidad solicitada. Todo o nada: si la
// disponibilidad total no alcanza, retorna StockInsuficienteError sin desglose
// parcial. Determinista: para un mismo estado del libro, el desglose y el costo
// quedan fijados por el orden de recepción (Fecha, luego Orden).
func Asignar(articuloCodigo string, solicitada decimal.Decimal, lotes []Lote) (*Asignacion, error) {
	if !solicitada.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	ordenados := make([]Lote, len(lotes))
	copy(ordenados, lotes)
	sort.SliceStable(ordenados, func(i, j int) bool {
		if ordenados[i].Fecha.Equal(ordenados[j].Fecha) {
			return ordenados[i].Orden < ordenados[j].Orden
		}
		return ordenados[i].Fecha.Before(ordenados[j].Fecha)
	})

	disponible := decimal.Zero
	for _, l := range ordenados {
		disponible = disponible.Add(l.Disponible)
	}
	if disponible.LessThan(solicitada) {
		return nil, domain.NewStockInsuficiente(articuloCodigo, solicitada, disponible)
	}

	restante := solicitada
	asignacion := &Asignacion{CostoTotal: decimal.Zero}
	for _, l := range ordenados {
		if restante.IsZero() {
			break
		}
		if !l.Disponible.GreaterThan(decimal.Zero) {
			continue
		}
		tomar := decimal.Min(restante, l.Disponible)
		asignacion.Consumos = append(asignacion.Consumos, Consumo{
			LoteID:        l.ID,
			Cantidad:      tomar,
			CostoUnitario: l.CostoUnitario,
		})
		asignacion.CostoTotal = asignacion.CostoTotal.Add(tomar.Mul(l.CostoUnitario))
		restante = restante.Sub(tomar)
	}
	return asignacion, nil
}
