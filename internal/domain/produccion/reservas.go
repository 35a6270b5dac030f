package produccion

import (
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ConsumoArticulo es la vista de una línea de BOM que referencia al artículo
// consultado: cuánto consume cada prenda. Talla nil aplica a todas las tallas
// del registro; con Talla solo a las prendas de esa talla.
type ConsumoArticulo struct {
	Talla             *string
	CantidadPorPrenda decimal.Decimal
}

// RegistroConConsumo es un registro de producción junto con las líneas de BOM
// de su modelo que referencian al artículo consultado.
type RegistroConConsumo struct {
	RegistroID string
	Codigo     string
	Estado     string
	Prendas    []entity.CantidadTalla
	Consumos   []ConsumoArticulo
}

// ReservaLinea es el detalle por talla de lo reservado por un registro.
type ReservaLinea struct {
	Talla             string
	Prendas           decimal.Decimal
	CantidadPorPrenda decimal.Decimal
	Subtotal          decimal.Decimal
}

// ReservaRegistro es el subtotal reservado por un registro, con drill-down por línea.
type ReservaRegistro struct {
	RegistroID string
	Codigo     string
	Estado     string
	Cantidad   decimal.Decimal
	Lineas     []ReservaLinea
}

// ResumenReservas agrega lo reservado por todos los registros abiertos.
type ResumenReservas struct {
	TotalReservado decimal.Decimal
	Registros      []ReservaRegistro
}

// FiltrarAbiertos descarta los registros cuyo estado pertenece al conjunto terminal.
func FiltrarAbiertos(registros []RegistroConConsumo, terminales []string) []RegistroConConsumo {
	abiertos := make([]RegistroConConsumo, 0, len(registros))
	for _, r := range registros {
		if !EsTerminal(r.Estado, terminales) {
			abiertos = append(abiertos, r)
		}
	}
	return abiertos
}

// CalcularReservas computa, para cada registro abierto, la cantidad del
// artículo comprometida por su BOM: línea general (a todas las tallas) o línea
// por talla (solo a las prendas de esa talla). Lectura pura: sin efectos, el
// mismo estado de entrada produce siempre el mismo resumen.
func CalcularReservas(registros []RegistroConConsumo) ResumenReservas {
	resumen := ResumenReservas{TotalReservado: decimal.Zero}
	for _, r := range registros {
		reserva := ReservaRegistro{
			RegistroID: r.RegistroID,
			Codigo:     r.Codigo,
			Estado:     r.Estado,
			Cantidad:   decimal.Zero,
		}
		for _, c := range r.Consumos {
			for _, t := range r.Prendas {
				if c.Talla != nil && *c.Talla != t.Talla {
					continue
				}
				subtotal := t.Cantidad.Mul(c.CantidadPorPrenda)
				reserva.Lineas = append(reserva.Lineas, ReservaLinea{
					Talla:             t.Talla,
					Prendas:           t.Cantidad,
					CantidadPorPrenda: c.CantidadPorPrenda,
					Subtotal:          subtotal,
				})
				reserva.Cantidad = reserva.Cantidad.Add(subtotal)
			}
		}
		if len(reserva.Lineas) == 0 {
			continue
		}
		resumen.Registros = append(resumen.Registros, reserva)
		resumen.TotalReservado = resumen.TotalReservado.Add(reserva.Cantidad)
	}
	return resumen
}

// StockDisponible aplica stock_disponible = max(0, stock_actual - total_reservado).
// Nunca negativo aunque lo reservado exceda la existencia.
func StockDisponible(stockActual, totalReservado decimal.Decimal) decimal.Decimal {
	disponible := stockActual.Sub(totalReservado)
	if disponible.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return disponible
}
