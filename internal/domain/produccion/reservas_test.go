package produccion

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcastro/textil-api/internal/domain/entity"
)

var terminales = []string{entity.EstadoEntregado, entity.EstadoAnulado}

func tallaPtr(s string) *string { return &s }

func prendas(pares ...any) []entity.CantidadTalla {
	out := make([]entity.CantidadTalla, 0, len(pares)/2)
	for i := 0; i < len(pares); i += 2 {
		out = append(out, entity.CantidadTalla{
			Talla:    pares[i].(string),
			Cantidad: decimal.NewFromInt(int64(pares[i+1].(int))),
		})
	}
	return out
}

func TestCalcularReservas(t *testing.T) {
	t.Run("línea general multiplica todas las tallas", func(t *testing.T) {
		// 10 prendas S + 20 M, consumo general 1.5 por prenda -> 45
		registros := []RegistroConConsumo{{
			RegistroID: "r1", Codigo: "RC-001", Estado: entity.EstadoCortado,
			Prendas:  prendas("S", 10, "M", 20),
			Consumos: []ConsumoArticulo{{CantidadPorPrenda: decimal.NewFromFloat(1.5)}},
		}}
		resumen := CalcularReservas(registros)
		assert.True(t, resumen.TotalReservado.Equal(decimal.NewFromInt(45)))
		require.Len(t, resumen.Registros, 1)
		assert.Len(t, resumen.Registros[0].Lineas, 2)
	})

	t.Run("línea por talla solo aplica a su talla", func(t *testing.T) {
		registros := []RegistroConConsumo{{
			RegistroID: "r1", Codigo: "RC-001", Estado: entity.EstadoPendiente,
			Prendas: prendas("S", 10, "XL", 5),
			Consumos: []ConsumoArticulo{
				{Talla: tallaPtr("XL"), CantidadPorPrenda: decimal.NewFromInt(2)},
			},
		}}
		resumen := CalcularReservas(registros)
		assert.True(t, resumen.TotalReservado.Equal(decimal.NewFromInt(10)))
		require.Len(t, resumen.Registros[0].Lineas, 1)
		assert.Equal(t, "XL", resumen.Registros[0].Lineas[0].Talla)
	})

	t.Run("escenario: registro abierto reserva 30 de stock 50", func(t *testing.T) {
		registros := []RegistroConConsumo{{
			RegistroID: "r1", Codigo: "RC-010", Estado: entity.EstadoEnConfeccion,
			Prendas:  prendas("M", 30),
			Consumos: []ConsumoArticulo{{CantidadPorPrenda: decimal.NewFromInt(1)}},
		}}
		resumen := CalcularReservas(registros)
		assert.True(t, resumen.TotalReservado.Equal(decimal.NewFromInt(30)))

		stockActual := decimal.NewFromInt(50)
		assert.True(t, StockDisponible(stockActual, resumen.TotalReservado).Equal(decimal.NewFromInt(20)))
	})

	t.Run("disponible nunca negativo", func(t *testing.T) {
		disponible := StockDisponible(decimal.NewFromInt(10), decimal.NewFromInt(25))
		assert.True(t, disponible.Equal(decimal.Zero))
	})

	t.Run("registro sin líneas del artículo no aparece en el detalle", func(t *testing.T) {
		registros := []RegistroConConsumo{{
			RegistroID: "r1", Codigo: "RC-001", Estado: entity.EstadoPendiente,
			Prendas:  prendas("S", 10),
			Consumos: nil,
		}}
		resumen := CalcularReservas(registros)
		assert.True(t, resumen.TotalReservado.IsZero())
		assert.Empty(t, resumen.Registros)
	})

	t.Run("suma sobre varios registros", func(t *testing.T) {
		registros := []RegistroConConsumo{
			{
				RegistroID: "r1", Codigo: "RC-001", Estado: entity.EstadoCortado,
				Prendas:  prendas("S", 10),
				Consumos: []ConsumoArticulo{{CantidadPorPrenda: decimal.NewFromInt(2)}},
			},
			{
				RegistroID: "r2", Codigo: "RC-002", Estado: entity.EstadoPendiente,
				Prendas:  prendas("M", 5),
				Consumos: []ConsumoArticulo{{CantidadPorPrenda: decimal.NewFromInt(3)}},
			},
		}
		resumen := CalcularReservas(registros)
		assert.True(t, resumen.TotalReservado.Equal(decimal.NewFromInt(35)))
		assert.Len(t, resumen.Registros, 2)
	})

	t.Run("lectura idempotente", func(t *testing.T) {
		registros := []RegistroConConsumo{{
			RegistroID: "r1", Codigo: "RC-001", Estado: entity.EstadoCortado,
			Prendas:  prendas("S", 10, "M", 20, "L", 15),
			Consumos: []ConsumoArticulo{{CantidadPorPrenda: decimal.NewFromFloat(1.25)}},
		}}
		primera := CalcularReservas(registros)
		segunda := CalcularReservas(registros)
		assert.Equal(t, primera, segunda)
	})
}

func TestFiltrarAbiertos(t *testing.T) {
	registros := []RegistroConConsumo{
		{RegistroID: "r1", Estado: entity.EstadoCortado},
		{RegistroID: "r2", Estado: entity.EstadoEntregado},
		{RegistroID: "r3", Estado: entity.EstadoAnulado},
		{RegistroID: "r4", Estado: entity.EstadoPendiente},
	}
	abiertos := FiltrarAbiertos(registros, terminales)
	require.Len(t, abiertos, 2)
	assert.Equal(t, "r1", abiertos[0].RegistroID)
	assert.Equal(t, "r4", abiertos[1].RegistroID)
}
