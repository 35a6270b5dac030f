package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/produccion"
)

func d(v string) decimal.Decimal {
	out, _ := decimal.NewFromString(v)
	return out
}

func TestRegistrarIngreso(t *testing.T) {
	ctx := context.Background()

	t.Run("crea lote y suma al stock", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", false, 10)
		uc := NewRegistrarIngresoUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s})

		resp, err := uc.RegistrarIngreso(ctx, "user-1", dto.RegistrarIngresoRequest{
			ArticuloID:    "art-1",
			Cantidad:      d("30"),
			CostoUnitario: d("5.00"),
			Proveedor:     "Textiles SAC",
		})
		require.NoError(t, err)
		assert.True(t, resp.CantidadDisponible.Equal(d("30")))
		assert.True(t, s.articulos["art-1"].StockActual.Equal(d("40")))
		require.Len(t, s.ingresos, 1)
		assert.True(t, s.ingresos[0].CantidadDisponible.Equal(s.ingresos[0].Cantidad))
	})

	t.Run("rechaza cantidad no positiva", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", false, 10)
		uc := NewRegistrarIngresoUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s})

		_, err := uc.RegistrarIngreso(ctx, "user-1", dto.RegistrarIngresoRequest{
			ArticuloID:    "art-1",
			Cantidad:      decimal.Zero,
			CostoUnitario: d("5.00"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, s.ingresos)
	})

	t.Run("articulo inexistente", func(t *testing.T) {
		s := newFakeStore()
		uc := NewRegistrarIngresoUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s})

		_, err := uc.RegistrarIngreso(ctx, "user-1", dto.RegistrarIngresoRequest{
			ArticuloID: "no-existe",
			Cantidad:   d("10"),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ingreso con rollos da de alta cada rollo", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", true, 0)
		uc := NewRegistrarIngresoUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s})

		_, err := uc.RegistrarIngreso(ctx, "user-1", dto.RegistrarIngresoRequest{
			ArticuloID:    "art-1",
			Cantidad:      d("50"),
			CostoUnitario: d("8.50"),
			Rollos: []dto.RolloInput{
				{Numero: 1, Metraje: d("28"), Ancho: d("1.50"), Tono: "A"},
				{Numero: 2, Metraje: d("22"), Ancho: d("1.50"), Tono: "A"},
			},
		})
		require.NoError(t, err)
		require.Len(t, s.rollos, 2)
		assert.True(t, s.rollos[0].MetrajeDisponible.Equal(d("28")))
		assert.Equal(t, s.ingresos[0].ID, s.rollos[1].IngresoID)
		assert.True(t, s.articulos["art-1"].StockActual.Equal(d("50")))
	})

	t.Run("rollos que no suman la cantidad se rechazan", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", true, 0)
		uc := NewRegistrarIngresoUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s})

		_, err := uc.RegistrarIngreso(ctx, "user-1", dto.RegistrarIngresoRequest{
			ArticuloID:    "art-1",
			Cantidad:      d("50"),
			CostoUnitario: d("8.50"),
			Rollos:        []dto.RolloInput{{Numero: 1, Metraje: d("30")}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, s.rollos)
	})

	t.Run("rollos en articulo sin control por rollos se rechazan", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "HILO-001", false, 0)
		uc := NewRegistrarIngresoUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s})

		_, err := uc.RegistrarIngreso(ctx, "user-1", dto.RegistrarIngresoRequest{
			ArticuloID:    "art-1",
			Cantidad:      d("10"),
			CostoUnitario: d("2"),
			Rollos:        []dto.RolloInput{{Numero: 1, Metraje: d("10")}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func seedIngreso(s *fakeStore, id, articuloID string, cantidad, costo string, fecha time.Time) *entity.Ingreso {
	i := &entity.Ingreso{
		ID:                 id,
		ArticuloID:         articuloID,
		Cantidad:           d(cantidad),
		CostoUnitario:      d(costo),
		CantidadDisponible: d(cantidad),
		Fecha:              fecha,
	}
	s.ingresos = append(s.ingresos, i)
	return i
}

func TestRegistrarSalida(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	newUC := func(s *fakeStore) *RegistrarSalidaUseCase {
		return NewRegistrarSalidaUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s}, &fakeRegistroRepo{s}, &fakeSalidaRepo{s})
	}

	t.Run("consume del lote mas antiguo primero", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", false, 50)
		seedIngreso(s, "ing-1", "art-1", "30", "5.00", base)
		seedIngreso(s, "ing-2", "art-1", "20", "8.00", base.Add(24*time.Hour))

		resp, err := newUC(s).RegistrarSalida(ctx, "user-1", dto.RegistrarSalidaRequest{
			ArticuloID: "art-1",
			Cantidad:   d("20"),
		})
		require.NoError(t, err)
		require.Len(t, resp.DetalleFifo, 1)
		assert.Equal(t, "ing-1", resp.DetalleFifo[0].IngresoID)
		assert.True(t, resp.CostoTotal.Equal(d("100")))
		assert.True(t, s.ingresos[0].CantidadDisponible.Equal(d("10")))
		assert.True(t, s.ingresos[1].CantidadDisponible.Equal(d("20")))
		assert.True(t, s.articulos["art-1"].StockActual.Equal(d("30")))
	})

	t.Run("salida que cruza lotes desglosa por lote", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", false, 50)
		seedIngreso(s, "ing-1", "art-1", "30", "5.00", base)
		seedIngreso(s, "ing-2", "art-1", "20", "8.00", base.Add(24*time.Hour))

		resp, err := newUC(s).RegistrarSalida(ctx, "user-1", dto.RegistrarSalidaRequest{
			ArticuloID: "art-1",
			Cantidad:   d("40"),
		})
		require.NoError(t, err)
		require.Len(t, resp.DetalleFifo, 2)
		assert.True(t, resp.DetalleFifo[0].Cantidad.Equal(d("30")))
		assert.True(t, resp.DetalleFifo[1].Cantidad.Equal(d("10")))
		// 30*5.00 + 10*8.00
		assert.True(t, resp.CostoTotal.Equal(d("230")))
	})

	t.Run("stock insuficiente no toca lotes ni stock", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", false, 50)
		seedIngreso(s, "ing-1", "art-1", "30", "5.00", base)
		seedIngreso(s, "ing-2", "art-1", "20", "8.00", base.Add(24*time.Hour))

		_, err := newUC(s).RegistrarSalida(ctx, "user-1", dto.RegistrarSalidaRequest{
			ArticuloID: "art-1",
			Cantidad:   d("60"),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)

		var detalle *domain.StockInsuficienteError
		require.True(t, errors.As(err, &detalle))
		assert.Equal(t, "TELA-001", detalle.ArticuloCodigo)
		assert.True(t, detalle.Solicitada.Equal(d("60")))
		assert.True(t, detalle.Disponible.Equal(d("50")))

		assert.True(t, s.ingresos[0].CantidadDisponible.Equal(d("30")))
		assert.True(t, s.ingresos[1].CantidadDisponible.Equal(d("20")))
		assert.True(t, s.articulos["art-1"].StockActual.Equal(d("50")))
		assert.Empty(t, s.salidas)
	})

	t.Run("registro_id inexistente", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", false, 50)
		seedIngreso(s, "ing-1", "art-1", "50", "5.00", base)

		regID := "reg-no"
		_, err := newUC(s).RegistrarSalida(ctx, "user-1", dto.RegistrarSalidaRequest{
			ArticuloID: "art-1",
			Cantidad:   d("10"),
			RegistroID: &regID,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("salida fijada a un rollo descuenta rollo y su lote", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", true, 50)
		seedIngreso(s, "ing-1", "art-1", "50", "8.00", base)
		s.rollos = append(s.rollos,
			&entity.Rollo{ID: "rollo-1", ArticuloID: "art-1", IngresoID: "ing-1", Numero: 1, MetrajeTotal: d("28"), MetrajeDisponible: d("28"), Activo: true},
			&entity.Rollo{ID: "rollo-2", ArticuloID: "art-1", IngresoID: "ing-1", Numero: 2, MetrajeTotal: d("22"), MetrajeDisponible: d("22"), Activo: true},
		)

		rolloID := "rollo-2"
		resp, err := newUC(s).RegistrarSalida(ctx, "user-1", dto.RegistrarSalidaRequest{
			ArticuloID: "art-1",
			Cantidad:   d("10"),
			RolloID:    &rolloID,
		})
		require.NoError(t, err)
		require.Len(t, resp.DetalleFifo, 1)
		assert.Equal(t, "rollo-2", resp.DetalleFifo[0].RolloID)
		assert.Equal(t, "ing-1", resp.DetalleFifo[0].IngresoID)
		assert.True(t, s.rollos[1].MetrajeDisponible.Equal(d("12")))
		assert.True(t, s.rollos[0].MetrajeDisponible.Equal(d("28")))
		assert.True(t, s.ingresos[0].CantidadDisponible.Equal(d("40")))
	})

	t.Run("salida fijada que excede el rollo falla sin tocar nada", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", true, 50)
		seedIngreso(s, "ing-1", "art-1", "50", "8.00", base)
		s.rollos = append(s.rollos,
			&entity.Rollo{ID: "rollo-1", ArticuloID: "art-1", IngresoID: "ing-1", Numero: 1, MetrajeTotal: d("28"), MetrajeDisponible: d("28"), Activo: true},
		)

		rolloID := "rollo-1"
		_, err := newUC(s).RegistrarSalida(ctx, "user-1", dto.RegistrarSalidaRequest{
			ArticuloID: "art-1",
			Cantidad:   d("30"),
			RolloID:    &rolloID,
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.True(t, s.rollos[0].MetrajeDisponible.Equal(d("28")))
	})

	t.Run("sin rollo_id consume el pool del mas antiguo", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", true, 50)
		seedIngreso(s, "ing-1", "art-1", "28", "5.00", base)
		seedIngreso(s, "ing-2", "art-1", "22", "8.00", base.Add(24*time.Hour))
		s.rollos = append(s.rollos,
			&entity.Rollo{ID: "rollo-1", ArticuloID: "art-1", IngresoID: "ing-1", Numero: 1, MetrajeTotal: d("28"), MetrajeDisponible: d("28"), Activo: true},
			&entity.Rollo{ID: "rollo-2", ArticuloID: "art-1", IngresoID: "ing-2", Numero: 1, MetrajeTotal: d("22"), MetrajeDisponible: d("22"), Activo: true},
		)

		resp, err := newUC(s).RegistrarSalida(ctx, "user-1", dto.RegistrarSalidaRequest{
			ArticuloID: "art-1",
			Cantidad:   d("40"),
		})
		require.NoError(t, err)
		require.Len(t, resp.DetalleFifo, 2)
		assert.Equal(t, "rollo-1", resp.DetalleFifo[0].RolloID)
		assert.True(t, resp.DetalleFifo[1].Cantidad.Equal(d("12")))
		// 28*5.00 + 12*8.00
		assert.True(t, resp.CostoTotal.Equal(d("236")))
		assert.False(t, s.rollos[0].Activo)
		assert.True(t, s.ingresos[0].CantidadDisponible.IsZero())
		assert.True(t, s.ingresos[1].CantidadDisponible.Equal(d("10")))
	})

	t.Run("rollo_id en articulo sin control por rollos se rechaza", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "HILO-001", false, 50)
		rolloID := "rollo-1"
		_, err := newUC(s).RegistrarSalida(ctx, "user-1", dto.RegistrarSalidaRequest{
			ArticuloID: "art-1",
			Cantidad:   d("5"),
			RolloID:    &rolloID,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// El agregado del artículo debe seguir igual a la suma de lo disponible en
// lotes tras cualquier secuencia de ingresos y salidas.
func TestStockActualCuadraConLotes(t *testing.T) {
	ctx := context.Background()
	s := newFakeStore()
	seedArticulo(s, "art-1", "TELA-001", false, 0)
	ingresoUC := NewRegistrarIngresoUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s})
	salidaUC := NewRegistrarSalidaUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s}, &fakeRegistroRepo{s}, &fakeSalidaRepo{s})

	for _, paso := range []struct {
		cantidad string
		costo    string
		salida   bool
	}{
		{cantidad: "100", costo: "4.50"},
		{cantidad: "35.5", salida: true},
		{cantidad: "40", costo: "5.25"},
		{cantidad: "60", salida: true},
		{cantidad: "12.75", costo: "4.90"},
		{cantidad: "17", salida: true},
	} {
		var err error
		if paso.salida {
			_, err = salidaUC.RegistrarSalida(ctx, "user-1", dto.RegistrarSalidaRequest{
				ArticuloID: "art-1", Cantidad: d(paso.cantidad),
			})
		} else {
			_, err = ingresoUC.RegistrarIngreso(ctx, "user-1", dto.RegistrarIngresoRequest{
				ArticuloID: "art-1", Cantidad: d(paso.cantidad), CostoUnitario: d(paso.costo),
			})
		}
		require.NoError(t, err)
	}

	enLotes, err := (&fakeIngresoRepo{s}).TotalDisponible("art-1")
	require.NoError(t, err)
	assert.True(t, s.articulos["art-1"].StockActual.Equal(enLotes))
	assert.True(t, s.articulos["art-1"].StockActual.Equal(d("40.25")))
}

func TestRegistrarAjuste(t *testing.T) {
	ctx := context.Background()

	t.Run("secuencia entrada y salida sobre el agregado", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "HILO-001", false, 100)
		uc := NewRegistrarAjusteUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s}, &fakeAjusteRepo{s})

		_, err := uc.RegistrarAjuste(ctx, "user-1", dto.RegistrarAjusteRequest{
			ArticuloID: "art-1", Tipo: entity.AjusteEntrada, Cantidad: d("10"), Motivo: "conteo físico",
		})
		require.NoError(t, err)
		assert.True(t, s.articulos["art-1"].StockActual.Equal(d("110")))

		_, err = uc.RegistrarAjuste(ctx, "user-1", dto.RegistrarAjusteRequest{
			ArticuloID: "art-1", Tipo: entity.AjusteSalida, Cantidad: d("5"), Motivo: "merma",
		})
		require.NoError(t, err)
		assert.True(t, s.articulos["art-1"].StockActual.Equal(d("105")))

		_, err = uc.RegistrarAjuste(ctx, "user-1", dto.RegistrarAjusteRequest{
			ArticuloID: "art-1", Tipo: entity.AjusteSalida, Cantidad: d("99999"), Motivo: "error de tipeo",
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.True(t, s.articulos["art-1"].StockActual.Equal(d("105")))
		assert.Len(t, s.ajustes, 2)
	})

	t.Run("validaciones", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "HILO-001", false, 100)
		uc := NewRegistrarAjusteUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s}, &fakeAjusteRepo{s})

		casos := []dto.RegistrarAjusteRequest{
			{ArticuloID: "art-1", Tipo: "otro", Cantidad: d("5"), Motivo: "x"},
			{ArticuloID: "art-1", Tipo: entity.AjusteEntrada, Cantidad: d("-5"), Motivo: "x"},
			{ArticuloID: "art-1", Tipo: entity.AjusteEntrada, Cantidad: d("5")},
			{Tipo: entity.AjusteEntrada, Cantidad: d("5"), Motivo: "x"},
		}
		for _, in := range casos {
			_, err := uc.RegistrarAjuste(ctx, "user-1", in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		}
	})

	t.Run("el ajuste no toca los lotes", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", false, 50)
		seedIngreso(s, "ing-1", "art-1", "50", "5.00", time.Now())
		uc := NewRegistrarAjusteUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s}, &fakeAjusteRepo{s})

		_, err := uc.RegistrarAjuste(ctx, "user-1", dto.RegistrarAjusteRequest{
			ArticuloID: "art-1", Tipo: entity.AjusteSalida, Cantidad: d("10"), Motivo: "merma",
		})
		require.NoError(t, err)
		assert.True(t, s.ingresos[0].CantidadDisponible.Equal(d("50")))
		assert.True(t, s.articulos["art-1"].StockActual.Equal(d("40")))
	})
}

func TestReservas(t *testing.T) {
	ctx := context.Background()
	terminales := []string{entity.EstadoEntregado, entity.EstadoAnulado}

	talla := func(t string) *string { return &t }

	t.Run("detalle con registros abiertos", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", false, 50)
		s.consumos["art-1"] = []produccion.RegistroConConsumo{
			{
				RegistroID: "reg-1", Codigo: "RP-0001", Estado: entity.EstadoCortado,
				Prendas:  []entity.CantidadTalla{{Talla: "M", Cantidad: d("10")}, {Talla: "L", Cantidad: d("10")}},
				Consumos: []produccion.ConsumoArticulo{{Talla: nil, CantidadPorPrenda: d("1.5")}},
			},
			{
				RegistroID: "reg-2", Codigo: "RP-0002", Estado: entity.EstadoEntregado,
				Prendas:  []entity.CantidadTalla{{Talla: "M", Cantidad: d("100")}},
				Consumos: []produccion.ConsumoArticulo{{Talla: nil, CantidadPorPrenda: d("1.5")}},
			},
			{
				RegistroID: "reg-3", Codigo: "RP-0003", Estado: entity.EstadoPendiente,
				Prendas:  []entity.CantidadTalla{{Talla: "M", Cantidad: d("20")}, {Talla: "XL", Cantidad: d("4")}},
				Consumos: []produccion.ConsumoArticulo{{Talla: talla("XL"), CantidadPorPrenda: d("0.5")}},
			},
		}

		uc := NewReservasUseCase(&fakeArticuloRepo{s}, &fakeRegistroRepo{s}, &fakeIngresoRepo{s}, terminales)
		resp, err := uc.Detalle(ctx, "art-1")
		require.NoError(t, err)

		// reg-1: (10+10)*1.5 = 30; reg-2 entregado no cuenta; reg-3: 4*0.5 = 2
		assert.True(t, resp.TotalReservado.Equal(d("32")))
		assert.True(t, resp.StockDisponible.Equal(d("18")))
		require.Len(t, resp.Registros, 2)
		assert.Equal(t, "RP-0001", resp.Registros[0].Codigo)
		require.Len(t, resp.Registros[1].Lineas, 1)
		assert.Equal(t, "XL", resp.Registros[1].Lineas[0].Talla)
	})

	t.Run("disponible nunca negativo", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", false, 10)
		s.consumos["art-1"] = []produccion.RegistroConConsumo{
			{
				RegistroID: "reg-1", Codigo: "RP-0001", Estado: entity.EstadoPendiente,
				Prendas:  []entity.CantidadTalla{{Talla: "M", Cantidad: d("100")}},
				Consumos: []produccion.ConsumoArticulo{{Talla: nil, CantidadPorPrenda: d("2")}},
			},
		}
		uc := NewReservasUseCase(&fakeArticuloRepo{s}, &fakeRegistroRepo{s}, &fakeIngresoRepo{s}, terminales)
		resp, err := uc.Detalle(ctx, "art-1")
		require.NoError(t, err)
		assert.True(t, resp.TotalReservado.Equal(d("200")))
		assert.True(t, resp.StockDisponible.IsZero())
	})

	t.Run("lectura idempotente", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", false, 50)
		s.consumos["art-1"] = []produccion.RegistroConConsumo{
			{
				RegistroID: "reg-1", Codigo: "RP-0001", Estado: entity.EstadoCortado,
				Prendas:  []entity.CantidadTalla{{Talla: "M", Cantidad: d("10")}},
				Consumos: []produccion.ConsumoArticulo{{Talla: nil, CantidadPorPrenda: d("1.5")}},
			},
		}
		uc := NewReservasUseCase(&fakeArticuloRepo{s}, &fakeRegistroRepo{s}, &fakeIngresoRepo{s}, terminales)

		primero, err := uc.Detalle(ctx, "art-1")
		require.NoError(t, err)
		segundo, err := uc.Detalle(ctx, "art-1")
		require.NoError(t, err)
		assert.Equal(t, primero, segundo)
	})

	t.Run("articulo inexistente", func(t *testing.T) {
		s := newFakeStore()
		uc := NewReservasUseCase(&fakeArticuloRepo{s}, &fakeRegistroRepo{s}, &fakeIngresoRepo{s}, terminales)
		_, err := uc.Detalle(ctx, "no-existe")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("cuadre detecta descuadre tras ajuste", func(t *testing.T) {
		s := newFakeStore()
		seedArticulo(s, "art-1", "TELA-001", false, 50)
		seedIngreso(s, "ing-1", "art-1", "50", "5.00", time.Now())
		ajusteUC := NewRegistrarAjusteUseCase(&fakeTxRunner{s}, &fakeArticuloRepo{s}, &fakeAjusteRepo{s})
		_, err := ajusteUC.RegistrarAjuste(ctx, "user-1", dto.RegistrarAjusteRequest{
			ArticuloID: "art-1", Tipo: entity.AjusteSalida, Cantidad: d("10"), Motivo: "merma",
		})
		require.NoError(t, err)

		uc := NewReservasUseCase(&fakeArticuloRepo{s}, &fakeRegistroRepo{s}, &fakeIngresoRepo{s}, terminales)
		cuadre, err := uc.Cuadre(ctx, "art-1")
		require.NoError(t, err)
		assert.False(t, cuadre.Cuadrado)
		assert.True(t, cuadre.Descuadre.Equal(d("-10")))
	})
}
