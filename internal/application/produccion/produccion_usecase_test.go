package produccion

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	domainprod "github.com/jmcastro/textil-api/internal/domain/produccion"
)

func d(v string) decimal.Decimal {
	out, _ := decimal.NewFromString(v)
	return out
}

type memStore struct {
	articulos   map[string]*entity.Articulo
	catalogos   map[string]*entity.ItemCatalogo // clave tipo+"/"+id
	modelos     map[string]*entity.Modelo
	registros   map[string]*entity.Registro
	movimientos map[string]*entity.MovimientoServicio
}

func newMemStore() *memStore {
	return &memStore{
		articulos:   make(map[string]*entity.Articulo),
		catalogos:   make(map[string]*entity.ItemCatalogo),
		modelos:     make(map[string]*entity.Modelo),
		registros:   make(map[string]*entity.Registro),
		movimientos: make(map[string]*entity.MovimientoServicio),
	}
}

type memArticuloRepo struct{ s *memStore }

func (r *memArticuloRepo) Create(a *entity.Articulo) error { r.s.articulos[a.ID] = a; return nil }
func (r *memArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	return r.s.articulos[id], nil
}
func (r *memArticuloRepo) GetByCodigo(string) (*entity.Articulo, error)    { return nil, nil }
func (r *memArticuloRepo) GetForUpdate(id string) (*entity.Articulo, error) {
	return r.s.articulos[id], nil
}
func (r *memArticuloRepo) Update(a *entity.Articulo) error                  { return nil }
func (r *memArticuloRepo) ActualizarStock(string, decimal.Decimal) error    { return nil }
func (r *memArticuloRepo) List(int, int) ([]*entity.Articulo, error)        { return nil, nil }
func (r *memArticuloRepo) ListBajoMinimo() ([]*entity.Articulo, error)      { return nil, nil }

type memCatalogoRepo struct{ s *memStore }

func (r *memCatalogoRepo) Create(item *entity.ItemCatalogo) error {
	r.s.catalogos[item.Tipo+"/"+item.ID] = item
	return nil
}
func (r *memCatalogoRepo) GetByID(tipo, id string) (*entity.ItemCatalogo, error) {
	return r.s.catalogos[tipo+"/"+id], nil
}
func (r *memCatalogoRepo) GetByNombre(tipo, nombre string) (*entity.ItemCatalogo, error) {
	for _, item := range r.s.catalogos {
		if item.Tipo == tipo && item.Nombre == nombre {
			return item, nil
		}
	}
	return nil, nil
}
func (r *memCatalogoRepo) Update(*entity.ItemCatalogo) error { return nil }
func (r *memCatalogoRepo) Delete(tipo, id string) error {
	delete(r.s.catalogos, tipo+"/"+id)
	return nil
}
func (r *memCatalogoRepo) List(string) ([]*entity.ItemCatalogo, error) { return nil, nil }

type memModeloRepo struct{ s *memStore }

func (r *memModeloRepo) Create(m *entity.Modelo) error { r.s.modelos[m.ID] = m; return nil }
func (r *memModeloRepo) GetByID(id string) (*entity.Modelo, error) { return r.s.modelos[id], nil }
func (r *memModeloRepo) GetByCodigo(codigo string) (*entity.Modelo, error) {
	for _, m := range r.s.modelos {
		if m.Codigo == codigo {
			return m, nil
		}
	}
	return nil, nil
}
func (r *memModeloRepo) Update(m *entity.Modelo) error { r.s.modelos[m.ID] = m; return nil }
func (r *memModeloRepo) ReemplazarConsumos(modeloID string, consumos []entity.ConsumoModelo) error {
	r.s.modelos[modeloID].Consumos = consumos
	return nil
}
func (r *memModeloRepo) List(int, int) ([]*entity.Modelo, error) { return nil, nil }

type memRegistroRepo struct{ s *memStore }

func (r *memRegistroRepo) Create(reg *entity.Registro) error { r.s.registros[reg.ID] = reg; return nil }
func (r *memRegistroRepo) GetByID(id string) (*entity.Registro, error) {
	return r.s.registros[id], nil
}
func (r *memRegistroRepo) GetByCodigo(codigo string) (*entity.Registro, error) {
	for _, reg := range r.s.registros {
		if reg.Codigo == codigo {
			return reg, nil
		}
	}
	return nil, nil
}
func (r *memRegistroRepo) ActualizarEstado(id, estado string) error {
	r.s.registros[id].Estado = estado
	return nil
}
func (r *memRegistroRepo) List(estado string, _, _ int) ([]*entity.Registro, error) {
	var out []*entity.Registro
	for _, reg := range r.s.registros {
		if estado == "" || reg.Estado == estado {
			out = append(out, reg)
		}
	}
	return out, nil
}
func (r *memRegistroRepo) ListConConsumo(string) ([]domainprod.RegistroConConsumo, error) {
	return nil, nil
}

type memMovimientoRepo struct{ s *memStore }

func (r *memMovimientoRepo) Create(m *entity.MovimientoServicio) error {
	r.s.movimientos[m.ID] = m
	return nil
}
func (r *memMovimientoRepo) GetByID(id string) (*entity.MovimientoServicio, error) {
	return r.s.movimientos[id], nil
}
func (r *memMovimientoRepo) ListByRegistro(registroID string) ([]*entity.MovimientoServicio, error) {
	var out []*entity.MovimientoServicio
	for _, m := range r.s.movimientos {
		if m.RegistroID == registroID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *memMovimientoRepo) RegistrarDevolucion(id string) error {
	now := time.Now()
	r.s.movimientos[id].FechaDevolucion = &now
	return nil
}

func seedModelo(s *memStore, id, codigo string) *entity.Modelo {
	m := &entity.Modelo{ID: id, Codigo: codigo, Nombre: "Polo " + codigo}
	s.modelos[id] = m
	return m
}

func TestModeloUseCase(t *testing.T) {
	ctx := context.Background()

	newUC := func(s *memStore) *ModeloUseCase {
		return NewModeloUseCase(&memModeloRepo{s}, &memArticuloRepo{s}, &memCatalogoRepo{s})
	}

	t.Run("crea modelo con BOM", func(t *testing.T) {
		s := newMemStore()
		s.articulos["art-1"] = &entity.Articulo{ID: "art-1", Codigo: "TELA-001"}
		s.catalogos["marcas/marca-1"] = &entity.ItemCatalogo{ID: "marca-1", Tipo: entity.CatalogoMarcas, Nombre: "Urbano"}
		s.catalogos["telas/tela-1"] = &entity.ItemCatalogo{ID: "tela-1", Tipo: entity.CatalogoTelas, Nombre: "Jersey"}

		resp, err := newUC(s).Create(ctx, dto.CreateModeloRequest{
			Codigo:  "MOD-001",
			Nombre:  "Polo básico",
			MarcaID: "marca-1",
			TelaID:  "tela-1",
			Consumos: []dto.ConsumoInput{
				{ArticuloID: "art-1", CantidadPorPrenda: d("1.5")},
			},
		})
		require.NoError(t, err)
		require.Len(t, resp.Consumos, 1)
		assert.True(t, resp.Consumos[0].CantidadPorPrenda.Equal(d("1.5")))
	})

	t.Run("codigo duplicado", func(t *testing.T) {
		s := newMemStore()
		seedModelo(s, "mod-1", "MOD-001")
		_, err := newUC(s).Create(ctx, dto.CreateModeloRequest{Codigo: "MOD-001", Nombre: "Otro"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("BOM con articulo inexistente", func(t *testing.T) {
		s := newMemStore()
		_, err := newUC(s).Create(ctx, dto.CreateModeloRequest{
			Codigo:   "MOD-002",
			Nombre:   "Polo",
			Consumos: []dto.ConsumoInput{{ArticuloID: "no-existe", CantidadPorPrenda: d("1")}},
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update reemplaza el BOM completo", func(t *testing.T) {
		s := newMemStore()
		s.articulos["art-1"] = &entity.Articulo{ID: "art-1"}
		s.articulos["art-2"] = &entity.Articulo{ID: "art-2"}
		m := seedModelo(s, "mod-1", "MOD-001")
		m.Consumos = []entity.ConsumoModelo{{ID: "c-1", ModeloID: "mod-1", ArticuloID: "art-1", CantidadPorPrenda: d("1")}}

		resp, err := newUC(s).Update(ctx, "mod-1", dto.UpdateModeloRequest{
			Consumos: []dto.ConsumoInput{
				{ArticuloID: "art-2", CantidadPorPrenda: d("0.75")},
			},
		})
		require.NoError(t, err)
		require.Len(t, resp.Consumos, 1)
		assert.Equal(t, "art-2", resp.Consumos[0].ArticuloID)
		assert.Len(t, s.modelos["mod-1"].Consumos, 1)
	})
}

func TestRegistroWorkflow(t *testing.T) {
	ctx := context.Background()

	newUC := func(s *memStore) *RegistroUseCase {
		return NewRegistroUseCase(&memRegistroRepo{s}, &memModeloRepo{s})
	}

	crear := func(t *testing.T, s *memStore, uc *RegistroUseCase) *dto.RegistroResponse {
		t.Helper()
		seedModelo(s, "mod-1", "MOD-001")
		resp, err := uc.Create(ctx, "user-1", dto.CreateRegistroRequest{
			Codigo:   "RP-0001",
			ModeloID: "mod-1",
			Tallas:   []dto.TallaInput{{Talla: "M", Cantidad: d("10")}, {Talla: "L", Cantidad: d("5")}},
		})
		require.NoError(t, err)
		return resp
	}

	t.Run("nace en PENDIENTE con total de prendas", func(t *testing.T) {
		s := newMemStore()
		resp := crear(t, s, newUC(s))
		assert.Equal(t, entity.EstadoPendiente, resp.Estado)
		assert.True(t, resp.TotalPrendas.Equal(d("15")))
	})

	t.Run("talla repetida se rechaza", func(t *testing.T) {
		s := newMemStore()
		seedModelo(s, "mod-1", "MOD-001")
		_, err := newUC(s).Create(ctx, "user-1", dto.CreateRegistroRequest{
			Codigo:   "RP-0002",
			ModeloID: "mod-1",
			Tallas:   []dto.TallaInput{{Talla: "M", Cantidad: d("10")}, {Talla: "M", Cantidad: d("5")}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("flujo completo hasta ENTREGADO", func(t *testing.T) {
		s := newMemStore()
		uc := newUC(s)
		resp := crear(t, s, uc)

		for _, estado := range []string{
			entity.EstadoCortado,
			entity.EstadoEnConfeccion,
			entity.EstadoAcabado,
			entity.EstadoEntregado,
		} {
			resp2, err := uc.CambiarEstado(ctx, resp.ID, dto.CambiarEstadoRequest{Estado: estado})
			require.NoError(t, err)
			assert.Equal(t, estado, resp2.Estado)
		}
	})

	t.Run("saltarse un paso responde conflicto", func(t *testing.T) {
		s := newMemStore()
		uc := newUC(s)
		resp := crear(t, s, uc)

		_, err := uc.CambiarEstado(ctx, resp.ID, dto.CambiarEstadoRequest{Estado: entity.EstadoAcabado})
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, entity.EstadoPendiente, s.registros[resp.ID].Estado)
	})

	t.Run("anular desde cualquier estado no terminal", func(t *testing.T) {
		s := newMemStore()
		uc := newUC(s)
		resp := crear(t, s, uc)

		_, err := uc.CambiarEstado(ctx, resp.ID, dto.CambiarEstadoRequest{Estado: entity.EstadoCortado})
		require.NoError(t, err)
		_, err = uc.CambiarEstado(ctx, resp.ID, dto.CambiarEstadoRequest{Estado: entity.EstadoAnulado})
		require.NoError(t, err)

		// terminal: ya no hay salida
		_, err = uc.CambiarEstado(ctx, resp.ID, dto.CambiarEstadoRequest{Estado: entity.EstadoCortado})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("estado desconocido es error de validacion", func(t *testing.T) {
		s := newMemStore()
		uc := newUC(s)
		resp := crear(t, s, uc)
		_, err := uc.CambiarEstado(ctx, resp.ID, dto.CambiarEstadoRequest{Estado: "TERMINADO"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestMovimientoUseCase(t *testing.T) {
	ctx := context.Background()

	seedRegistro := func(s *memStore) {
		s.registros["reg-1"] = &entity.Registro{
			ID:     "reg-1",
			Codigo: "RP-0001",
			Estado: entity.EstadoCortado,
			Tallas: []entity.CantidadTalla{{Talla: "M", Cantidad: d("20")}},
		}
	}

	newUC := func(s *memStore) *MovimientoUseCase {
		return NewMovimientoUseCase(&memMovimientoRepo{s}, &memRegistroRepo{s})
	}

	t.Run("entrega y devolucion", func(t *testing.T) {
		s := newMemStore()
		seedRegistro(s)
		uc := newUC(s)

		mov, err := uc.Create(ctx, "user-1", dto.CreateMovimientoRequest{
			RegistroID:        "reg-1",
			Etapa:             EtapaConfeccion,
			TrabajadorDestino: "Taller López",
			Cantidad:          d("20"),
			PrecioUnitario:    d("3.50"),
		})
		require.NoError(t, err)
		assert.Nil(t, mov.FechaDevolucion)

		devuelto, err := uc.RegistrarDevolucion(ctx, mov.ID)
		require.NoError(t, err)
		assert.NotNil(t, devuelto.FechaDevolucion)

		_, err = uc.RegistrarDevolucion(ctx, mov.ID)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("no se entregan mas prendas de las del registro", func(t *testing.T) {
		s := newMemStore()
		seedRegistro(s)
		_, err := newUC(s).Create(ctx, "user-1", dto.CreateMovimientoRequest{
			RegistroID:        "reg-1",
			Etapa:             EtapaConfeccion,
			TrabajadorDestino: "Taller López",
			Cantidad:          d("21"),
			PrecioUnitario:    d("3.50"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("etapa desconocida", func(t *testing.T) {
		s := newMemStore()
		seedRegistro(s)
		_, err := newUC(s).Create(ctx, "user-1", dto.CreateMovimientoRequest{
			RegistroID:        "reg-1",
			Etapa:             "PLANCHADO",
			TrabajadorDestino: "Taller López",
			Cantidad:          d("5"),
			PrecioUnitario:    d("1"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
