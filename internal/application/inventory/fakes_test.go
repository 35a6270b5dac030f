package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/produccion"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

// fakeStore simula la base relacional en memoria; los fakes por puerto
// comparten este estado igual que los repos reales comparten la tx.
type fakeStore struct {
	articulos map[string]*entity.Articulo
	ingresos  []*entity.Ingreso
	salidas   []*entity.Salida
	ajustes   []*entity.Ajuste
	rollos    []*entity.Rollo
	registros map[string]*entity.Registro
	consumos  map[string][]produccion.RegistroConConsumo // articuloID -> filas
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		articulos: make(map[string]*entity.Articulo),
		registros: make(map[string]*entity.Registro),
		consumos:  make(map[string][]produccion.RegistroConConsumo),
	}
}

type fakeArticuloRepo struct{ s *fakeStore }

func (r *fakeArticuloRepo) Create(a *entity.Articulo) error {
	r.s.articulos[a.ID] = a
	return nil
}

func (r *fakeArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	a, ok := r.s.articulos[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (r *fakeArticuloRepo) GetByCodigo(codigo string) (*entity.Articulo, error) {
	for _, a := range r.s.articulos {
		if a.Codigo == codigo {
			copia := *a
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeArticuloRepo) GetForUpdate(id string) (*entity.Articulo, error) {
	return r.GetByID(id)
}

func (r *fakeArticuloRepo) Update(a *entity.Articulo) error {
	r.s.articulos[a.ID] = a
	return nil
}

func (r *fakeArticuloRepo) ActualizarStock(id string, stock decimal.Decimal) error {
	r.s.articulos[id].StockActual = stock
	return nil
}

func (r *fakeArticuloRepo) List(limit, offset int) ([]*entity.Articulo, error) {
	out := make([]*entity.Articulo, 0, len(r.s.articulos))
	for _, a := range r.s.articulos {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeArticuloRepo) ListBajoMinimo() ([]*entity.Articulo, error) {
	var out []*entity.Articulo
	for _, a := range r.s.articulos {
		if a.StockActual.LessThanOrEqual(a.StockMinimo) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeIngresoRepo struct{ s *fakeStore }

func (r *fakeIngresoRepo) Create(i *entity.Ingreso) error {
	r.s.ingresos = append(r.s.ingresos, i)
	return nil
}

func (r *fakeIngresoRepo) GetByID(id string) (*entity.Ingreso, error) {
	for _, i := range r.s.ingresos {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, nil
}

func (r *fakeIngresoRepo) ListByArticulo(articuloID string) ([]*entity.Ingreso, error) {
	var out []*entity.Ingreso
	for _, i := range r.s.ingresos {
		if i.ArticuloID == articuloID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeIngresoRepo) ListDisponiblesForUpdate(articuloID string) ([]*entity.Ingreso, error) {
	var out []*entity.Ingreso
	for _, i := range r.s.ingresos {
		if i.ArticuloID == articuloID && i.CantidadDisponible.GreaterThan(decimal.Zero) {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeIngresoRepo) Descontar(id string, cantidad decimal.Decimal) error {
	for _, i := range r.s.ingresos {
		if i.ID == id {
			i.CantidadDisponible = i.CantidadDisponible.Sub(cantidad)
			return nil
		}
	}
	return nil
}

func (r *fakeIngresoRepo) TotalDisponible(articuloID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, i := range r.s.ingresos {
		if i.ArticuloID == articuloID {
			total = total.Add(i.CantidadDisponible)
		}
	}
	return total, nil
}

type fakeSalidaRepo struct{ s *fakeStore }

func (r *fakeSalidaRepo) Create(salida *entity.Salida) error {
	r.s.salidas = append(r.s.salidas, salida)
	return nil
}

func (r *fakeSalidaRepo) GetByID(id string) (*entity.Salida, error) {
	for _, s := range r.s.salidas {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSalidaRepo) ListByArticulo(articuloID string, limit, offset int) ([]*entity.Salida, error) {
	var out []*entity.Salida
	for _, s := range r.s.salidas {
		if s.ArticuloID == articuloID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeAjusteRepo struct{ s *fakeStore }

func (r *fakeAjusteRepo) Create(a *entity.Ajuste) error {
	r.s.ajustes = append(r.s.ajustes, a)
	return nil
}

func (r *fakeAjusteRepo) ListByArticulo(articuloID string, limit, offset int) ([]*entity.Ajuste, error) {
	var out []*entity.Ajuste
	for _, a := range r.s.ajustes {
		if a.ArticuloID == articuloID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeRolloRepo struct{ s *fakeStore }

func (r *fakeRolloRepo) Create(rollo *entity.Rollo) error {
	r.s.rollos = append(r.s.rollos, rollo)
	return nil
}

func (r *fakeRolloRepo) GetForUpdate(id string) (*entity.Rollo, error) {
	for _, ro := range r.s.rollos {
		if ro.ID == id {
			return ro, nil
		}
	}
	return nil, nil
}

func (r *fakeRolloRepo) ListActivosForUpdate(articuloID string) ([]*entity.Rollo, error) {
	var out []*entity.Rollo
	for _, ro := range r.s.rollos {
		if ro.ArticuloID == articuloID && ro.Activo && ro.MetrajeDisponible.GreaterThan(decimal.Zero) {
			out = append(out, ro)
		}
	}
	return out, nil
}

func (r *fakeRolloRepo) ListByArticulo(articuloID string) ([]*entity.Rollo, error) {
	var out []*entity.Rollo
	for _, ro := range r.s.rollos {
		if ro.ArticuloID == articuloID {
			out = append(out, ro)
		}
	}
	return out, nil
}

func (r *fakeRolloRepo) Descontar(id string, cantidad decimal.Decimal) error {
	for _, ro := range r.s.rollos {
		if ro.ID == id {
			ro.MetrajeDisponible = ro.MetrajeDisponible.Sub(cantidad)
			if ro.MetrajeDisponible.IsZero() {
				ro.Activo = false
			}
			return nil
		}
	}
	return nil
}

type fakeRegistroRepo struct{ s *fakeStore }

func (r *fakeRegistroRepo) Create(reg *entity.Registro) error {
	r.s.registros[reg.ID] = reg
	return nil
}

func (r *fakeRegistroRepo) GetByID(id string) (*entity.Registro, error) {
	reg, ok := r.s.registros[id]
	if !ok {
		return nil, nil
	}
	return reg, nil
}

func (r *fakeRegistroRepo) GetByCodigo(codigo string) (*entity.Registro, error) {
	for _, reg := range r.s.registros {
		if reg.Codigo == codigo {
			return reg, nil
		}
	}
	return nil, nil
}

func (r *fakeRegistroRepo) ActualizarEstado(id, estado string) error {
	if reg, ok := r.s.registros[id]; ok {
		reg.Estado = estado
	}
	return nil
}

func (r *fakeRegistroRepo) List(estado string, limit, offset int) ([]*entity.Registro, error) {
	var out []*entity.Registro
	for _, reg := range r.s.registros {
		if estado == "" || reg.Estado == estado {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *fakeRegistroRepo) ListConConsumo(articuloID string) ([]produccion.RegistroConConsumo, error) {
	return r.s.consumos[articuloID], nil
}

// fakeTxRunner invoca el callback con los fakes compartidos; los casos de uso
// fallan antes de mutar, así que no hace falta simular rollback.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	repository.ArticuloRepository,
	repository.IngresoRepository,
	repository.SalidaRepository,
	repository.AjusteRepository,
	repository.RolloRepository,
) error) error {
	return fn(
		&fakeArticuloRepo{t.s},
		&fakeIngresoRepo{t.s},
		&fakeSalidaRepo{t.s},
		&fakeAjusteRepo{t.s},
		&fakeRolloRepo{t.s},
	)
}

// seedArticulo crea un artículo de prueba en el store.
func seedArticulo(s *fakeStore, id, codigo string, porRollos bool, stock float64) *entity.Articulo {
	a := &entity.Articulo{
		ID:               id,
		Codigo:           codigo,
		Nombre:           "Artículo " + codigo,
		Categoria:        "tela",
		UnidadMedida:     "m",
		StockMinimo:      decimal.Zero,
		ControlPorRollos: porRollos,
		StockActual:      decimal.NewFromFloat(stock),
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	s.articulos[id] = a
	return a
}
