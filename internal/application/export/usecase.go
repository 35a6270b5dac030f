package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"time"

	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

// Tablas exportables a CSV.
const (
	TablaArticulos = "articulos"
	TablaIngresos  = "ingresos"
	TablaSalidas   = "salidas"
	TablaAjustes   = "ajustes"
	TablaRegistros = "registros"
)

// UseCase exporta las tablas principales a CSV y el respaldo completo a JSON.
// El CSV sale en UTF-8 con cabecera; Excel moderno lo abre sin problemas.
type UseCase struct {
	articuloRepo repository.ArticuloRepository
	ingresoRepo  repository.IngresoRepository
	salidaRepo   repository.SalidaRepository
	ajusteRepo   repository.AjusteRepository
	registroRepo repository.RegistroRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	articuloRepo repository.ArticuloRepository,
	ingresoRepo repository.IngresoRepository,
	salidaRepo repository.SalidaRepository,
	ajusteRepo repository.AjusteRepository,
	registroRepo repository.RegistroRepository,
) *UseCase {
	return &UseCase{
		articuloRepo: articuloRepo,
		ingresoRepo:  ingresoRepo,
		salidaRepo:   salidaRepo,
		ajusteRepo:   ajusteRepo,
		registroRepo: registroRepo,
	}
}

// listado grande pero acotado: estas tablas se exportan completas.
const exportLimit = 100000

// ExportCSV escribe la tabla pedida como CSV en w.
func (uc *UseCase) ExportCSV(ctx context.Context, tabla string, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	switch tabla {
	case TablaArticulos:
		return uc.exportArticulos(cw)
	case TablaIngresos:
		return uc.exportIngresos(cw)
	case TablaSalidas:
		return uc.exportSalidas(cw)
	case TablaAjustes:
		return uc.exportAjustes(cw)
	case TablaRegistros:
		return uc.exportRegistros(cw)
	}
	return domain.ErrNotFound
}

func (uc *UseCase) exportArticulos(cw *csv.Writer) error {
	if err := cw.Write([]string{"id", "codigo", "nombre", "categoria", "unidad_medida", "stock_minimo", "control_por_rollos", "stock_actual"}); err != nil {
		return err
	}
	articulos, err := uc.articuloRepo.List(exportLimit, 0)
	if err != nil {
		return err
	}
	for _, a := range articulos {
		control := "false"
		if a.ControlPorRollos {
			control = "true"
		}
		if err := cw.Write([]string{
			a.ID, a.Codigo, a.Nombre, a.Categoria, a.UnidadMedida,
			a.StockMinimo.String(), control, a.StockActual.String(),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (uc *UseCase) forEachArticulo(fn func(a *entity.Articulo) error) error {
	articulos, err := uc.articuloRepo.List(exportLimit, 0)
	if err != nil {
		return err
	}
	for _, a := range articulos {
		if err := fn(a); err != nil {
			return err
		}
	}
	return nil
}

func (uc *UseCase) exportIngresos(cw *csv.Writer) error {
	if err := cw.Write([]string{"id", "articulo_id", "cantidad", "costo_unitario", "cantidad_disponible", "proveedor", "numero_documento", "fecha"}); err != nil {
		return err
	}
	return uc.forEachArticulo(func(a *entity.Articulo) error {
		ingresos, err := uc.ingresoRepo.ListByArticulo(a.ID)
		if err != nil {
			return err
		}
		for _, i := range ingresos {
			if err := cw.Write([]string{
				i.ID, i.ArticuloID, i.Cantidad.String(), i.CostoUnitario.String(),
				i.CantidadDisponible.String(), i.Proveedor, i.NumeroDocumento,
				i.Fecha.Format(time.RFC3339),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (uc *UseCase) exportSalidas(cw *csv.Writer) error {
	if err := cw.Write([]string{"id", "articulo_id", "cantidad", "registro_id", "costo_total", "fecha"}); err != nil {
		return err
	}
	return uc.forEachArticulo(func(a *entity.Articulo) error {
		salidas, err := uc.salidaRepo.ListByArticulo(a.ID, exportLimit, 0)
		if err != nil {
			return err
		}
		for _, s := range salidas {
			registroID := ""
			if s.RegistroID != nil {
				registroID = *s.RegistroID
			}
			if err := cw.Write([]string{
				s.ID, s.ArticuloID, s.Cantidad.String(), registroID,
				s.CostoTotal.String(), s.Fecha.Format(time.RFC3339),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (uc *UseCase) exportAjustes(cw *csv.Writer) error {
	if err := cw.Write([]string{"id", "articulo_id", "tipo", "cantidad", "motivo", "fecha"}); err != nil {
		return err
	}
	return uc.forEachArticulo(func(a *entity.Articulo) error {
		ajustes, err := uc.ajusteRepo.ListByArticulo(a.ID, exportLimit, 0)
		if err != nil {
			return err
		}
		for _, aj := range ajustes {
			if err := cw.Write([]string{
				aj.ID, aj.ArticuloID, aj.Tipo, aj.Cantidad.String(), aj.Motivo,
				aj.Fecha.Format(time.RFC3339),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (uc *UseCase) exportRegistros(cw *csv.Writer) error {
	if err := cw.Write([]string{"id", "codigo", "modelo_id", "estado", "total_prendas", "fecha"}); err != nil {
		return err
	}
	registros, err := uc.registroRepo.List("", exportLimit, 0)
	if err != nil {
		return err
	}
	for _, r := range registros {
		if err := cw.Write([]string{
			r.ID, r.Codigo, r.ModeloID, r.Estado,
			r.TotalPrendas().String(), r.Fecha.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	return nil
}

// backup es el sobre del respaldo JSON completo.
type backup struct {
	GeneradoEn time.Time          `json:"generado_en"`
	Articulos  []*entity.Articulo `json:"articulos"`
	Ingresos   []*entity.Ingreso  `json:"ingresos"`
	Salidas    []*entity.Salida   `json:"salidas"`
	Ajustes    []*entity.Ajuste   `json:"ajustes"`
	Registros  []*entity.Registro `json:"registros"`
}

// ExportBackupJSON escribe el respaldo completo como JSON en w.
func (uc *UseCase) ExportBackupJSON(ctx context.Context, w io.Writer) error {
	out := backup{GeneradoEn: time.Now()}

	var err error
	out.Articulos, err = uc.articuloRepo.List(exportLimit, 0)
	if err != nil {
		return err
	}
	for _, a := range out.Articulos {
		ingresos, err := uc.ingresoRepo.ListByArticulo(a.ID)
		if err != nil {
			return err
		}
		out.Ingresos = append(out.Ingresos, ingresos...)

		salidas, err := uc.salidaRepo.ListByArticulo(a.ID, exportLimit, 0)
		if err != nil {
			return err
		}
		out.Salidas = append(out.Salidas, salidas...)

		ajustes, err := uc.ajusteRepo.ListByArticulo(a.ID, exportLimit, 0)
		if err != nil {
			return err
		}
		out.Ajustes = append(out.Ajustes, ajustes...)
	}
	out.Registros, err = uc.registroRepo.List("", exportLimit, 0)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
