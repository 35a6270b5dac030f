package produccion

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

// OrdenCorteLinea es una línea de requerimiento de material para la orden de
// corte impresa: cuánto del artículo exige el registro completo.
type OrdenCorteLinea struct {
	ArticuloCodigo    string
	ArticuloNombre    string
	CantidadPorPrenda decimal.Decimal
	Talla             *string
	TotalRequerido    decimal.Decimal
}

// OrdenCortePDFGenerator genera el documento imprimible de una orden de corte.
type OrdenCortePDFGenerator interface {
	GenerarOrdenCorte(ctx context.Context, registro *entity.Registro, modelo *entity.Modelo, lineas []OrdenCorteLinea) ([]byte, error)
}

// OrdenCorteUseCase arma los datos de la orden de corte de un registro y
// delega el render al generador.
type OrdenCorteUseCase struct {
	registroRepo repository.RegistroRepository
	modeloRepo   repository.ModeloRepository
	articuloRepo repository.ArticuloRepository
	generator    OrdenCortePDFGenerator
}

// NewOrdenCorteUseCase construye el caso de uso.
func NewOrdenCorteUseCase(
	registroRepo repository.RegistroRepository,
	modeloRepo repository.ModeloRepository,
	articuloRepo repository.ArticuloRepository,
	generator OrdenCortePDFGenerator,
) *OrdenCorteUseCase {
	return &OrdenCorteUseCase{
		registroRepo: registroRepo,
		modeloRepo:   modeloRepo,
		articuloRepo: articuloRepo,
		generator:    generator,
	}
}

// Generar produce el PDF de la orden de corte del registro.
func (uc *OrdenCorteUseCase) Generar(ctx context.Context, registroID string) ([]byte, error) {
	registro, err := uc.registroRepo.GetByID(registroID)
	if err != nil {
		return nil, err
	}
	if registro == nil {
		return nil, domain.ErrNotFound
	}
	modelo, err := uc.modeloRepo.GetByID(registro.ModeloID)
	if err != nil {
		return nil, err
	}
	if modelo == nil {
		return nil, domain.ErrNotFound
	}

	lineas := make([]OrdenCorteLinea, 0, len(modelo.Consumos))
	for _, c := range modelo.Consumos {
		articulo, err := uc.articuloRepo.GetByID(c.ArticuloID)
		if err != nil {
			return nil, err
		}
		if articulo == nil {
			return nil, domain.ErrNotFound
		}
		// Línea general: todas las prendas; línea por talla: solo esa talla.
		prendas := decimal.Zero
		for _, t := range registro.Tallas {
			if c.Talla == nil || *c.Talla == t.Talla {
				prendas = prendas.Add(t.Cantidad)
			}
		}
		lineas = append(lineas, OrdenCorteLinea{
			ArticuloCodigo:    articulo.Codigo,
			ArticuloNombre:    articulo.Nombre,
			CantidadPorPrenda: c.CantidadPorPrenda,
			Talla:             c.Talla,
			TotalRequerido:    prendas.Mul(c.CantidadPorPrenda),
		})
	}

	return uc.generator.GenerarOrdenCorte(ctx, registro, modelo, lineas)
}
