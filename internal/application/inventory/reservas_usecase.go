package inventory

import (
	"context"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/produccion"
	"github.com/jmcastro/textil-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReservasUseCase deriva lo reservado por registros abiertos contra el BOM de
// su modelo. Siempre calculado al momento de la lectura, nunca almacenado:
// ediciones de BOM o de estado se reflejan sin contadores desactualizados.
type ReservasUseCase struct {
	articuloRepo      repository.ArticuloRepository
	registroRepo      repository.RegistroRepository
	ingresoRepo       repository.IngresoRepository
	estadosTerminales []string
}

// NewReservasUseCase construye el caso de uso. estadosTerminales viene de la
// configuración (PRODUCCION_ESTADOS_TERMINALES).
func NewReservasUseCase(
	articuloRepo repository.ArticuloRepository,
	registroRepo repository.RegistroRepository,
	ingresoRepo repository.IngresoRepository,
	estadosTerminales []string,
) *ReservasUseCase {
	return &ReservasUseCase{
		articuloRepo:      articuloRepo,
		registroRepo:      registroRepo,
		ingresoRepo:       ingresoRepo,
		estadosTerminales: estadosTerminales,
	}
}

// TotalReservado devuelve la cantidad comprometida del artículo. Lectura pura.
func (uc *ReservasUseCase) TotalReservado(ctx context.Context, articuloID string) (decimal.Decimal, error) {
	registros, err := uc.registroRepo.ListConConsumo(articuloID)
	if err != nil {
		return decimal.Zero, err
	}
	abiertos := produccion.FiltrarAbiertos(registros, uc.estadosTerminales)
	return produccion.CalcularReservas(abiertos).TotalReservado, nil
}

// Detalle devuelve identidad del artículo, stock, total reservado, disponible
// y el drill-down por registro abierto con sus líneas.
func (uc *ReservasUseCase) Detalle(ctx context.Context, articuloID string) (*dto.ReservasResponse, error) {
	articulo, err := uc.articuloRepo.GetByID(articuloID)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrNotFound
	}

	registros, err := uc.registroRepo.ListConConsumo(articuloID)
	if err != nil {
		return nil, err
	}
	abiertos := produccion.FiltrarAbiertos(registros, uc.estadosTerminales)
	resumen := produccion.CalcularReservas(abiertos)

	out := &dto.ReservasResponse{
		ArticuloID:      articulo.ID,
		Codigo:          articulo.Codigo,
		Nombre:          articulo.Nombre,
		StockActual:     articulo.StockActual,
		TotalReservado:  resumen.TotalReservado,
		StockDisponible: produccion.StockDisponible(articulo.StockActual, resumen.TotalReservado),
	}
	for _, r := range resumen.Registros {
		reg := dto.ReservaRegistroDTO{
			RegistroID: r.RegistroID,
			Codigo:     r.Codigo,
			Estado:     r.Estado,
			Cantidad:   r.Cantidad,
		}
		for _, l := range r.Lineas {
			reg.Lineas = append(reg.Lineas, dto.ReservaLineaDTO{
				Talla:             l.Talla,
				Prendas:           l.Prendas,
				CantidadPorPrenda: l.CantidadPorPrenda,
				Subtotal:          l.Subtotal,
			})
		}
		out.Registros = append(out.Registros, reg)
	}
	return out, nil
}

// Cuadre compara el agregado del artículo contra la disponibilidad del libro
// de lotes. El descuadre es esperable tras ajustes (ciegos a lotes); este
// reporte lo hace visible en vez de corregirlo en silencio.
func (uc *ReservasUseCase) Cuadre(ctx context.Context, articuloID string) (*dto.CuadreResponse, error) {
	articulo, err := uc.articuloRepo.GetByID(articuloID)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrNotFound
	}
	enLotes, err := uc.ingresoRepo.TotalDisponible(articuloID)
	if err != nil {
		return nil, err
	}
	descuadre := articulo.StockActual.Sub(enLotes)
	return &dto.CuadreResponse{
		ArticuloID:        articulo.ID,
		Codigo:            articulo.Codigo,
		StockActual:       articulo.StockActual,
		DisponibleEnLotes: enLotes,
		Descuadre:         descuadre,
		Cuadrado:          descuadre.IsZero(),
	}, nil
}
