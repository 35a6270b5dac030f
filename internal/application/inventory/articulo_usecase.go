package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ArticuloUseCase CRUD de artículos. Stock no se edita aquí: se mueve vía
// ingresos, salidas y ajustes.
type ArticuloUseCase struct {
	articuloRepo repository.ArticuloRepository
	ingresoRepo  repository.IngresoRepository
	rolloRepo    repository.RolloRepository
	reservas     *ReservasUseCase
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(
	articuloRepo repository.ArticuloRepository,
	ingresoRepo repository.IngresoRepository,
	rolloRepo repository.RolloRepository,
	reservas *ReservasUseCase,
) *ArticuloUseCase {
	return &ArticuloUseCase{
		articuloRepo: articuloRepo,
		ingresoRepo:  ingresoRepo,
		rolloRepo:    rolloRepo,
		reservas:     reservas,
	}
}

// Create crea un artículo con stock cero.
func (uc *ArticuloUseCase) Create(ctx context.Context, in dto.CreateArticuloRequest) (*dto.ArticuloResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockMinimo.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existente, _ := uc.articuloRepo.GetByCodigo(in.Codigo)
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	articulo := &entity.Articulo{
		ID:               uuid.New().String(),
		Codigo:           in.Codigo,
		Nombre:           in.Nombre,
		Categoria:        in.Categoria,
		UnidadMedida:     in.UnidadMedida,
		StockMinimo:      in.StockMinimo,
		ControlPorRollos: in.ControlPorRollos,
		StockActual:      decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.articuloRepo.Create(articulo); err != nil {
		return nil, err
	}
	resp := toArticuloResponse(articulo)
	return &resp, nil
}

// Update actualiza campos editables del artículo.
func (uc *ArticuloUseCase) Update(ctx context.Context, id string, in dto.UpdateArticuloRequest) (*dto.ArticuloResponse, error) {
	articulo, err := uc.articuloRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		articulo.Nombre = *in.Nombre
	}
	if in.Categoria != nil {
		articulo.Categoria = *in.Categoria
	}
	if in.UnidadMedida != nil {
		articulo.UnidadMedida = *in.UnidadMedida
	}
	if in.StockMinimo != nil {
		if in.StockMinimo.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		articulo.StockMinimo = *in.StockMinimo
	}
	articulo.UpdatedAt = time.Now()
	if err := uc.articuloRepo.Update(articulo); err != nil {
		return nil, err
	}
	resp := toArticuloResponse(articulo)
	return &resp, nil
}

// List lista artículos anotando total_reservado y stock_disponible derivados.
func (uc *ArticuloUseCase) List(ctx context.Context, limit, offset int) (*dto.ArticuloListResponse, error) {
	articulos, err := uc.articuloRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticuloAnotado, 0, len(articulos))
	for _, a := range articulos {
		reservado, err := uc.reservas.TotalReservado(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		disponible := a.StockActual.Sub(reservado)
		if disponible.LessThan(decimal.Zero) {
			disponible = decimal.Zero
		}
		items = append(items, dto.ArticuloAnotado{
			ArticuloResponse: toArticuloResponse(a),
			TotalReservado:   reservado,
			StockDisponible:  disponible,
		})
	}
	return &dto.ArticuloListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetDetalle devuelve el artículo con sus lotes (y rollos si aplica).
func (uc *ArticuloUseCase) GetDetalle(ctx context.Context, id string) (*dto.ArticuloDetalleResponse, error) {
	articulo, err := uc.articuloRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrNotFound
	}
	ingresos, err := uc.ingresoRepo.ListByArticulo(id)
	if err != nil {
		return nil, err
	}
	out := &dto.ArticuloDetalleResponse{ArticuloResponse: toArticuloResponse(articulo)}
	out.Ingresos = make([]dto.IngresoResponse, 0, len(ingresos))
	for _, i := range ingresos {
		out.Ingresos = append(out.Ingresos, toIngresoResponse(i))
	}
	if articulo.ControlPorRollos {
		rollos, err := uc.rolloRepo.ListByArticulo(id)
		if err != nil {
			return nil, err
		}
		for _, r := range rollos {
			out.Rollos = append(out.Rollos, toRolloResponse(r))
		}
	}
	return out, nil
}
