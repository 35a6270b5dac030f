package produccion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

// ModeloUseCase CRUD de modelos y su lista de materiales (BOM).
// Editar el BOM afecta de inmediato las reservas derivadas de los registros
// abiertos del modelo.
type ModeloUseCase struct {
	modeloRepo   repository.ModeloRepository
	articuloRepo repository.ArticuloRepository
	catalogoRepo repository.CatalogoRepository
}

// NewModeloUseCase construye el caso de uso.
func NewModeloUseCase(
	modeloRepo repository.ModeloRepository,
	articuloRepo repository.ArticuloRepository,
	catalogoRepo repository.CatalogoRepository,
) *ModeloUseCase {
	return &ModeloUseCase{modeloRepo: modeloRepo, articuloRepo: articuloRepo, catalogoRepo: catalogoRepo}
}

func (uc *ModeloUseCase) validarConsumos(in []dto.ConsumoInput) error {
	for _, c := range in {
		if c.ArticuloID == "" {
			return domain.ErrInvalidInput
		}
		if !c.CantidadPorPrenda.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		articulo, err := uc.articuloRepo.GetByID(c.ArticuloID)
		if err != nil {
			return err
		}
		if articulo == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (uc *ModeloUseCase) validarReferencias(marcaID, telaID string) error {
	if marcaID != "" {
		marca, err := uc.catalogoRepo.GetByID(entity.CatalogoMarcas, marcaID)
		if err != nil {
			return err
		}
		if marca == nil {
			return domain.ErrNotFound
		}
	}
	if telaID != "" {
		tela, err := uc.catalogoRepo.GetByID(entity.CatalogoTelas, telaID)
		if err != nil {
			return err
		}
		if tela == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// Create crea un modelo con su BOM inicial.
func (uc *ModeloUseCase) Create(ctx context.Context, in dto.CreateModeloRequest) (*dto.ModeloResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.modeloRepo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.validarReferencias(in.MarcaID, in.TelaID); err != nil {
		return nil, err
	}
	if err := uc.validarConsumos(in.Consumos); err != nil {
		return nil, err
	}

	now := time.Now()
	modelo := &entity.Modelo{
		ID:        uuid.New().String(),
		Codigo:    in.Codigo,
		Nombre:    in.Nombre,
		MarcaID:   in.MarcaID,
		TelaID:    in.TelaID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, c := range in.Consumos {
		modelo.Consumos = append(modelo.Consumos, entity.ConsumoModelo{
			ID:                uuid.New().String(),
			ModeloID:          modelo.ID,
			ArticuloID:        c.ArticuloID,
			CantidadPorPrenda: c.CantidadPorPrenda,
			Talla:             c.Talla,
			Observaciones:     c.Observaciones,
		})
	}
	if err := uc.modeloRepo.Create(modelo); err != nil {
		return nil, err
	}
	resp := toModeloResponse(modelo)
	return &resp, nil
}

// Update actualiza el modelo; Consumos no nil reemplaza el BOM completo.
func (uc *ModeloUseCase) Update(ctx context.Context, id string, in dto.UpdateModeloRequest) (*dto.ModeloResponse, error) {
	modelo, err := uc.modeloRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if modelo == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		modelo.Nombre = *in.Nombre
	}
	if in.MarcaID != nil {
		if err := uc.validarReferencias(*in.MarcaID, ""); err != nil {
			return nil, err
		}
		modelo.MarcaID = *in.MarcaID
	}
	if in.TelaID != nil {
		if err := uc.validarReferencias("", *in.TelaID); err != nil {
			return nil, err
		}
		modelo.TelaID = *in.TelaID
	}
	modelo.UpdatedAt = time.Now()
	if err := uc.modeloRepo.Update(modelo); err != nil {
		return nil, err
	}

	if in.Consumos != nil {
		if err := uc.validarConsumos(in.Consumos); err != nil {
			return nil, err
		}
		consumos := make([]entity.ConsumoModelo, 0, len(in.Consumos))
		for _, c := range in.Consumos {
			consumos = append(consumos, entity.ConsumoModelo{
				ID:                uuid.New().String(),
				ModeloID:          modelo.ID,
				ArticuloID:        c.ArticuloID,
				CantidadPorPrenda: c.CantidadPorPrenda,
				Talla:             c.Talla,
				Observaciones:     c.Observaciones,
			})
		}
		if err := uc.modeloRepo.ReemplazarConsumos(modelo.ID, consumos); err != nil {
			return nil, err
		}
		modelo.Consumos = consumos
	}

	resp := toModeloResponse(modelo)
	return &resp, nil
}

// GetByID devuelve el modelo con su BOM.
func (uc *ModeloUseCase) GetByID(ctx context.Context, id string) (*dto.ModeloResponse, error) {
	modelo, err := uc.modeloRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if modelo == nil {
		return nil, domain.ErrNotFound
	}
	resp := toModeloResponse(modelo)
	return &resp, nil
}

// List lista modelos.
func (uc *ModeloUseCase) List(ctx context.Context, limit, offset int) ([]dto.ModeloResponse, error) {
	modelos, err := uc.modeloRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ModeloResponse, 0, len(modelos))
	for _, m := range modelos {
		out = append(out, toModeloResponse(m))
	}
	return out, nil
}

func toModeloResponse(m *entity.Modelo) dto.ModeloResponse {
	resp := dto.ModeloResponse{
		ID:        m.ID,
		Codigo:    m.Codigo,
		Nombre:    m.Nombre,
		MarcaID:   m.MarcaID,
		TelaID:    m.TelaID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for _, c := range m.Consumos {
		resp.Consumos = append(resp.Consumos, dto.ConsumoResponse{
			ID:                c.ID,
			ArticuloID:        c.ArticuloID,
			CantidadPorPrenda: c.CantidadPorPrenda,
			Talla:             c.Talla,
			Observaciones:     c.Observaciones,
		})
	}
	return resp
}
