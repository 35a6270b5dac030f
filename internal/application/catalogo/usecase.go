package catalogo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

// UseCase CRUD de los catálogos simples (marcas, telas, colores, tallas,
// hilos). Todos comparten forma: id + nombre único dentro del tipo.
type UseCase struct {
	repo repository.CatalogoRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CatalogoRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create agrega un ítem al catálogo del tipo dado.
func (uc *UseCase) Create(ctx context.Context, tipo string, in dto.ItemCatalogoRequest) (*dto.ItemCatalogoResponse, error) {
	if !entity.TipoCatalogoValido(tipo) {
		return nil, domain.ErrNotFound
	}
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.repo.GetByNombre(tipo, in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.ItemCatalogo{
		ID:        uuid.New().String(),
		Tipo:      tipo,
		Nombre:    in.Nombre,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	resp := toResponse(item)
	return &resp, nil
}

// Update renombra un ítem. El nuevo nombre no puede chocar con otro ítem del mismo tipo.
func (uc *UseCase) Update(ctx context.Context, tipo, id string, in dto.ItemCatalogoRequest) (*dto.ItemCatalogoResponse, error) {
	if !entity.TipoCatalogoValido(tipo) {
		return nil, domain.ErrNotFound
	}
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(tipo, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	otro, err := uc.repo.GetByNombre(tipo, in.Nombre)
	if err != nil {
		return nil, err
	}
	if otro != nil && otro.ID != item.ID {
		return nil, domain.ErrDuplicate
	}
	item.Nombre = in.Nombre
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	resp := toResponse(item)
	return &resp, nil
}

// Delete elimina un ítem del catálogo.
func (uc *UseCase) Delete(ctx context.Context, tipo, id string) error {
	if !entity.TipoCatalogoValido(tipo) {
		return domain.ErrNotFound
	}
	item, err := uc.repo.GetByID(tipo, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tipo, id)
}

// List lista los ítems de un catálogo.
func (uc *UseCase) List(ctx context.Context, tipo string) ([]dto.ItemCatalogoResponse, error) {
	if !entity.TipoCatalogoValido(tipo) {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.List(tipo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemCatalogoResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toResponse(item))
	}
	return out, nil
}

func toResponse(item *entity.ItemCatalogo) dto.ItemCatalogoResponse {
	return dto.ItemCatalogoResponse{
		ID:        item.ID,
		Tipo:      item.Tipo,
		Nombre:    item.Nombre,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
