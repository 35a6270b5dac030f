package produccion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	domainprod "github.com/jmcastro/textil-api/internal/domain/produccion"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

// RegistroUseCase registros de producción (órdenes de corte) y su flujo de
// estados. Un registro abierto reserva inventario vía el BOM de su modelo;
// al pasar a estado terminal las reservas se liberan solas (son derivadas).
type RegistroUseCase struct {
	registroRepo repository.RegistroRepository
	modeloRepo   repository.ModeloRepository
}

// NewRegistroUseCase construye el caso de uso.
func NewRegistroUseCase(registroRepo repository.RegistroRepository, modeloRepo repository.ModeloRepository) *RegistroUseCase {
	return &RegistroUseCase{registroRepo: registroRepo, modeloRepo: modeloRepo}
}

// Create crea un registro en estado PENDIENTE.
func (uc *RegistroUseCase) Create(ctx context.Context, userID string, in dto.CreateRegistroRequest) (*dto.RegistroResponse, error) {
	if in.Codigo == "" || in.ModeloID == "" || len(in.Tallas) == 0 {
		return nil, domain.ErrInvalidInput
	}
	vistas := make(map[string]bool, len(in.Tallas))
	for _, t := range in.Tallas {
		if t.Talla == "" || !t.Cantidad.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if vistas[t.Talla] {
			return nil, domain.ErrInvalidInput
		}
		vistas[t.Talla] = true
	}

	modelo, err := uc.modeloRepo.GetByID(in.ModeloID)
	if err != nil {
		return nil, err
	}
	if modelo == nil {
		return nil, domain.ErrNotFound
	}
	existente, err := uc.registroRepo.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	registro := &entity.Registro{
		ID:            uuid.New().String(),
		Codigo:        in.Codigo,
		ModeloID:      in.ModeloID,
		Estado:        entity.EstadoPendiente,
		Observaciones: in.Observaciones,
		Fecha:         fecha,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     userID,
	}
	for _, t := range in.Tallas {
		registro.Tallas = append(registro.Tallas, entity.CantidadTalla{Talla: t.Talla, Cantidad: t.Cantidad})
	}
	if err := uc.registroRepo.Create(registro); err != nil {
		return nil, err
	}
	resp := toRegistroResponse(registro)
	return &resp, nil
}

// CambiarEstado avanza el registro por el flujo. Una transición no permitida
// responde conflicto, no error de validación: el estado pedido existe pero el
// registro no puede llegar ahí desde donde está.
func (uc *RegistroUseCase) CambiarEstado(ctx context.Context, id string, in dto.CambiarEstadoRequest) (*dto.RegistroResponse, error) {
	if !domainprod.EsEstadoValido(in.Estado) {
		return nil, domain.ErrInvalidInput
	}
	registro, err := uc.registroRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if registro == nil {
		return nil, domain.ErrNotFound
	}
	if !domainprod.PuedeTransicionar(registro.Estado, in.Estado) {
		return nil, domain.ErrConflict
	}
	if err := uc.registroRepo.ActualizarEstado(id, in.Estado); err != nil {
		return nil, err
	}
	registro.Estado = in.Estado
	registro.UpdatedAt = time.Now()
	resp := toRegistroResponse(registro)
	return &resp, nil
}

// GetByID devuelve un registro.
func (uc *RegistroUseCase) GetByID(ctx context.Context, id string) (*dto.RegistroResponse, error) {
	registro, err := uc.registroRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if registro == nil {
		return nil, domain.ErrNotFound
	}
	resp := toRegistroResponse(registro)
	return &resp, nil
}

// List lista registros, opcionalmente filtrados por estado.
func (uc *RegistroUseCase) List(ctx context.Context, estado string, limit, offset int) ([]dto.RegistroResponse, error) {
	if estado != "" && !domainprod.EsEstadoValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	registros, err := uc.registroRepo.List(estado, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RegistroResponse, 0, len(registros))
	for _, r := range registros {
		out = append(out, toRegistroResponse(r))
	}
	return out, nil
}

func toRegistroResponse(r *entity.Registro) dto.RegistroResponse {
	resp := dto.RegistroResponse{
		ID:            r.ID,
		Codigo:        r.Codigo,
		ModeloID:      r.ModeloID,
		Estado:        r.Estado,
		TotalPrendas:  r.TotalPrendas(),
		Observaciones: r.Observaciones,
		Fecha:         r.Fecha,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	for _, t := range r.Tallas {
		resp.Tallas = append(resp.Tallas, dto.TallaInput{Talla: t.Talla, Cantidad: t.Cantidad})
	}
	return resp
}
