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

// Etapas de servicio tercerizado.
const (
	EtapaCorte      = "CORTE"
	EtapaConfeccion = "CONFECCION"
	EtapaAcabado    = "ACABADO"
)

// MovimientoUseCase movimientos de servicio: entrega de prendas de un registro
// a un trabajador/taller por etapa y su posterior devolución.
type MovimientoUseCase struct {
	movimientoRepo repository.MovimientoServicioRepository
	registroRepo   repository.RegistroRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(
	movimientoRepo repository.MovimientoServicioRepository,
	registroRepo repository.RegistroRepository,
) *MovimientoUseCase {
	return &MovimientoUseCase{movimientoRepo: movimientoRepo, registroRepo: registroRepo}
}

func etapaValida(etapa string) bool {
	switch etapa {
	case EtapaCorte, EtapaConfeccion, EtapaAcabado:
		return true
	}
	return false
}

// Create registra la entrega de prendas a un trabajador.
func (uc *MovimientoUseCase) Create(ctx context.Context, userID string, in dto.CreateMovimientoRequest) (*dto.MovimientoResponse, error) {
	if in.RegistroID == "" || !etapaValida(in.Etapa) || in.TrabajadorDestino == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Cantidad.GreaterThan(decimal.Zero) || in.PrecioUnitario.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	registro, err := uc.registroRepo.GetByID(in.RegistroID)
	if err != nil {
		return nil, err
	}
	if registro == nil {
		return nil, domain.ErrNotFound
	}
	// No se entregan más prendas de las que el registro produce.
	if in.Cantidad.GreaterThan(registro.TotalPrendas()) {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.MovimientoServicio{
		ID:                uuid.New().String(),
		RegistroID:        in.RegistroID,
		Etapa:             in.Etapa,
		TrabajadorOrigen:  in.TrabajadorOrigen,
		TrabajadorDestino: in.TrabajadorDestino,
		Cantidad:          in.Cantidad,
		PrecioUnitario:    in.PrecioUnitario,
		Observaciones:     in.Observaciones,
		FechaEntrega:      time.Now(),
		CreatedAt:         time.Now(),
		CreatedBy:         userID,
	}
	if err := uc.movimientoRepo.Create(mov); err != nil {
		return nil, err
	}
	resp := toMovimientoResponse(mov)
	return &resp, nil
}

// RegistrarDevolucion marca la devolución de las prendas entregadas.
// Devolver dos veces el mismo movimiento responde conflicto.
func (uc *MovimientoUseCase) RegistrarDevolucion(ctx context.Context, id string) (*dto.MovimientoResponse, error) {
	mov, err := uc.movimientoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	if mov.FechaDevolucion != nil {
		return nil, domain.ErrConflict
	}
	if err := uc.movimientoRepo.RegistrarDevolucion(id); err != nil {
		return nil, err
	}
	now := time.Now()
	mov.FechaDevolucion = &now
	resp := toMovimientoResponse(mov)
	return &resp, nil
}

// ListByRegistro lista los movimientos de un registro.
func (uc *MovimientoUseCase) ListByRegistro(ctx context.Context, registroID string) ([]dto.MovimientoResponse, error) {
	registro, err := uc.registroRepo.GetByID(registroID)
	if err != nil {
		return nil, err
	}
	if registro == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movimientoRepo.ListByRegistro(registroID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovimientoResponse(m))
	}
	return out, nil
}

func toMovimientoResponse(m *entity.MovimientoServicio) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:                m.ID,
		RegistroID:        m.RegistroID,
		Etapa:             m.Etapa,
		TrabajadorOrigen:  m.TrabajadorOrigen,
		TrabajadorDestino: m.TrabajadorDestino,
		Cantidad:          m.Cantidad,
		PrecioUnitario:    m.PrecioUnitario,
		Observaciones:     m.Observaciones,
		FechaEntrega:      m.FechaEntrega,
		FechaDevolucion:   m.FechaDevolucion,
	}
}
