package inventory

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

// RegistrarAjusteUseCase aplica correcciones manuales de stock fuera del libro
// de lotes: solo mueve el agregado del artículo. Una entrada por ajuste no crea
// lote, por lo que en artículos con lotes el agregado puede superar la
// disponibilidad del libro (ver reporte de cuadre).
type RegistrarAjusteUseCase struct {
	txRunner     TxRunner
	articuloRepo repository.ArticuloRepository
	ajusteRepo   repository.AjusteRepository
}

// NewRegistrarAjusteUseCase construye el caso de uso.
func NewRegistrarAjusteUseCase(txRunner TxRunner, articuloRepo repository.ArticuloRepository, ajusteRepo repository.AjusteRepository) *RegistrarAjusteUseCase {
	return &RegistrarAjusteUseCase{txRunner: txRunner, articuloRepo: articuloRepo, ajusteRepo: ajusteRepo}
}

// RegistrarAjuste valida y aplica el ajuste en una transacción con la fila del
// artículo bloqueada. Una salida que exceda el agregado falla sin tocar nada.
func (uc *RegistrarAjusteUseCase) RegistrarAjuste(ctx context.Context, userID string, in dto.RegistrarAjusteRequest) (*dto.AjusteResponse, error) {
	if in.ArticuloID == "" || in.Motivo == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.AjusteEntrada && in.Tipo != entity.AjusteSalida {
		return nil, domain.ErrInvalidInput
	}
	if !in.Cantidad.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	existente, err := uc.articuloRepo.GetByID(in.ArticuloID)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrNotFound
	}

	ajuste := &entity.Ajuste{
		ID:            uuid.New().String(),
		ArticuloID:    in.ArticuloID,
		Tipo:          in.Tipo,
		Cantidad:      in.Cantidad,
		Motivo:        in.Motivo,
		Observaciones: in.Observaciones,
		Fecha:         time.Now(),
		CreatedBy:     userID,
	}

	err = uc.txRunner.Run(ctx, func(
		articuloRepo repository.ArticuloRepository,
		_ repository.IngresoRepository,
		_ repository.SalidaRepository,
		ajusteRepo repository.AjusteRepository,
		_ repository.RolloRepository,
	) error {
		articulo, err := articuloRepo.GetForUpdate(in.ArticuloID)
		if err != nil {
			return err
		}
		if articulo == nil {
			return domain.ErrNotFound
		}
		nuevo := articulo.StockActual
		if in.Tipo == entity.AjusteEntrada {
			nuevo = nuevo.Add(in.Cantidad)
		} else {
			if in.Cantidad.GreaterThan(articulo.StockActual) {
				return domain.NewStockInsuficiente(articulo.Codigo, in.Cantidad, articulo.StockActual)
			}
			nuevo = nuevo.Sub(in.Cantidad)
		}
		if err := ajusteRepo.Create(ajuste); err != nil {
			return err
		}
		return articuloRepo.ActualizarStock(in.ArticuloID, nuevo)
	})
	if err != nil {
		return nil, err
	}

	resp := toAjusteResponse(ajuste)
	return &resp, nil
}

// ListByArticulo devuelve el historial de ajustes de un artículo, más reciente
// primero.
func (uc *RegistrarAjusteUseCase) ListByArticulo(articuloID string, limit, offset int) ([]dto.AjusteResponse, error) {
	articulo, err := uc.articuloRepo.GetByID(articuloID)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrNotFound
	}
	ajustes, err := uc.ajusteRepo.ListByArticulo(articuloID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AjusteResponse, 0, len(ajustes))
	for _, a := range ajustes {
		out = append(out, toAjusteResponse(a))
	}
	return out, nil
}
