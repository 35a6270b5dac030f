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

// RegistrarIngresoUseCase registra recepciones de inventario: crea el lote
// (cantidad_disponible = cantidad), suma al agregado del artículo y, si el
// artículo se controla por rollos, da de alta los rollos; todo en una transacción.
type RegistrarIngresoUseCase struct {
	txRunner     TxRunner
	articuloRepo repository.ArticuloRepository
}

// NewRegistrarIngresoUseCase construye el caso de uso.
func NewRegistrarIngresoUseCase(txRunner TxRunner, articuloRepo repository.ArticuloRepository) *RegistrarIngresoUseCase {
	return &RegistrarIngresoUseCase{txRunner: txRunner, articuloRepo: articuloRepo}
}

// RegistrarIngreso valida la entrada, bloquea la fila del artículo y persiste
// lote + rollos + nuevo stock_actual con Commit o Rollback.
func (uc *RegistrarIngresoUseCase) RegistrarIngreso(ctx context.Context, userID string, in dto.RegistrarIngresoRequest) (*dto.IngresoResponse, error) {
	if in.ArticuloID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Cantidad.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.CostoUnitario.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	existente, err := uc.articuloRepo.GetByID(in.ArticuloID)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrNotFound
	}
	if existente.ControlPorRollos && len(in.Rollos) > 0 {
		suma := decimal.Zero
		for _, r := range in.Rollos {
			if !r.Metraje.GreaterThan(decimal.Zero) {
				return nil, domain.ErrInvalidInput
			}
			suma = suma.Add(r.Metraje)
		}
		// Los metrajes de los rollos deben cubrir exactamente la cantidad del lote.
		if !suma.Equal(in.Cantidad) {
			return nil, domain.ErrInvalidInput
		}
	}
	if !existente.ControlPorRollos && len(in.Rollos) > 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	ingreso := &entity.Ingreso{
		ID:                 uuid.New().String(),
		ArticuloID:         in.ArticuloID,
		Cantidad:           in.Cantidad,
		CostoUnitario:      in.CostoUnitario,
		CantidadDisponible: in.Cantidad,
		Proveedor:          in.Proveedor,
		NumeroDocumento:    in.NumeroDocumento,
		Observaciones:      in.Observaciones,
		Fecha:              now,
		CreatedBy:          userID,
	}

	err = uc.txRunner.Run(ctx, func(
		articuloRepo repository.ArticuloRepository,
		ingresoRepo repository.IngresoRepository,
		_ repository.SalidaRepository,
		_ repository.AjusteRepository,
		rolloRepo repository.RolloRepository,
	) error {
		// Bloquea la fila del artículo: serializa con salidas y ajustes concurrentes
		articulo, err := articuloRepo.GetForUpdate(in.ArticuloID)
		if err != nil {
			return err
		}
		if articulo == nil {
			return domain.ErrNotFound
		}
		if err := ingresoRepo.Create(ingreso); err != nil {
			return err
		}
		for _, r := range in.Rollos {
			rollo := &entity.Rollo{
				ID:                uuid.New().String(),
				ArticuloID:        in.ArticuloID,
				IngresoID:         ingreso.ID,
				Numero:            r.Numero,
				MetrajeTotal:      r.Metraje,
				MetrajeDisponible: r.Metraje,
				Ancho:             r.Ancho,
				Tono:              r.Tono,
				Activo:            true,
				CreatedAt:         now,
			}
			if err := rolloRepo.Create(rollo); err != nil {
				return err
			}
		}
		return articuloRepo.ActualizarStock(in.ArticuloID, articulo.StockActual.Add(in.Cantidad))
	})
	if err != nil {
		return nil, err
	}

	resp := toIngresoResponse(ingreso)
	return &resp, nil
}
