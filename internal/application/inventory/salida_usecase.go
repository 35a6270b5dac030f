package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmcastro/textil-api/internal/application/dto"
	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	domaininv "github.com/jmcastro/textil-api/internal/domain/inventory"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

// RegistrarSalidaUseCase registra salidas de inventario asignadas por FIFO:
// bloquea el artículo, carga los lotes disponibles (FOR UPDATE), asigna con el
// servicio de dominio, descuenta lote a lote y persiste la salida con su
// desglose y costo; todo o nada, en una sola transacción.
type RegistrarSalidaUseCase struct {
	txRunner     TxRunner
	articuloRepo repository.ArticuloRepository
	registroRepo repository.RegistroRepository
	salidaRepo   repository.SalidaRepository
}

// NewRegistrarSalidaUseCase construye el caso de uso. salidaRepo (atado al
// pool) solo se usa para lecturas; las escrituras van por el TxRunner.
func NewRegistrarSalidaUseCase(
	txRunner TxRunner,
	articuloRepo repository.ArticuloRepository,
	registroRepo repository.RegistroRepository,
	salidaRepo repository.SalidaRepository,
) *RegistrarSalidaUseCase {
	return &RegistrarSalidaUseCase{txRunner: txRunner, articuloRepo: articuloRepo, registroRepo: registroRepo, salidaRepo: salidaRepo}
}

// RegistrarSalida valida y ejecuta la salida. Si el artículo se controla por
// rollos, la asignación corre sobre rollos (fijado con rollo_id, o el pool del
// más antiguo al más reciente) y los descuentos se reflejan en el lote de
// origen de cada rollo para conservar el invariante del libro.
func (uc *RegistrarSalidaUseCase) RegistrarSalida(ctx context.Context, userID string, in dto.RegistrarSalidaRequest) (*dto.SalidaResponse, error) {
	if in.ArticuloID == "" || !in.Cantidad.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	articulo, err := uc.articuloRepo.GetByID(in.ArticuloID)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrNotFound
	}
	if in.RolloID != nil && !articulo.ControlPorRollos {
		return nil, domain.ErrInvalidInput
	}
	if in.RegistroID != nil {
		registro, err := uc.registroRepo.GetByID(*in.RegistroID)
		if err != nil {
			return nil, err
		}
		if registro == nil {
			return nil, domain.ErrNotFound
		}
	}

	salida := &entity.Salida{
		ID:            uuid.New().String(),
		ArticuloID:    in.ArticuloID,
		Cantidad:      in.Cantidad,
		RegistroID:    in.RegistroID,
		Observaciones: in.Observaciones,
		Fecha:         time.Now(),
		CreatedBy:     userID,
	}

	err = uc.txRunner.Run(ctx, func(
		articuloRepo repository.ArticuloRepository,
		ingresoRepo repository.IngresoRepository,
		salidaRepo repository.SalidaRepository,
		_ repository.AjusteRepository,
		rolloRepo repository.RolloRepository,
	) error {
		// Bloquea la fila del artículo: dos salidas concurrentes sobre el mismo
		// artículo se serializan aquí; artículos distintos no se bloquean entre sí.
		art, err := articuloRepo.GetForUpdate(in.ArticuloID)
		if err != nil {
			return err
		}
		if art == nil {
			return domain.ErrNotFound
		}

		if art.ControlPorRollos {
			err = uc.asignarPorRollos(art, in, salida, ingresoRepo, rolloRepo)
		} else {
			err = uc.asignarPorLotes(art, in.Cantidad, salida, ingresoRepo)
		}
		if err != nil {
			return err
		}

		if err := salidaRepo.Create(salida); err != nil {
			return err
		}
		return articuloRepo.ActualizarStock(art.ID, art.StockActual.Sub(in.Cantidad))
	})
	if err != nil {
		return nil, err
	}

	resp := toSalidaResponse(salida)
	return &resp, nil
}

// asignarPorLotes recorre los ingresos disponibles del más antiguo al más
// reciente y descuenta según el desglose del asignador.
func (uc *RegistrarSalidaUseCase) asignarPorLotes(
	articulo *entity.Articulo,
	cantidad decimal.Decimal,
	salida *entity.Salida,
	ingresoRepo repository.IngresoRepository,
) error {
	ingresos, err := ingresoRepo.ListDisponiblesForUpdate(articulo.ID)
	if err != nil {
		return err
	}
	lotes := make([]domaininv.Lote, 0, len(ingresos))
	for i, ing := range ingresos {
		lotes = append(lotes, domaininv.Lote{
			ID:            ing.ID,
			Disponible:    ing.CantidadDisponible,
			CostoUnitario: ing.CostoUnitario,
			Fecha:         ing.Fecha,
			Orden:         i,
		})
	}
	asignacion, err := domaininv.Asignar(articulo.Codigo, cantidad, lotes)
	if err != nil {
		return err
	}
	for _, c := range asignacion.Consumos {
		if err := ingresoRepo.Descontar(c.LoteID, c.Cantidad); err != nil {
			return err
		}
		salida.Detalle = append(salida.Detalle, entity.DetalleFifo{
			IngresoID:     c.LoteID,
			Cantidad:      c.Cantidad,
			CostoUnitario: c.CostoUnitario,
		})
	}
	salida.CostoTotal = asignacion.CostoTotal
	return nil
}

// asignarPorRollos asigna sobre rollos individuales. Con rollo_id el retiro se
// fija a ese rollo; sin él, el pool de rollos activos se consume del más
// antiguo al más reciente con el mismo asignador. Cada descuento de rollo se
// refleja en su ingreso de origen.
func (uc *RegistrarSalidaUseCase) asignarPorRollos(
	articulo *entity.Articulo,
	in dto.RegistrarSalidaRequest,
	salida *entity.Salida,
	ingresoRepo repository.IngresoRepository,
	rolloRepo repository.RolloRepository,
) error {
	var rollos []*entity.Rollo
	if in.RolloID != nil {
		rollo, err := rolloRepo.GetForUpdate(*in.RolloID)
		if err != nil {
			return err
		}
		if rollo == nil || rollo.ArticuloID != articulo.ID || !rollo.Activo {
			return domain.ErrNotFound
		}
		rollos = []*entity.Rollo{rollo}
	} else {
		var err error
		rollos, err = rolloRepo.ListActivosForUpdate(articulo.ID)
		if err != nil {
			return err
		}
	}

	// El costo viene del lote de origen de cada rollo.
	costoPorIngreso := make(map[string]decimal.Decimal)
	fechaPorIngreso := make(map[string]time.Time)
	for _, r := range rollos {
		if _, ok := costoPorIngreso[r.IngresoID]; ok {
			continue
		}
		ingreso, err := ingresoRepo.GetByID(r.IngresoID)
		if err != nil {
			return err
		}
		if ingreso == nil {
			return domain.ErrNotFound
		}
		costoPorIngreso[r.IngresoID] = ingreso.CostoUnitario
		fechaPorIngreso[r.IngresoID] = ingreso.Fecha
	}

	lotes := make([]domaininv.Lote, 0, len(rollos))
	ingresoDeRollo := make(map[string]string, len(rollos))
	for i, r := range rollos {
		ingresoDeRollo[r.ID] = r.IngresoID
		lotes = append(lotes, domaininv.Lote{
			ID:            r.ID,
			Disponible:    r.MetrajeDisponible,
			CostoUnitario: costoPorIngreso[r.IngresoID],
			Fecha:         fechaPorIngreso[r.IngresoID],
			Orden:         i,
		})
	}
	asignacion, err := domaininv.Asignar(articulo.Codigo, in.Cantidad, lotes)
	if err != nil {
		return err
	}
	for _, c := range asignacion.Consumos {
		if err := rolloRepo.Descontar(c.LoteID, c.Cantidad); err != nil {
			return err
		}
		if err := ingresoRepo.Descontar(ingresoDeRollo[c.LoteID], c.Cantidad); err != nil {
			return err
		}
		salida.Detalle = append(salida.Detalle, entity.DetalleFifo{
			IngresoID:     ingresoDeRollo[c.LoteID],
			RolloID:       c.LoteID,
			Cantidad:      c.Cantidad,
			CostoUnitario: c.CostoUnitario,
		})
	}
	salida.CostoTotal = asignacion.CostoTotal
	return nil
}

// ListByArticulo historial de salidas de un artículo.
func (uc *RegistrarSalidaUseCase) ListByArticulo(articuloID string, limit, offset int) ([]dto.SalidaResponse, error) {
	salidas, err := uc.salidaRepo.ListByArticulo(articuloID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalidaResponse, 0, len(salidas))
	for _, s := range salidas {
		out = append(out, toSalidaResponse(s))
	}
	return out, nil
}
