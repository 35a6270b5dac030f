package inventory

import (
	"context"

	"github.com/jmcastro/textil-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que lote + agregado + movimiento
// se confirmen juntos o no se confirme nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		articuloRepo repository.ArticuloRepository,
		ingresoRepo repository.IngresoRepository,
		salidaRepo repository.SalidaRepository,
		ajusteRepo repository.AjusteRepository,
		rolloRepo repository.RolloRepository,
	) error) error
}
