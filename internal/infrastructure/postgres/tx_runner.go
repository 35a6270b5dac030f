package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmcastro/textil-api/internal/application/inventory"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	articuloRepo repository.ArticuloRepository,
	ingresoRepo repository.IngresoRepository,
	salidaRepo repository.SalidaRepository,
	ajusteRepo repository.AjusteRepository,
	rolloRepo repository.RolloRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	articuloRepo := NewArticuloRepository(tx)
	ingresoRepo := NewIngresoRepository(tx)
	salidaRepo := NewSalidaRepository(tx)
	ajusteRepo := NewAjusteRepository(tx)
	rolloRepo := NewRolloRepository(tx)

	if err := fn(articuloRepo, ingresoRepo, salidaRepo, ajusteRepo, rolloRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
