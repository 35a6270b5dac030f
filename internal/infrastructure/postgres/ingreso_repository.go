package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

var _ repository.IngresoRepository = (*IngresoRepo)(nil)

const ingresoColumns = `id, articulo_id, cantidad, costo_unitario, cantidad_disponible, proveedor, numero_documento, observaciones, fecha, created_by`

// IngresoRepo implementación del puerto IngresoRepository sobre PostgreSQL (usable con pool o tx).
type IngresoRepo struct {
	q Querier
}

// NewIngresoRepository construye el adaptador de persistencia para ingresos (lotes). Pasar pool o tx (Querier).
func NewIngresoRepository(q Querier) *IngresoRepo {
	return &IngresoRepo{q: q}
}

// Create persiste un nuevo lote.
func (r *IngresoRepo) Create(i *entity.Ingreso) error {
	query := `
		INSERT INTO ingresos (id, articulo_id, cantidad, costo_unitario, cantidad_disponible, proveedor, numero_documento, observaciones, fecha, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		i.ID, i.ArticuloID, i.Cantidad, i.CostoUnitario, i.CantidadDisponible,
		i.Proveedor, i.NumeroDocumento, i.Observaciones, i.Fecha, i.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert ingreso: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *IngresoRepo) GetByID(id string) (*entity.Ingreso, error) {
	var i entity.Ingreso
	err := r.q.QueryRow(context.Background(),
		`SELECT `+ingresoColumns+` FROM ingresos WHERE id = $1`, id,
	).Scan(
		&i.ID, &i.ArticuloID, &i.Cantidad, &i.CostoUnitario, &i.CantidadDisponible,
		&i.Proveedor, &i.NumeroDocumento, &i.Observaciones, &i.Fecha, &i.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingreso: %w", err)
	}
	return &i, nil
}

func (r *IngresoRepo) list(query string, args ...any) ([]*entity.Ingreso, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Ingreso
	for rows.Next() {
		var i entity.Ingreso
		if err := rows.Scan(
			&i.ID, &i.ArticuloID, &i.Cantidad, &i.CostoUnitario, &i.CantidadDisponible,
			&i.Proveedor, &i.NumeroDocumento, &i.Observaciones, &i.Fecha, &i.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan ingreso: %w", err)
		}
		out = append(out, &i)
	}
	return out, rows.Err()
}

// ListByArticulo lista los lotes de un artículo, del más antiguo al más reciente.
func (r *IngresoRepo) ListByArticulo(articuloID string) ([]*entity.Ingreso, error) {
	out, err := r.list(
		`SELECT `+ingresoColumns+` FROM ingresos WHERE articulo_id = $1 ORDER BY fecha, id`,
		articuloID,
	)
	if err != nil {
		return nil, fmt.Errorf("list ingresos: %w", err)
	}
	return out, nil
}

// ListDisponiblesForUpdate lista los lotes con disponibilidad, del más antiguo
// al más reciente, bloqueando sus filas. Solo tiene sentido dentro de una tx.
func (r *IngresoRepo) ListDisponiblesForUpdate(articuloID string) ([]*entity.Ingreso, error) {
	out, err := r.list(
		`SELECT `+ingresoColumns+` FROM ingresos WHERE articulo_id = $1 AND cantidad_disponible > 0 ORDER BY fecha, id FOR UPDATE`,
		articuloID,
	)
	if err != nil {
		return nil, fmt.Errorf("list ingresos disponibles: %w", err)
	}
	return out, nil
}

// Descontar resta cantidad de la disponibilidad del lote. El CHECK de la tabla
// (cantidad_disponible >= 0) respalda al asignador ante cualquier descuadre.
func (r *IngresoRepo) Descontar(id string, cantidad decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ingresos SET cantidad_disponible = cantidad_disponible - $2 WHERE id = $1`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("descontar ingreso: %w", err)
	}
	return nil
}

// TotalDisponible suma la disponibilidad de todos los lotes del artículo.
func (r *IngresoRepo) TotalDisponible(articuloID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(cantidad_disponible), 0) FROM ingresos WHERE articulo_id = $1`,
		articuloID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total disponible: %w", err)
	}
	return total, nil
}
