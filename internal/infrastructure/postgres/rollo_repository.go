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

var _ repository.RolloRepository = (*RolloRepo)(nil)

const rolloColumns = `id, articulo_id, ingreso_id, numero, metraje_total, metraje_disponible, ancho, tono, activo, created_at`

// RolloRepo implementación del puerto RolloRepository sobre PostgreSQL (usable con pool o tx).
type RolloRepo struct {
	q Querier
}

// NewRolloRepository construye el adaptador de persistencia para rollos. Pasar pool o tx (Querier).
func NewRolloRepository(q Querier) *RolloRepo {
	return &RolloRepo{q: q}
}

// Create persiste un rollo.
func (r *RolloRepo) Create(rollo *entity.Rollo) error {
	query := `
		INSERT INTO rollos (id, articulo_id, ingreso_id, numero, metraje_total, metraje_disponible, ancho, tono, activo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		rollo.ID, rollo.ArticuloID, rollo.IngresoID, rollo.Numero,
		rollo.MetrajeTotal, rollo.MetrajeDisponible, rollo.Ancho, rollo.Tono,
		rollo.Activo, rollo.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rollo: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el rollo bloqueando su fila. Solo tiene sentido dentro de una tx.
func (r *RolloRepo) GetForUpdate(id string) (*entity.Rollo, error) {
	var rollo entity.Rollo
	err := r.q.QueryRow(context.Background(),
		`SELECT `+rolloColumns+` FROM rollos WHERE id = $1 FOR UPDATE`, id,
	).Scan(
		&rollo.ID, &rollo.ArticuloID, &rollo.IngresoID, &rollo.Numero,
		&rollo.MetrajeTotal, &rollo.MetrajeDisponible, &rollo.Ancho, &rollo.Tono,
		&rollo.Activo, &rollo.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rollo for update: %w", err)
	}
	return &rollo, nil
}

func (r *RolloRepo) list(query string, args ...any) ([]*entity.Rollo, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Rollo
	for rows.Next() {
		var rollo entity.Rollo
		if err := rows.Scan(
			&rollo.ID, &rollo.ArticuloID, &rollo.IngresoID, &rollo.Numero,
			&rollo.MetrajeTotal, &rollo.MetrajeDisponible, &rollo.Ancho, &rollo.Tono,
			&rollo.Activo, &rollo.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rollo: %w", err)
		}
		out = append(out, &rollo)
	}
	return out, rows.Err()
}

// ListActivosForUpdate lista los rollos activos con metraje, en orden de
// llegada de su lote, bloqueando sus filas. Solo tiene sentido dentro de una tx.
func (r *RolloRepo) ListActivosForUpdate(articuloID string) ([]*entity.Rollo, error) {
	out, err := r.list(
		`SELECT r.id, r.articulo_id, r.ingreso_id, r.numero, r.metraje_total, r.metraje_disponible, r.ancho, r.tono, r.activo, r.created_at
		 FROM rollos r
		 JOIN ingresos i ON i.id = r.ingreso_id
		 WHERE r.articulo_id = $1 AND r.activo AND r.metraje_disponible > 0
		 ORDER BY i.fecha, r.numero, r.id
		 FOR UPDATE OF r`,
		articuloID,
	)
	if err != nil {
		return nil, fmt.Errorf("list rollos activos: %w", err)
	}
	return out, nil
}

// ListByArticulo lista todos los rollos de un artículo.
func (r *RolloRepo) ListByArticulo(articuloID string) ([]*entity.Rollo, error) {
	out, err := r.list(
		`SELECT `+rolloColumns+` FROM rollos WHERE articulo_id = $1 ORDER BY created_at, numero`,
		articuloID,
	)
	if err != nil {
		return nil, fmt.Errorf("list rollos: %w", err)
	}
	return out, nil
}

// Descontar resta metraje del rollo; al llegar a cero el rollo queda inactivo.
func (r *RolloRepo) Descontar(id string, cantidad decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE rollos
		 SET metraje_disponible = metraje_disponible - $2,
		     activo = (metraje_disponible - $2) > 0
		 WHERE id = $1`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("descontar rollo: %w", err)
	}
	return nil
}
