package postgres

import (
	"context"
	"fmt"

	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

var _ repository.AjusteRepository = (*AjusteRepo)(nil)

// AjusteRepo implementación del puerto AjusteRepository sobre PostgreSQL (usable con pool o tx).
type AjusteRepo struct {
	q Querier
}

// NewAjusteRepository construye el adaptador de persistencia para ajustes. Pasar pool o tx (Querier).
func NewAjusteRepository(q Querier) *AjusteRepo {
	return &AjusteRepo{q: q}
}

// Create persiste un ajuste manual.
func (r *AjusteRepo) Create(a *entity.Ajuste) error {
	query := `
		INSERT INTO ajustes (id, articulo_id, tipo, cantidad, motivo, observaciones, fecha, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ArticuloID, a.Tipo, a.Cantidad, a.Motivo, a.Observaciones, a.Fecha, a.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert ajuste: %w", err)
	}
	return nil
}

// ListByArticulo lista los ajustes de un artículo, del más reciente al más antiguo.
func (r *AjusteRepo) ListByArticulo(articuloID string, limit, offset int) ([]*entity.Ajuste, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, articulo_id, tipo, cantidad, motivo, observaciones, fecha, created_by
		 FROM ajustes WHERE articulo_id = $1 ORDER BY fecha DESC, id LIMIT $2 OFFSET $3`,
		articuloID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list ajustes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Ajuste
	for rows.Next() {
		var a entity.Ajuste
		if err := rows.Scan(&a.ID, &a.ArticuloID, &a.Tipo, &a.Cantidad, &a.Motivo, &a.Observaciones, &a.Fecha, &a.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan ajuste: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
