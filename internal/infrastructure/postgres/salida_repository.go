package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

var _ repository.SalidaRepository = (*SalidaRepo)(nil)

// SalidaRepo implementación del puerto SalidaRepository sobre PostgreSQL (usable con pool o tx).
// El desglose FIFO vive en salida_detalles, una fila por lote consumido.
type SalidaRepo struct {
	q Querier
}

// NewSalidaRepository construye el adaptador de persistencia para salidas. Pasar pool o tx (Querier).
func NewSalidaRepository(q Querier) *SalidaRepo {
	return &SalidaRepo{q: q}
}

// Create persiste la salida y sus líneas de desglose.
func (r *SalidaRepo) Create(s *entity.Salida) error {
	query := `
		INSERT INTO salidas (id, articulo_id, cantidad, registro_id, costo_total, observaciones, fecha, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ArticuloID, s.Cantidad, s.RegistroID, s.CostoTotal,
		s.Observaciones, s.Fecha, s.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert salida: %w", err)
	}
	for _, d := range s.Detalle {
		var rolloID *string
		if d.RolloID != "" {
			rolloID = &d.RolloID
		}
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO salida_detalles (id, salida_id, ingreso_id, rollo_id, cantidad, costo_unitario)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New().String(), s.ID, d.IngresoID, rolloID, d.Cantidad, d.CostoUnitario,
		)
		if err != nil {
			return fmt.Errorf("insert salida detalle: %w", err)
		}
	}
	return nil
}

func (r *SalidaRepo) cargarDetalle(s *entity.Salida) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT ingreso_id, COALESCE(rollo_id, ''), cantidad, costo_unitario
		 FROM salida_detalles WHERE salida_id = $1 ORDER BY id`,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("query salida detalles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d entity.DetalleFifo
		if err := rows.Scan(&d.IngresoID, &d.RolloID, &d.Cantidad, &d.CostoUnitario); err != nil {
			return fmt.Errorf("scan salida detalle: %w", err)
		}
		s.Detalle = append(s.Detalle, d)
	}
	return rows.Err()
}

// GetByID obtiene una salida con su desglose.
func (r *SalidaRepo) GetByID(id string) (*entity.Salida, error) {
	var s entity.Salida
	err := r.q.QueryRow(context.Background(),
		`SELECT id, articulo_id, cantidad, registro_id, costo_total, observaciones, fecha, created_by
		 FROM salidas WHERE id = $1`, id,
	).Scan(&s.ID, &s.ArticuloID, &s.Cantidad, &s.RegistroID, &s.CostoTotal, &s.Observaciones, &s.Fecha, &s.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salida: %w", err)
	}
	if err := r.cargarDetalle(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByArticulo lista las salidas de un artículo, de la más reciente a la más
// antigua, con su desglose.
func (r *SalidaRepo) ListByArticulo(articuloID string, limit, offset int) ([]*entity.Salida, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, articulo_id, cantidad, registro_id, costo_total, observaciones, fecha, created_by
		 FROM salidas WHERE articulo_id = $1 ORDER BY fecha DESC, id LIMIT $2 OFFSET $3`,
		articuloID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list salidas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Salida
	for rows.Next() {
		var s entity.Salida
		if err := rows.Scan(&s.ID, &s.ArticuloID, &s.Cantidad, &s.RegistroID, &s.CostoTotal, &s.Observaciones, &s.Fecha, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan salida: %w", err)
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range out {
		if err := r.cargarDetalle(s); err != nil {
			return nil, err
		}
	}
	return out, nil
}
