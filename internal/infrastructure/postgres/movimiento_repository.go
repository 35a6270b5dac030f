package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

var _ repository.MovimientoServicioRepository = (*MovimientoServicioRepo)(nil)

const movimientoColumns = `id, registro_id, etapa, trabajador_origen, trabajador_destino, cantidad, precio_unitario, observaciones, fecha_entrega, fecha_devolucion, created_at, created_by`

// MovimientoServicioRepo implementación del puerto MovimientoServicioRepository sobre PostgreSQL (usable con pool o tx).
type MovimientoServicioRepo struct {
	q Querier
}

// NewMovimientoServicioRepository construye el adaptador de persistencia para movimientos de servicio. Pasar pool o tx (Querier).
func NewMovimientoServicioRepository(q Querier) *MovimientoServicioRepo {
	return &MovimientoServicioRepo{q: q}
}

// Create persiste una entrega de prendas.
func (r *MovimientoServicioRepo) Create(m *entity.MovimientoServicio) error {
	query := `
		INSERT INTO movimientos_servicio (id, registro_id, etapa, trabajador_origen, trabajador_destino, cantidad, precio_unitario, observaciones, fecha_entrega, fecha_devolucion, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.RegistroID, m.Etapa, m.TrabajadorOrigen, m.TrabajadorDestino,
		m.Cantidad, m.PrecioUnitario, m.Observaciones, m.FechaEntrega,
		m.FechaDevolucion, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoServicioRepo) GetByID(id string) (*entity.MovimientoServicio, error) {
	var m entity.MovimientoServicio
	err := r.q.QueryRow(context.Background(),
		`SELECT `+movimientoColumns+` FROM movimientos_servicio WHERE id = $1`, id,
	).Scan(
		&m.ID, &m.RegistroID, &m.Etapa, &m.TrabajadorOrigen, &m.TrabajadorDestino,
		&m.Cantidad, &m.PrecioUnitario, &m.Observaciones, &m.FechaEntrega,
		&m.FechaDevolucion, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// ListByRegistro lista los movimientos de un registro, por fecha de entrega.
func (r *MovimientoServicioRepo) ListByRegistro(registroID string) ([]*entity.MovimientoServicio, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+movimientoColumns+` FROM movimientos_servicio WHERE registro_id = $1 ORDER BY fecha_entrega, id`,
		registroID,
	)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var out []*entity.MovimientoServicio
	for rows.Next() {
		var m entity.MovimientoServicio
		if err := rows.Scan(
			&m.ID, &m.RegistroID, &m.Etapa, &m.TrabajadorOrigen, &m.TrabajadorDestino,
			&m.Cantidad, &m.PrecioUnitario, &m.Observaciones, &m.FechaEntrega,
			&m.FechaDevolucion, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// RegistrarDevolucion marca la devolución con la hora del servidor de base de datos.
func (r *MovimientoServicioRepo) RegistrarDevolucion(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE movimientos_servicio SET fecha_devolucion = now() WHERE id = $1 AND fecha_devolucion IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("registrar devolucion: %w", err)
	}
	return nil
}
