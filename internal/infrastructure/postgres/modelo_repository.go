package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

var _ repository.ModeloRepository = (*ModeloRepo)(nil)

// ModeloRepo implementación del puerto ModeloRepository sobre PostgreSQL (usable con pool o tx).
// El BOM vive en modelo_consumos, una fila por línea.
type ModeloRepo struct {
	q Querier
}

// NewModeloRepository construye el adaptador de persistencia para modelos. Pasar pool o tx (Querier).
func NewModeloRepository(q Querier) *ModeloRepo {
	return &ModeloRepo{q: q}
}

// Create persiste un modelo con su BOM.
func (r *ModeloRepo) Create(m *entity.Modelo) error {
	query := `
		INSERT INTO modelos (id, codigo, nombre, marca_id, tela_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Codigo, m.Nombre, nullIfEmpty(m.MarcaID), nullIfEmpty(m.TelaID), m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert modelo: %w", err)
	}
	return r.insertConsumos(m.ID, m.Consumos)
}

func (r *ModeloRepo) insertConsumos(modeloID string, consumos []entity.ConsumoModelo) error {
	for _, c := range consumos {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO modelo_consumos (id, modelo_id, articulo_id, cantidad_por_prenda, talla, observaciones)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			c.ID, modeloID, c.ArticuloID, c.CantidadPorPrenda, c.Talla, c.Observaciones,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert modelo consumo: %w", err)
		}
	}
	return nil
}

func (r *ModeloRepo) cargarConsumos(m *entity.Modelo) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, modelo_id, articulo_id, cantidad_por_prenda, talla, observaciones
		 FROM modelo_consumos WHERE modelo_id = $1 ORDER BY id`,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("query modelo consumos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c entity.ConsumoModelo
		if err := rows.Scan(&c.ID, &c.ModeloID, &c.ArticuloID, &c.CantidadPorPrenda, &c.Talla, &c.Observaciones); err != nil {
			return fmt.Errorf("scan modelo consumo: %w", err)
		}
		m.Consumos = append(m.Consumos, c)
	}
	return rows.Err()
}

func (r *ModeloRepo) get(query string, arg any) (*entity.Modelo, error) {
	var m entity.Modelo
	var marcaID, telaID *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&m.ID, &m.Codigo, &m.Nombre, &marcaID, &telaID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get modelo: %w", err)
	}
	if marcaID != nil {
		m.MarcaID = *marcaID
	}
	if telaID != nil {
		m.TelaID = *telaID
	}
	if err := r.cargarConsumos(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByID obtiene un modelo con su BOM.
func (r *ModeloRepo) GetByID(id string) (*entity.Modelo, error) {
	return r.get(`SELECT id, codigo, nombre, marca_id, tela_id, created_at, updated_at FROM modelos WHERE id = $1`, id)
}

// GetByCodigo obtiene un modelo por su código único.
func (r *ModeloRepo) GetByCodigo(codigo string) (*entity.Modelo, error) {
	return r.get(`SELECT id, codigo, nombre, marca_id, tela_id, created_at, updated_at FROM modelos WHERE codigo = $1`, codigo)
}

// Update actualiza los campos del modelo. El BOM se reemplaza con ReemplazarConsumos.
func (r *ModeloRepo) Update(m *entity.Modelo) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE modelos SET nombre = $2, marca_id = $3, tela_id = $4, updated_at = $5 WHERE id = $1`,
		m.ID, m.Nombre, nullIfEmpty(m.MarcaID), nullIfEmpty(m.TelaID), m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update modelo: %w", err)
	}
	return nil
}

// ReemplazarConsumos sustituye todas las líneas de BOM del modelo.
func (r *ModeloRepo) ReemplazarConsumos(modeloID string, consumos []entity.ConsumoModelo) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM modelo_consumos WHERE modelo_id = $1`, modeloID)
	if err != nil {
		return fmt.Errorf("delete modelo consumos: %w", err)
	}
	return r.insertConsumos(modeloID, consumos)
}

// List lista modelos con su BOM y paginación.
func (r *ModeloRepo) List(limit, offset int) ([]*entity.Modelo, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, codigo, nombre, marca_id, tela_id, created_at, updated_at
		 FROM modelos ORDER BY codigo LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list modelos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Modelo
	for rows.Next() {
		var m entity.Modelo
		var marcaID, telaID *string
		if err := rows.Scan(&m.ID, &m.Codigo, &m.Nombre, &marcaID, &telaID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan modelo: %w", err)
		}
		if marcaID != nil {
			m.MarcaID = *marcaID
		}
		if telaID != nil {
			m.TelaID = *telaID
		}
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, m := range out {
		if err := r.cargarConsumos(m); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
