package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

const articuloColumns = `id, codigo, nombre, categoria, unidad_medida, stock_minimo, control_por_rollos, stock_actual, created_at, updated_at`

// ArticuloRepo implementación del puerto ArticuloRepository sobre PostgreSQL (usable con pool o tx).
type ArticuloRepo struct {
	q Querier
}

// NewArticuloRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewArticuloRepository(q Querier) *ArticuloRepo {
	return &ArticuloRepo{q: q}
}

func scanArticulo(row pgx.Row) (*entity.Articulo, error) {
	var a entity.Articulo
	err := row.Scan(
		&a.ID, &a.Codigo, &a.Nombre, &a.Categoria, &a.UnidadMedida,
		&a.StockMinimo, &a.ControlPorRollos, &a.StockActual, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Create persiste un nuevo artículo. Stock inicia en 0 y se mueve vía ingresos/salidas/ajustes.
func (r *ArticuloRepo) Create(a *entity.Articulo) error {
	query := `
		INSERT INTO articulos (id, codigo, nombre, categoria, unidad_medida, stock_minimo, control_por_rollos, stock_actual, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Codigo, a.Nombre, a.Categoria, a.UnidadMedida,
		a.StockMinimo, a.ControlPorRollos, a.StockActual, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert articulo: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	a, err := scanArticulo(r.q.QueryRow(context.Background(),
		`SELECT `+articuloColumns+` FROM articulos WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get articulo: %w", err)
	}
	return a, nil
}

// GetByCodigo obtiene un artículo por su código único.
func (r *ArticuloRepo) GetByCodigo(codigo string) (*entity.Articulo, error) {
	a, err := scanArticulo(r.q.QueryRow(context.Background(),
		`SELECT `+articuloColumns+` FROM articulos WHERE codigo = $1`, codigo))
	if err != nil {
		return nil, fmt.Errorf("get articulo by codigo: %w", err)
	}
	return a, nil
}

// GetForUpdate obtiene el artículo bloqueando su fila. Serializa las
// operaciones de stock sobre el mismo artículo; solo tiene sentido dentro de una tx.
func (r *ArticuloRepo) GetForUpdate(id string) (*entity.Articulo, error) {
	a, err := scanArticulo(r.q.QueryRow(context.Background(),
		`SELECT `+articuloColumns+` FROM articulos WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("get articulo for update: %w", err)
	}
	return a, nil
}

// Update actualiza los campos editables. Stock no se toca aquí.
func (r *ArticuloRepo) Update(a *entity.Articulo) error {
	query := `
		UPDATE articulos SET nombre = $2, categoria = $3, unidad_medida = $4, stock_minimo = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Nombre, a.Categoria, a.UnidadMedida, a.StockMinimo, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update articulo: %w", err)
	}
	return nil
}

// ActualizarStock fija el agregado stock_actual (usado por ingresos/salidas/ajustes dentro de su tx).
func (r *ArticuloRepo) ActualizarStock(id string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE articulos SET stock_actual = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	return nil
}

// List lista artículos con paginación.
func (r *ArticuloRepo) List(limit, offset int) ([]*entity.Articulo, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+articuloColumns+` FROM articulos ORDER BY codigo LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list articulos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Articulo
	for rows.Next() {
		var a entity.Articulo
		if err := rows.Scan(
			&a.ID, &a.Codigo, &a.Nombre, &a.Categoria, &a.UnidadMedida,
			&a.StockMinimo, &a.ControlPorRollos, &a.StockActual, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// ListBajoMinimo lista artículos con stock en o por debajo de su mínimo.
func (r *ArticuloRepo) ListBajoMinimo() ([]*entity.Articulo, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+articuloColumns+` FROM articulos WHERE stock_minimo > 0 AND stock_actual <= stock_minimo ORDER BY codigo`)
	if err != nil {
		return nil, fmt.Errorf("list articulos bajo minimo: %w", err)
	}
	defer rows.Close()

	var out []*entity.Articulo
	for rows.Next() {
		var a entity.Articulo
		if err := rows.Scan(
			&a.ID, &a.Codigo, &a.Nombre, &a.Categoria, &a.UnidadMedida,
			&a.StockMinimo, &a.ControlPorRollos, &a.StockActual, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
