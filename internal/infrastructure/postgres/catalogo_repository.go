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

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// tablaPorTipo es la lista blanca de tablas de catálogo. El tipo viene de la
// URL, nunca se interpola sin pasar por aquí.
var tablaPorTipo = map[string]string{
	entity.CatalogoMarcas:  "marcas",
	entity.CatalogoTelas:   "telas",
	entity.CatalogoColores: "colores",
	entity.CatalogoTallas:  "tallas",
	entity.CatalogoHilos:   "hilos",
}

// CatalogoRepo implementación del puerto CatalogoRepository sobre PostgreSQL (usable con pool o tx).
// Los cinco catálogos comparten forma; cambia solo la tabla.
type CatalogoRepo struct {
	q Querier
}

// NewCatalogoRepository construye el adaptador de persistencia para catálogos. Pasar pool o tx (Querier).
func NewCatalogoRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q}
}

func tabla(tipo string) (string, error) {
	t, ok := tablaPorTipo[tipo]
	if !ok {
		return "", domain.ErrNotFound
	}
	return t, nil
}

// Create persiste un ítem en el catálogo de su tipo.
func (r *CatalogoRepo) Create(item *entity.ItemCatalogo) error {
	t, err := tabla(item.Tipo)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(context.Background(),
		`INSERT INTO `+t+` (id, nombre, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		item.ID, item.Nombre, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", t, err)
	}
	return nil
}

func (r *CatalogoRepo) get(tipo, where string, arg any) (*entity.ItemCatalogo, error) {
	t, err := tabla(tipo)
	if err != nil {
		return nil, err
	}
	var item entity.ItemCatalogo
	err = r.q.QueryRow(context.Background(),
		`SELECT id, nombre, created_at, updated_at FROM `+t+` WHERE `+where+` = $1`, arg,
	).Scan(&item.ID, &item.Nombre, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", t, err)
	}
	item.Tipo = tipo
	return &item, nil
}

// GetByID obtiene un ítem por ID dentro de su tipo.
func (r *CatalogoRepo) GetByID(tipo, id string) (*entity.ItemCatalogo, error) {
	return r.get(tipo, "id", id)
}

// GetByNombre obtiene un ítem por nombre dentro de su tipo.
func (r *CatalogoRepo) GetByNombre(tipo, nombre string) (*entity.ItemCatalogo, error) {
	return r.get(tipo, "nombre", nombre)
}

// Update renombra un ítem.
func (r *CatalogoRepo) Update(item *entity.ItemCatalogo) error {
	t, err := tabla(item.Tipo)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(context.Background(),
		`UPDATE `+t+` SET nombre = $2, updated_at = $3 WHERE id = $1`,
		item.ID, item.Nombre, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update %s: %w", t, err)
	}
	return nil
}

// Delete elimina un ítem.
func (r *CatalogoRepo) Delete(tipo, id string) error {
	t, err := tabla(tipo)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(context.Background(), `DELETE FROM `+t+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", t, err)
	}
	return nil
}

// List lista los ítems de un catálogo por nombre.
func (r *CatalogoRepo) List(tipo string) ([]*entity.ItemCatalogo, error) {
	t, err := tabla(tipo)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, created_at, updated_at FROM `+t+` ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t, err)
	}
	defer rows.Close()

	var out []*entity.ItemCatalogo
	for rows.Next() {
		var item entity.ItemCatalogo
		if err := rows.Scan(&item.ID, &item.Nombre, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t, err)
		}
		item.Tipo = tipo
		out = append(out, &item)
	}
	return out, rows.Err()
}
