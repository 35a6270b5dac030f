package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jmcastro/textil-api/internal/domain"
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/produccion"
	"github.com/jmcastro/textil-api/internal/domain/repository"
)

var _ repository.RegistroRepository = (*RegistroRepo)(nil)

// RegistroRepo implementación del puerto RegistroRepository sobre PostgreSQL (usable con pool o tx).
// Las cantidades por talla viven en registro_tallas.
type RegistroRepo struct {
	q Querier
}

// NewRegistroRepository construye el adaptador de persistencia para registros de producción. Pasar pool o tx (Querier).
func NewRegistroRepository(q Querier) *RegistroRepo {
	return &RegistroRepo{q: q}
}

// Create persiste un registro con sus tallas.
func (r *RegistroRepo) Create(reg *entity.Registro) error {
	query := `
		INSERT INTO registros (id, codigo, modelo_id, estado, observaciones, fecha, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		reg.ID, reg.Codigo, reg.ModeloID, reg.Estado, reg.Observaciones,
		reg.Fecha, reg.CreatedAt, reg.UpdatedAt, reg.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert registro: %w", err)
	}
	for _, t := range reg.Tallas {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO registro_tallas (id, registro_id, talla, cantidad) VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), reg.ID, t.Talla, t.Cantidad,
		)
		if err != nil {
			return fmt.Errorf("insert registro talla: %w", err)
		}
	}
	return nil
}

func (r *RegistroRepo) cargarTallas(reg *entity.Registro) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT talla, cantidad FROM registro_tallas WHERE registro_id = $1 ORDER BY talla`,
		reg.ID,
	)
	if err != nil {
		return fmt.Errorf("query registro tallas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t entity.CantidadTalla
		if err := rows.Scan(&t.Talla, &t.Cantidad); err != nil {
			return fmt.Errorf("scan registro talla: %w", err)
		}
		reg.Tallas = append(reg.Tallas, t)
	}
	return rows.Err()
}

func (r *RegistroRepo) get(query string, arg any) (*entity.Registro, error) {
	var reg entity.Registro
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&reg.ID, &reg.Codigo, &reg.ModeloID, &reg.Estado, &reg.Observaciones,
		&reg.Fecha, &reg.CreatedAt, &reg.UpdatedAt, &reg.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get registro: %w", err)
	}
	if err := r.cargarTallas(&reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetByID obtiene un registro con sus tallas.
func (r *RegistroRepo) GetByID(id string) (*entity.Registro, error) {
	return r.get(`SELECT id, codigo, modelo_id, estado, observaciones, fecha, created_at, updated_at, created_by FROM registros WHERE id = $1`, id)
}

// GetByCodigo obtiene un registro por su código único.
func (r *RegistroRepo) GetByCodigo(codigo string) (*entity.Registro, error) {
	return r.get(`SELECT id, codigo, modelo_id, estado, observaciones, fecha, created_at, updated_at, created_by FROM registros WHERE codigo = $1`, codigo)
}

// ActualizarEstado cambia el estado del registro. La validez de la transición
// la garantiza el caso de uso antes de llegar aquí.
func (r *RegistroRepo) ActualizarEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE registros SET estado = $2, updated_at = now() WHERE id = $1`,
		id, estado,
	)
	if err != nil {
		return fmt.Errorf("actualizar estado: %w", err)
	}
	return nil
}

// List lista registros, opcionalmente filtrados por estado, del más reciente al más antiguo.
func (r *RegistroRepo) List(estado string, limit, offset int) ([]*entity.Registro, error) {
	query := `SELECT id, codigo, modelo_id, estado, observaciones, fecha, created_at, updated_at, created_by
		 FROM registros`
	args := []any{limit, offset}
	if estado != "" {
		query += ` WHERE estado = $3`
		args = append(args, estado)
	}
	query += ` ORDER BY fecha DESC, codigo LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list registros: %w", err)
	}
	defer rows.Close()

	var out []*entity.Registro
	for rows.Next() {
		var reg entity.Registro
		if err := rows.Scan(
			&reg.ID, &reg.Codigo, &reg.ModeloID, &reg.Estado, &reg.Observaciones,
			&reg.Fecha, &reg.CreatedAt, &reg.UpdatedAt, &reg.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan registro: %w", err)
		}
		out = append(out, &reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, reg := range out {
		if err := r.cargarTallas(reg); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ListConConsumo devuelve los registros cuyo modelo tiene líneas de BOM que
// referencian al artículo, con esas líneas y sus tallas. El filtro de estados
// terminales lo aplica el dominio.
func (r *RegistroRepo) ListConConsumo(articuloID string) ([]produccion.RegistroConConsumo, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT reg.id, reg.codigo, reg.estado, mc.id, mc.talla, mc.cantidad_por_prenda, rt.talla, rt.cantidad
		 FROM registros reg
		 JOIN modelo_consumos mc ON mc.modelo_id = reg.modelo_id AND mc.articulo_id = $1
		 JOIN registro_tallas rt ON rt.registro_id = reg.id
		 ORDER BY reg.fecha, reg.codigo, mc.id, rt.talla`,
		articuloID,
	)
	if err != nil {
		return nil, fmt.Errorf("list registros con consumo: %w", err)
	}
	defer rows.Close()

	// Filas aplanadas registro x línea de BOM x talla; se reagrupan aquí.
	type clave struct {
		registroID string
		id         string // consumo_id o talla según el mapa
	}
	var out []produccion.RegistroConConsumo
	indice := make(map[string]int)
	consumosVistos := make(map[clave]bool)
	tallasVistas := make(map[clave]bool)

	for rows.Next() {
		var (
			registroID, codigo, estado string
			consumoID                  string
			consumoTalla               *string
			cantidadPorPrenda          decimal.Decimal
			talla                      string
			cantidad                   decimal.Decimal
		)
		if err := rows.Scan(&registroID, &codigo, &estado, &consumoID, &consumoTalla, &cantidadPorPrenda, &talla, &cantidad); err != nil {
			return nil, fmt.Errorf("scan registro con consumo: %w", err)
		}

		i, ok := indice[registroID]
		if !ok {
			i = len(out)
			indice[registroID] = i
			out = append(out, produccion.RegistroConConsumo{
				RegistroID: registroID,
				Codigo:     codigo,
				Estado:     estado,
			})
		}

		if ck := (clave{registroID, consumoID}); !consumosVistos[ck] {
			consumosVistos[ck] = true
			out[i].Consumos = append(out[i].Consumos, produccion.ConsumoArticulo{
				Talla:             consumoTalla,
				CantidadPorPrenda: cantidadPorPrenda,
			})
		}

		if tk := (clave{registroID, talla}); !tallasVistas[tk] {
			tallasVistas[tk] = true
			out[i].Prendas = append(out[i].Prendas, entity.CantidadTalla{Talla: talla, Cantidad: cantidad})
		}
	}
	return out, rows.Err()
}
