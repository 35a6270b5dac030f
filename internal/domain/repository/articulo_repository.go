package repository

import (
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ArticuloRepository define el puerto de persistencia para Articulo.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y es el punto de
// serialización por artículo de ingresos, salidas y ajustes.
type ArticuloRepository interface {
	Create(articulo *entity.Articulo) error
	GetByID(id string) (*entity.Articulo, error)
	GetByCodigo(codigo string) (*entity.Articulo, error)
	GetForUpdate(id string) (*entity.Articulo, error)
	Update(articulo *entity.Articulo) error
	// ActualizarStock fija stock_actual; siempre dentro de la misma transacción
	// que el movimiento que lo causa.
	ActualizarStock(id string, stock decimal.Decimal) error
	List(limit, offset int) ([]*entity.Articulo, error)
	ListBajoMinimo() ([]*entity.Articulo, error)
}
