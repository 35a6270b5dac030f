package repository

import (
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// IngresoRepository define el puerto de persistencia para el libro de lotes.
type IngresoRepository interface {
	Create(ingreso *entity.Ingreso) error
	GetByID(id string) (*entity.Ingreso, error)
	ListByArticulo(articuloID string) ([]*entity.Ingreso, error)
	// ListDisponiblesForUpdate trae los lotes con cantidad_disponible > 0 del
	// artículo, ordenados por fecha de recepción (desempate por id), con las
	// filas bloqueadas (FOR UPDATE) para la asignación.
	ListDisponiblesForUpdate(articuloID string) ([]*entity.Ingreso, error)
	// Descontar resta cantidad de cantidad_disponible del lote.
	Descontar(id string, cantidad decimal.Decimal) error
	// TotalDisponible suma cantidad_disponible de todos los lotes del artículo.
	TotalDisponible(articuloID string) (decimal.Decimal, error)
}

// SalidaRepository define el puerto de persistencia para salidas y su desglose FIFO.
type SalidaRepository interface {
	Create(salida *entity.Salida) error
	GetByID(id string) (*entity.Salida, error)
	ListByArticulo(articuloID string, limit, offset int) ([]*entity.Salida, error)
}

// AjusteRepository define el puerto de persistencia para ajustes manuales.
type AjusteRepository interface {
	Create(ajuste *entity.Ajuste) error
	ListByArticulo(articuloID string, limit, offset int) ([]*entity.Ajuste, error)
}

// RolloRepository define el puerto de persistencia para rollos individuales.
type RolloRepository interface {
	Create(rollo *entity.Rollo) error
	GetForUpdate(id string) (*entity.Rollo, error)
	// ListActivosForUpdate trae los rollos activos con metraje disponible del
	// artículo, ordenados por fecha de recepción del ingreso de origen.
	ListActivosForUpdate(articuloID string) ([]*entity.Rollo, error)
	ListByArticulo(articuloID string) ([]*entity.Rollo, error)
	// Descontar resta metraje disponible; desactiva el rollo al llegar a cero.
	Descontar(id string, cantidad decimal.Decimal) error
}
