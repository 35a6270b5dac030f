package repository

import (
	"github.com/jmcastro/textil-api/internal/domain/entity"
	"github.com/jmcastro/textil-api/internal/domain/produccion"
)

// ModeloRepository define el puerto de persistencia para modelos y su BOM.
type ModeloRepository interface {
	Create(modelo *entity.Modelo) error
	GetByID(id string) (*entity.Modelo, error)
	GetByCodigo(codigo string) (*entity.Modelo, error)
	Update(modelo *entity.Modelo) error
	// ReemplazarConsumos sustituye todas las líneas de BOM del modelo.
	ReemplazarConsumos(modeloID string, consumos []entity.ConsumoModelo) error
	List(limit, offset int) ([]*entity.Modelo, error)
}

// RegistroRepository define el puerto de persistencia para registros de producción.
type RegistroRepository interface {
	Create(registro *entity.Registro) error
	GetByID(id string) (*entity.Registro, error)
	GetByCodigo(codigo string) (*entity.Registro, error)
	ActualizarEstado(id, estado string) error
	List(estado string, limit, offset int) ([]*entity.Registro, error)
	// ListConConsumo devuelve todos los registros cuyo modelo tiene líneas de
	// BOM que referencian al artículo, con esas líneas y sus tallas. El filtro
	// de estados terminales lo aplica el dominio (produccion.FiltrarAbiertos).
	// Lectura pura para el cálculo de reservas: siempre derivado, nunca cacheado.
	ListConConsumo(articuloID string) ([]produccion.RegistroConConsumo, error)
}

// MovimientoServicioRepository define el puerto para movimientos de servicio
// (entregas/devoluciones de prendas entre trabajadores).
type MovimientoServicioRepository interface {
	Create(mov *entity.MovimientoServicio) error
	GetByID(id string) (*entity.MovimientoServicio, error)
	ListByRegistro(registroID string) ([]*entity.MovimientoServicio, error)
	RegistrarDevolucion(id string) error
}
