package repository

import "github.com/jmcastro/textil-api/internal/domain/entity"

// CatalogoRepository define el puerto para los catálogos simples
// (marcas, telas, colores, tallas, hilos): misma forma, distinta tabla.
type CatalogoRepository interface {
	Create(item *entity.ItemCatalogo) error
	GetByID(tipo, id string) (*entity.ItemCatalogo, error)
	GetByNombre(tipo, nombre string) (*entity.ItemCatalogo, error)
	Update(item *entity.ItemCatalogo) error
	Delete(tipo, id string) error
	List(tipo string) ([]*entity.ItemCatalogo, error)
}
