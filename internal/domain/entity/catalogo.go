package entity

import "time"

// Tipos de catálogo simples (id + nombre único).
const (
	CatalogoMarcas  = "marcas"
	CatalogoTelas   = "telas"
	CatalogoColores = "colores"
	CatalogoTallas  = "tallas"
	CatalogoHilos   = "hilos"
)

// ItemCatalogo es una fila de cualquiera de los catálogos simples
// (marcas, telas, colores, tallas, hilos).
type ItemCatalogo struct {
	ID        string
	Tipo      string
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TipoCatalogoValido verifica que el tipo sea uno de los catálogos soportados.
func TipoCatalogoValido(tipo string) bool {
	switch tipo {
	case CatalogoMarcas, CatalogoTelas, CatalogoColores, CatalogoTallas, CatalogoHilos:
		return true
	}
	return false
}
