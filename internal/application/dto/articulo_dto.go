package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateArticuloRequest body para POST /api/articulos.
type CreateArticuloRequest struct {
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	Categoria        string          `json:"categoria"`
	UnidadMedida     string          `json:"unidad_medida"`
	StockMinimo      decimal.Decimal `json:"stock_minimo"`
	ControlPorRollos bool            `json:"control_por_rollos"`
}

// UpdateArticuloRequest body para PUT /api/articulos/:id. Stock no es editable
// directamente: se mueve vía ingresos, salidas y ajustes.
type UpdateArticuloRequest struct {
	Nombre       *string          `json:"nombre,omitempty"`
	Categoria    *string          `json:"categoria,omitempty"`
	UnidadMedida *string          `json:"unidad_medida,omitempty"`
	StockMinimo  *decimal.Decimal `json:"stock_minimo,omitempty"`
}

// ArticuloResponse representación de un artículo.
type ArticuloResponse struct {
	ID               string          `json:"id"`
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	Categoria        string          `json:"categoria"`
	UnidadMedida     string          `json:"unidad_medida"`
	StockMinimo      decimal.Decimal `json:"stock_minimo"`
	ControlPorRollos bool            `json:"control_por_rollos"`
	StockActual      decimal.Decimal `json:"stock_actual"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ArticuloAnotado es un artículo de la lista con la disponibilidad derivada.
type ArticuloAnotado struct {
	ArticuloResponse
	TotalReservado  decimal.Decimal `json:"total_reservado"`
	StockDisponible decimal.Decimal `json:"stock_disponible"`
}

// ArticuloListResponse lista paginada de artículos anotados.
type ArticuloListResponse struct {
	Items []ArticuloAnotado `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ArticuloDetalleResponse detalle de artículo con sus lotes (y rollos si aplica).
type ArticuloDetalleResponse struct {
	ArticuloResponse
	Ingresos []IngresoResponse `json:"ingresos"`
	Rollos   []RolloResponse   `json:"rollos,omitempty"`
}

// AlertaStockDTO artículo en o bajo su stock mínimo.
type AlertaStockDTO struct {
	ArticuloID  string          `json:"articulo_id"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	StockActual decimal.Decimal `json:"stock_actual"`
	StockMinimo decimal.Decimal `json:"stock_minimo"`
	Faltante    decimal.Decimal `json:"faltante"` // StockMinimo - StockActual
}

// CuadreResponse compara el agregado contra el libro de lotes. Descuadre
// distinto de cero es esperable tras ajustes (ciegos a lotes).
type CuadreResponse struct {
	ArticuloID        string          `json:"articulo_id"`
	Codigo            string          `json:"codigo"`
	StockActual       decimal.Decimal `json:"stock_actual"`
	DisponibleEnLotes decimal.Decimal `json:"disponible_en_lotes"`
	Descuadre         decimal.Decimal `json:"descuadre"` // StockActual - DisponibleEnLotes
	Cuadrado          bool            `json:"cuadrado"`
}
