package dto

import "time"

// ItemCatalogoRequest body para crear/actualizar un ítem de catálogo.
type ItemCatalogoRequest struct {
	Nombre string `json:"nombre"`
}

// ItemCatalogoResponse representación de un ítem de catálogo.
type ItemCatalogoResponse struct {
	ID        string    `json:"id"`
	Tipo      string    `json:"tipo"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
