package dto

import "time"

// CrearCategoriaRequest entrada para crear una categoría propia del usuario.
type CrearCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
	TipoID int    `json:"tipo_id" validate:"required,min=1,max=3"`
	Icono  string `json:"icono" validate:"omitempty,max=60"`
	Color  string `json:"color" validate:"omitempty,max=20"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	TipoID    int       `json:"tipo_id"`
	Icono     string    `json:"icono,omitempty"`
	Color     string    `json:"color,omitempty"`
	EsGlobal  bool      `json:"es_global"`
	CreatedAt time.Time `json:"created_at"`
}
