package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearIngresoRequest entrada para registrar un ingreso.
type CrearIngresoRequest struct {
	CategoriaID    string          `json:"categoria_id" validate:"required,uuid"`
	TipoIngresoID  int             `json:"tipo_ingreso_id" validate:"required,min=1,max=4"`
	Fuente         string          `json:"fuente" validate:"required,min=1,max=200"`
	Monto          decimal.Decimal `json:"monto" validate:"required"`
	Fecha          time.Time       `json:"fecha" validate:"required"`
	Descripcion    string          `json:"descripcion" validate:"omitempty,max=1000"`
	EsRecurrente   bool            `json:"es_recurrente"`
	FrecuenciaDias int             `json:"frecuencia_dias" validate:"omitempty,min=1,max=365"`
}

// IngresoResponse salida de un ingreso.
type IngresoResponse struct {
	ID             string          `json:"id"`
	CategoriaID    string          `json:"categoria_id"`
	TipoIngresoID  int             `json:"tipo_ingreso_id"`
	Fuente         string          `json:"fuente"`
	Monto          decimal.Decimal `json:"monto"`
	Fecha          time.Time       `json:"fecha"`
	Descripcion    string          `json:"descripcion,omitempty"`
	EsRecurrente   bool            `json:"es_recurrente"`
	FrecuenciaDias int             `json:"frecuencia_dias,omitempty"`
	ProximoIngreso *time.Time      `json:"proximo_ingreso,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
