package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearPresupuestoRequest entrada para fijar un límite mensual por categoría.
type CrearPresupuestoRequest struct {
	CategoriaID   string          `json:"categoria_id" validate:"required,uuid"`
	LimiteMensual decimal.Decimal `json:"limite_mensual" validate:"required"`
	Mes           int             `json:"mes" validate:"required,min=1,max=12"`
	Anio          int             `json:"anio" validate:"required,min=2000,max=2100"`
}

// PresupuestoResponse salida de un presupuesto con sus derivados.
type PresupuestoResponse struct {
	ID              string          `json:"id"`
	CategoriaID     string          `json:"categoria_id"`
	LimiteMensual   decimal.Decimal `json:"limite_mensual"`
	Mes             int             `json:"mes"`
	Anio            int             `json:"anio"`
	GastadoActual   decimal.Decimal `json:"gastado_actual"`
	PorcentajeUsado float64         `json:"porcentaje_usado"`
	EstaExcedido    bool            `json:"esta_excedido"`
	CreatedAt       time.Time       `json:"created_at"`
}
