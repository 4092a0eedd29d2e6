package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearObjetivoRequest entrada para crear un objetivo de ahorro.
type CrearObjetivoRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string          `json:"descripcion" validate:"omitempty,max=1000"`
	MetaTotal   decimal.Decimal `json:"meta_total" validate:"required"`
	FechaLimite *time.Time      `json:"fecha_limite"`
	PrioridadID int             `json:"prioridad_id" validate:"required,min=1,max=4"`
}

// MovimientoObjetivoRequest entrada para aportar o retirar dinero.
type MovimientoObjetivoRequest struct {
	Monto       decimal.Decimal `json:"monto" validate:"required"`
	Descripcion string          `json:"descripcion" validate:"omitempty,max=500"`
}

// ObjetivoResponse salida de un objetivo con sus derivados.
type ObjetivoResponse struct {
	ID                 string          `json:"id"`
	Nombre             string          `json:"nombre"`
	Descripcion        string          `json:"descripcion,omitempty"`
	MetaTotal          decimal.Decimal `json:"meta_total"`
	AhorroActual       decimal.Decimal `json:"ahorro_actual"`
	MontoRestante      decimal.Decimal `json:"monto_restante"`
	ProgresoPorcentaje float64         `json:"progreso_porcentaje"`
	Completado         bool            `json:"completado"`
	FechaLimite        *time.Time      `json:"fecha_limite,omitempty"`
	PrioridadID        int             `json:"prioridad_id"`
	CreatedAt          time.Time       `json:"created_at"`
}

// MovimientoObjetivoResponse entrada del historial de un objetivo.
type MovimientoObjetivoResponse struct {
	ID          string          `json:"id"`
	Monto       decimal.Decimal `json:"monto"`
	EsAporte    bool            `json:"es_aporte"`
	Descripcion string          `json:"descripcion,omitempty"`
	Fecha       time.Time       `json:"fecha"`
}

// ResumenObjetivosResponse agregado de los objetivos del usuario.
type ResumenObjetivosResponse struct {
	Total            int             `json:"total"`
	Completados      int             `json:"completados"`
	AhorroTotal      decimal.Decimal `json:"ahorro_total"`
	MetaTotal        decimal.Decimal `json:"meta_total"`
	ProgresoPromedio float64         `json:"progreso_promedio"`
}
