package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProyectoRequest entrada para crear un proyecto de empresa.
type CrearProyectoRequest struct {
	Titulo      string          `json:"titulo" validate:"required,min=1,max=200"`
	Descripcion string          `json:"descripcion" validate:"omitempty,max=2000"`
	FechaInicio time.Time       `json:"fecha_inicio" validate:"required"`
	FechaLimite *time.Time      `json:"fecha_limite"`
	Presupuesto decimal.Decimal `json:"presupuesto"`
}

// ActualizarProyectoRequest entrada para actualizar datos de un proyecto.
type ActualizarProyectoRequest struct {
	Titulo      string     `json:"titulo" validate:"omitempty,min=1,max=200"`
	Descripcion string     `json:"descripcion" validate:"omitempty,max=2000"`
	Estado      string     `json:"estado" validate:"omitempty,oneof=planificado en_progreso pausado completado"`
	FechaLimite *time.Time `json:"fecha_limite"`
}

// CrearMetaRequest entrada para agregar una meta al checklist.
type CrearMetaRequest struct {
	Titulo string `json:"titulo" validate:"required,min=1,max=200"`
	Orden  int    `json:"orden" validate:"min=0"`
}

// CrearGastoProyectoRequest entrada para imputar un gasto al proyecto.
type CrearGastoProyectoRequest struct {
	Concepto string          `json:"concepto" validate:"required,min=1,max=200"`
	Monto    decimal.Decimal `json:"monto" validate:"required"`
	Fecha    time.Time       `json:"fecha" validate:"required"`
}

// ProyectoResponse salida de un proyecto.
type ProyectoResponse struct {
	ID                 string          `json:"id"`
	Titulo             string          `json:"titulo"`
	Descripcion        string          `json:"descripcion,omitempty"`
	Estado             string          `json:"estado"`
	FechaInicio        time.Time       `json:"fecha_inicio"`
	FechaLimite        *time.Time      `json:"fecha_limite,omitempty"`
	FechaCompletado    *time.Time      `json:"fecha_completado,omitempty"`
	ProgresoPorcentaje float64         `json:"progreso_porcentaje"`
	Presupuesto        decimal.Decimal `json:"presupuesto"`
	MontoGastado       decimal.Decimal `json:"monto_gastado"`
	CreatedAt          time.Time       `json:"created_at"`
}

// MetaResponse salida de una meta del checklist.
type MetaResponse struct {
	ID              string     `json:"id"`
	Titulo          string     `json:"titulo"`
	Completado      bool       `json:"completado"`
	Orden           int        `json:"orden"`
	FechaCompletado *time.Time `json:"fecha_completado,omitempty"`
}

// GastoProyectoResponse salida de un gasto de proyecto.
type GastoProyectoResponse struct {
	ID       string          `json:"id"`
	Concepto string          `json:"concepto"`
	Monto    decimal.Decimal `json:"monto"`
	Fecha    time.Time       `json:"fecha"`
}

// EstadisticasProyectosResponse agregado de proyectos de la empresa.
type EstadisticasProyectosResponse struct {
	Total            int            `json:"total"`
	PorEstado        map[string]int `json:"por_estado"`
	ProgresoPromedio float64        `json:"progreso_promedio"`
}
