package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoProyecto estado de un proyecto de empresa.
type EstadoProyecto int

const (
	ProyectoPlanificado EstadoProyecto = 1
	ProyectoEnProgreso  EstadoProyecto = 2
	ProyectoPausado     EstadoProyecto = 3
	ProyectoCompletado  EstadoProyecto = 4
)

func (e EstadoProyecto) Valido() bool { return e >= ProyectoPlanificado && e <= ProyectoCompletado }

// Codigo devuelve el código textual del estado.
func (e EstadoProyecto) Codigo() string {
	switch e {
	case ProyectoPlanificado:
		return "planificado"
	case ProyectoEnProgreso:
		return "en_progreso"
	case ProyectoPausado:
		return "pausado"
	case ProyectoCompletado:
		return "completado"
	default:
		return ""
	}
}

// Proyecto proyecto interno de una empresa, con checklist de metas y gastos
// asociados. ProgresoPorcentaje se recalcula en cada mutación de metas:
// completadas/total*100; sin metas el progreso no se toca.
type Proyecto struct {
	ID                 string
	EmpresaID          string
	Titulo             string
	Descripcion        string
	Estado             EstadoProyecto
	FechaInicio        time.Time
	FechaLimite        *time.Time
	FechaCompletado    *time.Time
	ProgresoPorcentaje float64
	Presupuesto        decimal.Decimal
	MontoGastado       decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProyectoMeta ítem del checklist de un proyecto.
type ProyectoMeta struct {
	ID              string
	ProyectoID      string
	Titulo          string
	Completado      bool
	Orden           int
	FechaCompletado *time.Time
	CreatedAt       time.Time
}

// ProyectoGasto gasto imputado a un proyecto; alimenta MontoGastado.
type ProyectoGasto struct {
	ID            string
	ProyectoID    string
	Concepto      string
	Monto         decimal.Decimal
	Fecha         time.Time
	RegistradoPor string
	CreatedAt     time.Time
}

// CalcularProgreso devuelve el porcentaje de metas completadas y si el cálculo
// aplica (false cuando no hay metas: el progreso existente no debe tocarse).
func CalcularProgreso(metas []*ProyectoMeta) (float64, bool) {
	if len(metas) == 0 {
		return 0, false
	}
	completadas := 0
	for _, m := range metas {
		if m.Completado {
			completadas++
		}
	}
	return float64(completadas) / float64(len(metas)) * 100, true
}
