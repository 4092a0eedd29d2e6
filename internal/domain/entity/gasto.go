package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoAprobacion estado del flujo de aprobación de un gasto de empleado.
type EstadoAprobacion int

const (
	AprobacionPendiente EstadoAprobacion = 1
	AprobacionAprobado  EstadoAprobacion = 2
	AprobacionRechazado EstadoAprobacion = 3
)

// Valido indica si el valor pertenece al catálogo.
func (e EstadoAprobacion) Valido() bool {
	return e >= AprobacionPendiente && e <= AprobacionRechazado
}

// Codigo devuelve el código textual del estado.
func (e EstadoAprobacion) Codigo() string {
	switch e {
	case AprobacionPendiente:
		return "pendiente"
	case AprobacionAprobado:
		return "aprobado"
	case AprobacionRechazado:
		return "rechazado"
	default:
		return ""
	}
}

// EstadoAprobacionDesdeCodigo convierte el código textual a EstadoAprobacion.
func EstadoAprobacionDesdeCodigo(codigo string) (EstadoAprobacion, bool) {
	switch codigo {
	case "pendiente":
		return AprobacionPendiente, true
	case "aprobado":
		return AprobacionAprobado, true
	case "rechazado":
		return AprobacionRechazado, true
	default:
		return 0, false
	}
}

// Gasto representa un gasto registrado por un usuario o un empleado.
// Para gastos de empleado EmpresaID apunta a la empresa que debe aprobarlo;
// para gastos personales EmpresaID es nil y el estado nace Aprobado.
type Gasto struct {
	ID                 string
	UserID             string
	EmpresaID          *string
	CategoriaID        string
	TipoPago           TipoPago
	Concepto           string
	Descripcion        string
	Monto              decimal.Decimal
	Fecha              time.Time
	Proveedor          string
	Ubicacion          string
	Notas              string
	EsDeducible        bool
	EstadoAprobacion   EstadoAprobacion
	RequiereAprobacion bool
	AprobadoPor        *string
	FechaAprobacion    *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EstaPendiente indica si el gasto espera decisión de la empresa.
func (g *Gasto) EstaPendiente() bool { return g.EstadoAprobacion == AprobacionPendiente }

// EstadoPlanificado estado del ciclo de vida de un gasto planificado.
type EstadoPlanificado int

const (
	PlanificadoPendiente EstadoPlanificado = 1
	PlanificadoEjecutado EstadoPlanificado = 2
	PlanificadoCancelado EstadoPlanificado = 3
)

func (e EstadoPlanificado) Valido() bool {
	return e >= PlanificadoPendiente && e <= PlanificadoCancelado
}

// Codigo devuelve el código textual del estado planificado.
func (e EstadoPlanificado) Codigo() string {
	switch e {
	case PlanificadoPendiente:
		return "pendiente"
	case PlanificadoEjecutado:
		return "ejecutado"
	case PlanificadoCancelado:
		return "cancelado"
	default:
		return ""
	}
}

// GastoPlanificado gasto futuro previsto. Al ejecutarse genera un Gasto real
// y pasa a Ejecutado; GastoGeneradoID conserva la trazabilidad.
type GastoPlanificado struct {
	ID               string
	UserID           string
	CategoriaID      string
	Concepto         string
	MontoEstimado    decimal.Decimal
	FechaPlanificada time.Time
	EsRecurrente     bool
	FrecuenciaDias   int
	Estado           EstadoPlanificado
	GastoGeneradoID  *string
	Notas            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
