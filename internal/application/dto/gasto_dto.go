package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearGastoRequest entrada para registrar un gasto (personal o de empleado).
type CrearGastoRequest struct {
	CategoriaID string          `json:"categoria_id" validate:"required,uuid"`
	TipoPagoID  int             `json:"tipo_pago_id" validate:"required,min=1,max=4"`
	Concepto    string          `json:"concepto" validate:"required,min=1,max=200"`
	Descripcion string          `json:"descripcion" validate:"omitempty,max=1000"`
	Monto       decimal.Decimal `json:"monto" validate:"required"`
	Fecha       time.Time       `json:"fecha" validate:"required"`
	Proveedor   string          `json:"proveedor" validate:"omitempty,max=200"`
	Ubicacion   string          `json:"ubicacion" validate:"omitempty,max=200"`
	Notas       string          `json:"notas" validate:"omitempty,max=1000"`
	EsDeducible bool            `json:"es_deducible"`
}

// DecisionGastoRequest entrada para aprobar o rechazar un gasto de empleado.
type DecisionGastoRequest struct {
	Comentario string `json:"comentario" validate:"omitempty,max=500"`
}

// GastoResponse salida de un gasto.
type GastoResponse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	EmpresaID          *string         `json:"empresa_id,omitempty"`
	CategoriaID        string          `json:"categoria_id"`
	TipoPagoID         int             `json:"tipo_pago_id"`
	Concepto           string          `json:"concepto"`
	Descripcion        string          `json:"descripcion,omitempty"`
	Monto              decimal.Decimal `json:"monto"`
	Fecha              time.Time       `json:"fecha"`
	Proveedor          string          `json:"proveedor,omitempty"`
	Ubicacion          string          `json:"ubicacion,omitempty"`
	Notas              string          `json:"notas,omitempty"`
	EsDeducible        bool            `json:"es_deducible"`
	EstadoAprobacion   string          `json:"estado_aprobacion"`
	RequiereAprobacion bool            `json:"requiere_aprobacion"`
	AprobadoPor        *string         `json:"aprobado_por,omitempty"`
	FechaAprobacion    *time.Time      `json:"fecha_aprobacion,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ResumenCategoriaResponse total de gastos de una categoría en el período.
type ResumenCategoriaResponse struct {
	CategoriaID string          `json:"categoria_id"`
	Nombre      string          `json:"nombre"`
	Total       decimal.Decimal `json:"total"`
	Conteo      int             `json:"conteo"`
}

// CrearGastoPlanificadoRequest entrada para planificar un gasto futuro.
type CrearGastoPlanificadoRequest struct {
	CategoriaID      string          `json:"categoria_id" validate:"required,uuid"`
	Concepto         string          `json:"concepto" validate:"required,min=1,max=200"`
	MontoEstimado    decimal.Decimal `json:"monto_estimado" validate:"required"`
	FechaPlanificada time.Time       `json:"fecha_planificada" validate:"required"`
	EsRecurrente     bool            `json:"es_recurrente"`
	FrecuenciaDias   int             `json:"frecuencia_dias" validate:"omitempty,min=1,max=365"`
	Notas            string          `json:"notas" validate:"omitempty,max=1000"`
}

// EjecutarGastoPlanificadoRequest entrada para ejecutar un gasto planificado.
// Monto nil usa el monto estimado del plan.
type EjecutarGastoPlanificadoRequest struct {
	Monto      *decimal.Decimal `json:"monto"`
	TipoPagoID int              `json:"tipo_pago_id" validate:"required,min=1,max=4"`
	Fecha      *time.Time       `json:"fecha"`
}

// GastoPlanificadoResponse salida de un gasto planificado.
type GastoPlanificadoResponse struct {
	ID               string          `json:"id"`
	CategoriaID      string          `json:"categoria_id"`
	Concepto         string          `json:"concepto"`
	MontoEstimado    decimal.Decimal `json:"monto_estimado"`
	FechaPlanificada time.Time       `json:"fecha_planificada"`
	EsRecurrente     bool            `json:"es_recurrente"`
	FrecuenciaDias   int             `json:"frecuencia_dias,omitempty"`
	Estado           string          `json:"estado"`
	GastoGeneradoID  *string         `json:"gasto_generado_id,omitempty"`
	Notas            string          `json:"notas,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}
