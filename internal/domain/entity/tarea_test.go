package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
)

func TestEstadoTarea_EsTerminal(t *testing.T) {
	assert.False(t, entity.TareaPendiente.EsTerminal())
	assert.False(t, entity.TareaEnProgreso.EsTerminal())
	assert.True(t, entity.TareaCompletada.EsTerminal())
	assert.True(t, entity.TareaCancelada.EsTerminal())
}

func TestEstadoTareaDesdeCodigo(t *testing.T) {
	estado, ok := entity.EstadoTareaDesdeCodigo("en_progreso")
	assert.True(t, ok)
	assert.Equal(t, entity.TareaEnProgreso, estado)

	_, ok = entity.EstadoTareaDesdeCodigo("inexistente")
	assert.False(t, ok)

	// El código vacío tampoco es válido
	_, ok = entity.EstadoTareaDesdeCodigo("")
	assert.False(t, ok)
}

func TestEstadoAprobacionDesdeCodigo(t *testing.T) {
	for _, estado := range []entity.EstadoAprobacion{
		entity.AprobacionPendiente,
		entity.AprobacionAprobado,
		entity.AprobacionRechazado,
	} {
		parseado, ok := entity.EstadoAprobacionDesdeCodigo(estado.Codigo())
		assert.True(t, ok)
		assert.Equal(t, estado, parseado)
	}
}

func TestCatalogos_ValorCeroInvalido(t *testing.T) {
	assert.False(t, entity.TipoMovimiento(0).Valido())
	assert.False(t, entity.TipoPago(0).Valido())
	assert.False(t, entity.TipoFactura(0).Valido())
	assert.False(t, entity.TipoIngreso(0).Valido())
	assert.False(t, entity.Prioridad(0).Valido())
	assert.False(t, entity.EstadoAprobacion(0).Valido())
	assert.False(t, entity.EstadoTarea(0).Valido())
}
