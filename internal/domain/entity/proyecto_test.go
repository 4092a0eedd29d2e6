package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
)

func metas(completadas ...bool) []*entity.ProyectoMeta {
	out := make([]*entity.ProyectoMeta, 0, len(completadas))
	for i, c := range completadas {
		out = append(out, &entity.ProyectoMeta{Orden: i + 1, Completado: c})
	}
	return out
}

func TestCalcularProgreso(t *testing.T) {
	// Sin metas el cálculo no aplica: el progreso existente no debe tocarse
	progreso, aplica := entity.CalcularProgreso(nil)
	assert.False(t, aplica)
	assert.Zero(t, progreso)

	progreso, aplica = entity.CalcularProgreso(metas(false, false, false))
	assert.True(t, aplica)
	assert.Zero(t, progreso)

	progreso, aplica = entity.CalcularProgreso(metas(true, false, false, false))
	assert.True(t, aplica)
	assert.InDelta(t, 25.0, progreso, 0.001)

	progreso, aplica = entity.CalcularProgreso(metas(true, true, true))
	assert.True(t, aplica)
	assert.InDelta(t, 100.0, progreso, 0.001)

	// Tercios: fracción no entera
	progreso, aplica = entity.CalcularProgreso(metas(true, false, false))
	assert.True(t, aplica)
	assert.InDelta(t, 33.333, progreso, 0.01)
}

func TestEstadoProyecto_Codigo(t *testing.T) {
	assert.Equal(t, "planificado", entity.ProyectoPlanificado.Codigo())
	assert.Equal(t, "en_progreso", entity.ProyectoEnProgreso.Codigo())
	assert.Equal(t, "pausado", entity.ProyectoPausado.Codigo())
	assert.Equal(t, "completado", entity.ProyectoCompletado.Codigo())
	assert.Equal(t, "", entity.EstadoProyecto(9).Codigo())
}
