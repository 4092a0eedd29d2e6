package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
)

func objetivoCon(meta, ahorro string) *entity.Objetivo {
	return &entity.Objetivo{
		MetaTotal:    decimal.RequireFromString(meta),
		AhorroActual: decimal.RequireFromString(ahorro),
	}
}

func TestObjetivo_ProgresoPorcentaje(t *testing.T) {
	casos := []struct {
		nombre   string
		meta     string
		ahorro   string
		esperado float64
	}{
		{"sin ahorro", "1000", "0", 0},
		{"mitad", "1000", "500", 50},
		{"completo", "1000", "1000", 100},
		{"sobrepasado se acota a 100", "1000", "1500", 100},
		{"meta cero no divide", "0", "500", 0},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			obj := objetivoCon(c.meta, c.ahorro)
			assert.InDelta(t, c.esperado, obj.ProgresoPorcentaje(), 0.001)
		})
	}
}

func TestObjetivo_MontoRestante(t *testing.T) {
	obj := objetivoCon("1000", "350.50")
	assert.True(t, obj.MontoRestante().Equal(decimal.RequireFromString("649.50")))

	// Nunca negativo aunque el ahorro supere la meta
	obj = objetivoCon("1000", "1200")
	assert.True(t, obj.MontoRestante().IsZero())
}

func TestObjetivo_Completado(t *testing.T) {
	assert.False(t, objetivoCon("1000", "999.99").Completado())
	assert.True(t, objetivoCon("1000", "1000").Completado())
	assert.True(t, objetivoCon("1000", "1000.01").Completado())

	// Meta cero nunca se considera completada
	assert.False(t, objetivoCon("0", "0").Completado())
}

func TestObjetivoMovimiento_MontoConSigno(t *testing.T) {
	aporte := &entity.ObjetivoMovimiento{Monto: decimal.RequireFromString("100"), EsAporte: true}
	retiro := &entity.ObjetivoMovimiento{Monto: decimal.RequireFromString("40"), EsAporte: false}

	assert.True(t, aporte.MontoConSigno().Equal(decimal.RequireFromString("100")))
	assert.True(t, retiro.MontoConSigno().Equal(decimal.RequireFromString("-40")))
	// La suma con signo reconstruye el saldo
	assert.True(t, aporte.MontoConSigno().Add(retiro.MontoConSigno()).Equal(decimal.RequireFromString("60")))
}
