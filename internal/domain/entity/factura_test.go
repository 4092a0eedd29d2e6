package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aureum-app/aureum-api/internal/domain/entity"
)

var ahora = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestFactura_EstaVencida(t *testing.T) {
	pendientePasada := &entity.Factura{
		Estado:           entity.FacturaPendiente,
		FechaVencimiento: ahora.AddDate(0, 0, -3),
	}
	assert.True(t, pendientePasada.EstaVencida(ahora))

	pendienteFutura := &entity.Factura{
		Estado:           entity.FacturaPendiente,
		FechaVencimiento: ahora.AddDate(0, 0, 3),
	}
	assert.False(t, pendienteFutura.EstaVencida(ahora))

	// Una factura pagada nunca vence aunque la fecha haya pasado
	pagada := &entity.Factura{
		Estado:           entity.FacturaPagada,
		FechaVencimiento: ahora.AddDate(0, 0, -30),
	}
	assert.False(t, pagada.EstaVencida(ahora))
}

func TestFactura_EstadoEfectivo(t *testing.T) {
	f := &entity.Factura{
		Estado:           entity.FacturaPendiente,
		FechaVencimiento: ahora.AddDate(0, 0, -1),
	}
	assert.Equal(t, entity.FacturaVencida, f.EstadoEfectivo(ahora))
	// El estado persistido no cambia al consultarlo
	assert.Equal(t, entity.FacturaPendiente, f.Estado)

	f.FechaVencimiento = ahora.AddDate(0, 0, 1)
	assert.Equal(t, entity.FacturaPendiente, f.EstadoEfectivo(ahora))
}

func TestFactura_DiasParaVencimiento(t *testing.T) {
	f := &entity.Factura{FechaVencimiento: ahora.AddDate(0, 0, 10)}
	assert.Equal(t, 10, f.DiasParaVencimiento(ahora))

	f.FechaVencimiento = ahora.AddDate(0, 0, -5)
	assert.Equal(t, -5, f.DiasParaVencimiento(ahora))
}

func TestFactura_AvanzarVencimiento(t *testing.T) {
	venc := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	f := &entity.Factura{
		Estado:           entity.FacturaPagada,
		FechaVencimiento: venc,
		EsRecurrente:     true,
		FrecuenciaDias:   30,
	}
	f.AvanzarVencimiento()
	assert.Equal(t, venc.AddDate(0, 0, 30), f.FechaVencimiento)
	assert.Equal(t, entity.FacturaPendiente, f.Estado)

	// No recurrente: no se toca
	g := &entity.Factura{
		Estado:           entity.FacturaPagada,
		FechaVencimiento: venc,
		EsRecurrente:     false,
		FrecuenciaDias:   30,
	}
	g.AvanzarVencimiento()
	assert.Equal(t, venc, g.FechaVencimiento)
	assert.Equal(t, entity.FacturaPagada, g.Estado)
}

func TestEstadoFactura_Codigo(t *testing.T) {
	assert.Equal(t, "pendiente", entity.FacturaPendiente.Codigo())
	assert.Equal(t, "pagada", entity.FacturaPagada.Codigo())
	assert.Equal(t, "vencida", entity.FacturaVencida.Codigo())
	assert.Equal(t, "", entity.EstadoFactura(0).Codigo())
}
