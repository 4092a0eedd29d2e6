package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
)

type facturaFixture struct {
	uc   *usecase.FacturaUseCase
	repo *memFacturaRepo
}

func newFacturaFixture() *facturaFixture {
	repo := newMemFacturaRepo()
	return &facturaFixture{uc: usecase.NewFacturaUseCase(repo), repo: repo}
}

func (f *facturaFixture) crear(t *testing.T, nombre string, vencimiento time.Time) string {
	t.Helper()
	out, err := f.uc.CrearFactura(usuarioID, dto.CrearFacturaRequest{
		Nombre:           nombre,
		TipoFacturaID:    int(entity.FacturaServicio),
		Monto:            decimal.RequireFromString("120"),
		FechaVencimiento: vencimiento,
	})
	require.NoError(t, err)
	return out.ID
}

func TestListarFacturas_VencidaSePersisteAlConsultar(t *testing.T) {
	f := newFacturaFixture()
	id := f.crear(t, "luz", time.Now().AddDate(0, 0, -2))

	out, err := f.uc.ListarFacturas(usuarioID, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "vencida", out[0].Estado)

	// La transición quedó persistida, no solo derivada en la respuesta
	almacenada, _ := f.repo.GetByID(id)
	assert.Equal(t, entity.FacturaVencida, almacenada.Estado)
}

func TestListarFacturas_FiltroVencida_IncluyeLasAunNoPersistidas(t *testing.T) {
	f := newFacturaFixture()
	f.crear(t, "internet", time.Now().AddDate(0, 0, -1)) // vencida sin persistir
	f.crear(t, "agua", time.Now().AddDate(0, 0, 10))     // pendiente vigente

	out, err := f.uc.ListarFacturas(usuarioID, "vencida")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "internet", out[0].Nombre)
}

func TestMarcarPagada_EsIdempotente(t *testing.T) {
	f := newFacturaFixture()
	id := f.crear(t, "teléfono", time.Now().AddDate(0, 0, 5))

	out, err := f.uc.MarcarPagada(usuarioID, id)
	require.NoError(t, err)
	assert.Equal(t, "pagada", out.Estado)
	require.NotNil(t, out.UltimoPago)
	primerPago := *out.UltimoPago

	out, err = f.uc.MarcarPagada(usuarioID, id)
	require.NoError(t, err)
	assert.Equal(t, "pagada", out.Estado)
	assert.Equal(t, primerPago, *out.UltimoPago, "pagar de nuevo no cambia la fecha de pago")
}

func TestMarcarPagada_Recurrente_AvanzaVencimiento(t *testing.T) {
	f := newFacturaFixture()
	venc := time.Now().AddDate(0, 0, 3)
	out, err := f.uc.CrearFactura(usuarioID, dto.CrearFacturaRequest{
		Nombre:           "streaming",
		TipoFacturaID:    int(entity.FacturaSuscripcion),
		Monto:            decimal.RequireFromString("15"),
		FechaVencimiento: venc,
		EsRecurrente:     true,
		FrecuenciaDias:   30,
	})
	require.NoError(t, err)

	pagada, err := f.uc.MarcarPagada(usuarioID, out.ID)
	require.NoError(t, err)

	// Vuelve a Pendiente para el siguiente ciclo con la fecha corrida
	assert.Equal(t, "pendiente", pagada.Estado)
	assert.True(t, pagada.FechaVencimiento.After(venc))
	assert.NotNil(t, pagada.UltimoPago)
}

func TestResumenFacturas_CuentaPorEstadoEfectivo(t *testing.T) {
	f := newFacturaFixture()
	f.crear(t, "vencida sin persistir", time.Now().AddDate(0, 0, -1))
	f.crear(t, "por vencer lejos", time.Now().AddDate(0, 0, 20))
	proxima := f.crear(t, "por vencer pronto", time.Now().AddDate(0, 0, 2))
	pagadaID := f.crear(t, "ya pagada", time.Now().AddDate(0, 0, 8))
	_, err := f.uc.MarcarPagada(usuarioID, pagadaID)
	require.NoError(t, err)

	res, err := f.uc.Resumen(usuarioID)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Pendientes)
	assert.Equal(t, 1, res.Vencidas)
	assert.Equal(t, 1, res.Pagadas)
	// El monto pendiente incluye las vencidas: 3 facturas de 120
	assert.True(t, res.MontoPendiente.Equal(decimal.RequireFromString("360")))
	require.NotNil(t, res.ProximaAVencer)
	assert.Equal(t, proxima, res.ProximaAVencer.ID)
}

func TestFactura_DeOtroUsuario_Forbidden(t *testing.T) {
	f := newFacturaFixture()
	id := f.crear(t, "ajena", time.Now().AddDate(0, 0, 5))

	_, err := f.uc.MarcarPagada("intruso", id)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCrearFactura_MontoNoPositivo_ErrInvalidInput(t *testing.T) {
	f := newFacturaFixture()
	_, err := f.uc.CrearFactura(usuarioID, dto.CrearFacturaRequest{
		Nombre:           "gratis",
		TipoFacturaID:    1,
		Monto:            decimal.Zero,
		FechaVencimiento: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
