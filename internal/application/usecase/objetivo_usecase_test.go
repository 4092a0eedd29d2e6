package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
	"github.com/aureum-app/aureum-api/internal/domain"
)

type objetivoFixture struct {
	uc   *usecase.ObjetivoUseCase
	repo *memObjetivoRepo
}

func newObjetivoFixture() *objetivoFixture {
	repo := newMemObjetivoRepo()
	tx := &memTx{objetivoRepo: repo}
	return &objetivoFixture{uc: usecase.NewObjetivoUseCase(repo, tx), repo: repo}
}

func (f *objetivoFixture) crear(t *testing.T, meta string) string {
	t.Helper()
	out, err := f.uc.CrearObjetivo(usuarioID, dto.CrearObjetivoRequest{
		Nombre:      "fondo de emergencia",
		MetaTotal:   decimal.RequireFromString(meta),
		PrioridadID: 3,
	})
	require.NoError(t, err)
	return out.ID
}

func movimiento(monto string) dto.MovimientoObjetivoRequest {
	return dto.MovimientoObjetivoRequest{Monto: decimal.RequireFromString(monto)}
}

func TestCrearObjetivo_NaceConSaldoCero(t *testing.T) {
	f := newObjetivoFixture()
	out, err := f.uc.CrearObjetivo(usuarioID, dto.CrearObjetivoRequest{
		Nombre:      "vacaciones",
		MetaTotal:   decimal.RequireFromString("2000"),
		PrioridadID: 2,
	})
	require.NoError(t, err)
	assert.True(t, out.AhorroActual.IsZero())
	assert.False(t, out.Completado)
}

func TestAgregarDinero_ActualizaSaldoYRegistraMovimiento(t *testing.T) {
	f := newObjetivoFixture()
	id := f.crear(t, "1000")

	out, err := f.uc.AgregarDinero(context.Background(), usuarioID, id, movimiento("250.50"))
	require.NoError(t, err)
	assert.True(t, out.AhorroActual.Equal(decimal.RequireFromString("250.50")))

	movs, err := f.uc.Historial(usuarioID, id, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.True(t, movs[0].EsAporte)
	assert.True(t, movs[0].Monto.Equal(decimal.RequireFromString("250.50")))
}

func TestRetirarDinero_ConFondos_DescuentaYRegistra(t *testing.T) {
	f := newObjetivoFixture()
	id := f.crear(t, "1000")
	_, err := f.uc.AgregarDinero(context.Background(), usuarioID, id, movimiento("300"))
	require.NoError(t, err)

	out, err := f.uc.RetirarDinero(context.Background(), usuarioID, id, movimiento("120"))
	require.NoError(t, err)
	assert.True(t, out.AhorroActual.Equal(decimal.RequireFromString("180")))

	movs, _ := f.uc.Historial(usuarioID, id, dto.PageRequest{})
	require.Len(t, movs, 2)
}

func TestRetirarDinero_SinFondos_ErrFondosInsuficientes(t *testing.T) {
	f := newObjetivoFixture()
	id := f.crear(t, "1000")
	_, err := f.uc.AgregarDinero(context.Background(), usuarioID, id, movimiento("100"))
	require.NoError(t, err)

	_, err = f.uc.RetirarDinero(context.Background(), usuarioID, id, movimiento("100.01"))
	assert.ErrorIs(t, err, domain.ErrFondosInsuficientes)

	// El saldo no cambió y el retiro fallido no dejó movimiento
	obj, _ := f.repo.GetByID(id)
	assert.True(t, obj.AhorroActual.Equal(decimal.RequireFromString("100")))
	movs, _ := f.uc.Historial(usuarioID, id, dto.PageRequest{})
	assert.Len(t, movs, 1)
}

func TestRetirarDinero_SaldoExacto_QuedaEnCero(t *testing.T) {
	f := newObjetivoFixture()
	id := f.crear(t, "500")
	_, err := f.uc.AgregarDinero(context.Background(), usuarioID, id, movimiento("500"))
	require.NoError(t, err)

	out, err := f.uc.RetirarDinero(context.Background(), usuarioID, id, movimiento("500"))
	require.NoError(t, err)
	assert.True(t, out.AhorroActual.IsZero())
}

func TestObjetivo_LibroMayorCuadraConSaldo(t *testing.T) {
	f := newObjetivoFixture()
	id := f.crear(t, "1000")

	ctx := context.Background()
	_, err := f.uc.AgregarDinero(ctx, usuarioID, id, movimiento("300"))
	require.NoError(t, err)
	_, err = f.uc.RetirarDinero(ctx, usuarioID, id, movimiento("120.25"))
	require.NoError(t, err)
	_, err = f.uc.AgregarDinero(ctx, usuarioID, id, movimiento("50"))
	require.NoError(t, err)
	// Un retiro rechazado no deja movimiento y no descuadra el libro
	_, err = f.uc.RetirarDinero(ctx, usuarioID, id, movimiento("9999"))
	require.ErrorIs(t, err, domain.ErrFondosInsuficientes)

	obj, _ := f.repo.GetByID(id)
	suma := decimal.Zero
	for _, m := range f.repo.movimientos {
		suma = suma.Add(m.MontoConSigno())
	}
	assert.True(t, suma.Equal(obj.AhorroActual),
		"la suma con signo de los movimientos debe igualar el saldo: %s vs %s", suma, obj.AhorroActual)
	assert.True(t, obj.AhorroActual.Equal(decimal.RequireFromString("229.75")))
}

func TestMovimientoObjetivo_MontoNoPositivo_ErrInvalidInput(t *testing.T) {
	f := newObjetivoFixture()
	id := f.crear(t, "1000")

	_, err := f.uc.AgregarDinero(context.Background(), usuarioID, id, movimiento("0"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.RetirarDinero(context.Background(), usuarioID, id, movimiento("-10"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestObjetivo_DeOtroUsuario_Forbidden(t *testing.T) {
	f := newObjetivoFixture()
	id := f.crear(t, "1000")

	_, err := f.uc.AgregarDinero(context.Background(), "intruso", id, movimiento("50"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestResumenObjetivos_Agrega(t *testing.T) {
	f := newObjetivoFixture()
	a := f.crear(t, "100")
	f.crear(t, "400")
	_, err := f.uc.AgregarDinero(context.Background(), usuarioID, a, movimiento("100"))
	require.NoError(t, err)

	res, err := f.uc.Resumen(usuarioID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.Completados)
	assert.True(t, res.AhorroTotal.Equal(decimal.RequireFromString("100")))
	assert.True(t, res.MetaTotal.Equal(decimal.RequireFromString("500")))
	assert.InDelta(t, 50.0, res.ProgresoPromedio, 0.001)
}
