package usecase_test

import (
	"context"
	"errors"
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

const (
	empresaID  = "empresa-1"
	empleadoID = "empleado-1"
	usuarioID  = "usuario-1"
	catGastoID = "cat-gasto"
)

type gastoFixture struct {
	uc           *usecase.GastoUseCase
	gastoRepo    *memGastoRepo
	planRepo     *memPlanRepo
	presupuestos *memPresupuestoRepo
	users        *memUserRepo
}

func newGastoFixture(t *testing.T) *gastoFixture {
	t.Helper()
	gastoRepo := newMemGastoRepo()
	planRepo := newMemPlanRepo()
	categorias := newMemCategoriaRepo()
	users := newMemUserRepo()
	presupuestos := newMemPresupuestoRepo()
	tx := &memTx{planRepo: planRepo, gastoRepo: gastoRepo}

	// Categoría global que admite gastos
	require.NoError(t, categorias.Create(&entity.CategoriaMovimiento{
		ID:     catGastoID,
		Nombre: "Transporte",
		Tipo:   entity.MovimientoGasto,
		Activa: true,
	}))
	// Empleado dado de alta por la empresa
	eid := empresaID
	require.NoError(t, users.Create(&entity.User{
		ID:                 empleadoID,
		Rol:                entity.RolEmpleado,
		CreatedByEmpresaID: &eid,
		IsActive:           true,
	}))

	uc := usecase.NewGastoUseCase(
		gastoRepo, planRepo, categorias, users, presupuestos,
		tx, decimal.RequireFromString("100.00"), testLogger(),
	)
	return &gastoFixture{uc: uc, gastoRepo: gastoRepo, planRepo: planRepo, presupuestos: presupuestos, users: users}
}

func gastoDe(monto string) dto.CrearGastoRequest {
	return dto.CrearGastoRequest{
		CategoriaID: catGastoID,
		TipoPagoID:  int(entity.PagoEfectivo),
		Concepto:    "taxi al aeropuerto",
		Monto:       decimal.RequireFromString(monto),
		Fecha:       time.Now(),
	}
}

// ── Umbral de aprobación automática ──────────────────────────────────────────

func TestCrearGastoEmpleado_BajoUmbral_SeApruebaAutomaticamente(t *testing.T) {
	f := newGastoFixture(t)

	out, err := f.uc.CrearGastoEmpleado(empleadoID, gastoDe("99.99"))
	require.NoError(t, err)

	assert.Equal(t, "aprobado", out.EstadoAprobacion)
	assert.False(t, out.RequiereAprobacion)
	require.NotNil(t, out.AprobadoPor, "la empresa queda como aprobador")
	assert.Equal(t, empresaID, *out.AprobadoPor)
	assert.NotNil(t, out.FechaAprobacion)
}

func TestCrearGastoEmpleado_EnElUmbral_QuedaPendiente(t *testing.T) {
	f := newGastoFixture(t)

	// Monto exactamente igual al umbral: requiere decisión
	out, err := f.uc.CrearGastoEmpleado(empleadoID, gastoDe("100.00"))
	require.NoError(t, err)

	assert.Equal(t, "pendiente", out.EstadoAprobacion)
	assert.True(t, out.RequiereAprobacion)
	assert.Nil(t, out.AprobadoPor)
}

func TestCrearGastoEmpleado_SobreUmbral_QuedaPendiente(t *testing.T) {
	f := newGastoFixture(t)

	out, err := f.uc.CrearGastoEmpleado(empleadoID, gastoDe("350.00"))
	require.NoError(t, err)

	assert.Equal(t, "pendiente", out.EstadoAprobacion)
	require.NotNil(t, out.EmpresaID)
	assert.Equal(t, empresaID, *out.EmpresaID)
}

func TestCrearGastoEmpleado_UsuarioNoEmpleado_Forbidden(t *testing.T) {
	f := newGastoFixture(t)
	require.NoError(t, f.users.Create(&entity.User{ID: usuarioID, Rol: entity.RolUsuario, IsActive: true}))

	_, err := f.uc.CrearGastoEmpleado(usuarioID, gastoDe("50"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCrearGasto_Personal_NaceAprobado(t *testing.T) {
	f := newGastoFixture(t)

	out, err := f.uc.CrearGasto(usuarioID, gastoDe("5000"))
	require.NoError(t, err)

	// El flujo de aprobación no aplica a gastos personales, sin importar el monto
	assert.Equal(t, "aprobado", out.EstadoAprobacion)
	assert.Nil(t, out.EmpresaID)
}

// ── Decisión de la empresa ───────────────────────────────────────────────────

func TestAprobarGasto_Pendiente_QuedaAprobado(t *testing.T) {
	f := newGastoFixture(t)
	creado, err := f.uc.CrearGastoEmpleado(empleadoID, gastoDe("200"))
	require.NoError(t, err)

	out, err := f.uc.AprobarGasto(empresaID, creado.ID, "ok, procede")
	require.NoError(t, err)

	assert.Equal(t, "aprobado", out.EstadoAprobacion)
	require.NotNil(t, out.AprobadoPor)
	assert.Equal(t, empresaID, *out.AprobadoPor)
}

func TestAprobarGasto_YaDecidido_ErrGastoYaProcesado(t *testing.T) {
	f := newGastoFixture(t)
	creado, err := f.uc.CrearGastoEmpleado(empleadoID, gastoDe("200"))
	require.NoError(t, err)

	_, err = f.uc.AprobarGasto(empresaID, creado.ID, "")
	require.NoError(t, err)

	// Segunda decisión sobre el mismo gasto: el UPDATE condicional no toca filas
	_, err = f.uc.RechazarGasto(empresaID, creado.ID, "cambio de opinión")
	assert.ErrorIs(t, err, domain.ErrGastoYaProcesado)

	// El estado de la primera decisión se conserva
	g, _ := f.gastoRepo.GetByID(creado.ID)
	assert.Equal(t, entity.AprobacionAprobado, g.EstadoAprobacion)
}

func TestAprobarGasto_DeOtraEmpresa_ErrGastoYaProcesado(t *testing.T) {
	f := newGastoFixture(t)
	creado, err := f.uc.CrearGastoEmpleado(empleadoID, gastoDe("200"))
	require.NoError(t, err)

	_, err = f.uc.AprobarGasto("empresa-ajena", creado.ID, "")
	assert.ErrorIs(t, err, domain.ErrGastoYaProcesado)
}

func TestRechazarGasto_SinMotivo_ErrInvalidInput(t *testing.T) {
	f := newGastoFixture(t)
	creado, err := f.uc.CrearGastoEmpleado(empleadoID, gastoDe("200"))
	require.NoError(t, err)

	_, err = f.uc.RechazarGasto(empresaID, creado.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRechazarGasto_ConMotivo_QuedaRechazado(t *testing.T) {
	f := newGastoFixture(t)
	creado, err := f.uc.CrearGastoEmpleado(empleadoID, gastoDe("200"))
	require.NoError(t, err)

	out, err := f.uc.RechazarGasto(empresaID, creado.ID, "sin comprobante")
	require.NoError(t, err)
	assert.Equal(t, "rechazado", out.EstadoAprobacion)
}

func TestGastosPendientes_SoloLosPendientesDeLaEmpresa(t *testing.T) {
	f := newGastoFixture(t)
	_, err := f.uc.CrearGastoEmpleado(empleadoID, gastoDe("50")) // auto-aprobado
	require.NoError(t, err)
	_, err = f.uc.CrearGastoEmpleado(empleadoID, gastoDe("150")) // pendiente
	require.NoError(t, err)
	_, err = f.uc.CrearGastoEmpleado(empleadoID, gastoDe("300")) // pendiente
	require.NoError(t, err)

	pendientes, err := f.uc.GastosPendientes(empresaID)
	require.NoError(t, err)
	assert.Len(t, pendientes, 2)
}

// ── Presupuesto: advierte pero nunca bloquea ─────────────────────────────────

func TestCrearGasto_PresupuestoExcedido_NoBloquea(t *testing.T) {
	f := newGastoFixture(t)
	fecha := time.Now()
	require.NoError(t, f.presupuestos.Create(&entity.Presupuesto{
		ID:            "pres-1",
		UserID:        usuarioID,
		CategoriaID:   catGastoID,
		LimiteMensual: decimal.RequireFromString("100"),
		Mes:           int(fecha.Month()),
		Anio:          fecha.Year(),
		GastadoActual: decimal.Zero,
	}))

	in := gastoDe("250")
	in.Fecha = fecha
	out, err := f.uc.CrearGasto(usuarioID, in)
	require.NoError(t, err, "el presupuesto excedido solo advierte")
	assert.Equal(t, "aprobado", out.EstadoAprobacion)

	pres, _ := f.presupuestos.GetByID("pres-1")
	assert.True(t, pres.GastadoActual.Equal(decimal.RequireFromString("250")))
	assert.True(t, pres.EstaExcedido())
}

func TestCrearGasto_FallaConsultaPresupuesto_NoBloquea(t *testing.T) {
	f := newGastoFixture(t)
	f.presupuestos.errConsulta = errors.New("connection refused")

	out, err := f.uc.CrearGasto(usuarioID, gastoDe("80"))
	require.NoError(t, err, "el control de presupuesto es de mejor esfuerzo")
	assert.Equal(t, "aprobado", out.EstadoAprobacion)

	g, _ := f.gastoRepo.GetByID(out.ID)
	require.NotNil(t, g, "el gasto quedó registrado pese al fallo del presupuesto")
}

// ── Gastos planificados ──────────────────────────────────────────────────────

func TestEjecutarGastoPlanificado_GeneraGastoYMarcaEjecutado(t *testing.T) {
	f := newGastoFixture(t)
	plan, err := f.uc.CrearGastoPlanificado(usuarioID, dto.CrearGastoPlanificadoRequest{
		CategoriaID:      catGastoID,
		Concepto:         "renovación de hosting",
		MontoEstimado:    decimal.RequireFromString("80"),
		FechaPlanificada: time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, "pendiente", plan.Estado)

	gasto, err := f.uc.EjecutarGastoPlanificado(context.Background(), usuarioID, plan.ID, dto.EjecutarGastoPlanificadoRequest{
		TipoPagoID: int(entity.PagoTarjeta),
	})
	require.NoError(t, err)
	assert.True(t, gasto.Monto.Equal(decimal.RequireFromString("80")), "sin monto explícito usa el estimado")

	actual, _ := f.planRepo.GetByID(plan.ID)
	assert.Equal(t, entity.PlanificadoEjecutado, actual.Estado)
	require.NotNil(t, actual.GastoGeneradoID)
	assert.Equal(t, gasto.ID, *actual.GastoGeneradoID)
}

func TestEjecutarGastoPlanificado_YaEjecutado_ErrConflict(t *testing.T) {
	f := newGastoFixture(t)
	plan, err := f.uc.CrearGastoPlanificado(usuarioID, dto.CrearGastoPlanificadoRequest{
		CategoriaID:      catGastoID,
		Concepto:         "suscripción",
		MontoEstimado:    decimal.RequireFromString("15"),
		FechaPlanificada: time.Now(),
	})
	require.NoError(t, err)

	_, err = f.uc.EjecutarGastoPlanificado(context.Background(), usuarioID, plan.ID, dto.EjecutarGastoPlanificadoRequest{TipoPagoID: 1})
	require.NoError(t, err)

	_, err = f.uc.EjecutarGastoPlanificado(context.Background(), usuarioID, plan.ID, dto.EjecutarGastoPlanificadoRequest{TipoPagoID: 1})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCancelarGastoPlanificado_EsIdempotente(t *testing.T) {
	f := newGastoFixture(t)
	plan, err := f.uc.CrearGastoPlanificado(usuarioID, dto.CrearGastoPlanificadoRequest{
		CategoriaID:      catGastoID,
		Concepto:         "compra aplazada",
		MontoEstimado:    decimal.RequireFromString("60"),
		FechaPlanificada: time.Now(),
	})
	require.NoError(t, err)

	out, err := f.uc.CancelarGastoPlanificado(usuarioID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelado", out.Estado)

	// Cancelar de nuevo es éxito idempotente
	out, err = f.uc.CancelarGastoPlanificado(usuarioID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelado", out.Estado)
}
