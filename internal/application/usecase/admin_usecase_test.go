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
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

const adminID = "admin-1"

type adminFixture struct {
	uc        *usecase.AdminUseCase
	users     *memUserRepo
	adminRepo *memAdminRepo
	auditoria *memAuditoriaRepo
	config    *memConfigRepo
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	users := newMemUserRepo()
	adminRepo := newMemAdminRepo(users)
	auditoria := &memAuditoriaRepo{}
	config := newMemConfigRepo()

	require.NoError(t, users.Create(&entity.User{
		ID:       adminID,
		Email:    "admin@example.com",
		Rol:      entity.RolAdmin,
		IsActive: true,
	}))

	uc := usecase.NewAdminUseCase(
		adminRepo, users, auditoria, config, newMemVentaRepo(), newMemTareaRepo(), testLogger(),
	)
	return &adminFixture{uc: uc, users: users, adminRepo: adminRepo, auditoria: auditoria, config: config}
}

func (f *adminFixture) cuenta(t *testing.T, id, email string, rol entity.Rol, activa bool) {
	t.Helper()
	require.NoError(t, f.users.Create(&entity.User{
		ID:        id,
		Username:  email,
		Email:     email,
		Rol:       rol,
		IsActive:  activa,
		CreatedAt: time.Now(),
	}))
}

func TestCambiarEstadoUsuario_InhabilitaYAudita(t *testing.T) {
	f := newAdminFixture(t)
	f.cuenta(t, usuarioID, "laura@example.com", entity.RolUsuario, true)

	inactivo := false
	err := f.uc.CambiarEstadoUsuario(adminID, usuarioID, dto.CambiarEstadoUsuarioRequest{Activo: &inactivo})
	require.NoError(t, err)

	u, _ := f.users.GetByID(usuarioID)
	assert.False(t, u.IsActive)

	require.Len(t, f.auditoria.registros, 1)
	reg := f.auditoria.registros[0]
	assert.Equal(t, entity.AuditoriaEstadoUsuarioCambiado, reg.Accion)
	assert.Equal(t, adminID, reg.UserID)
	assert.Equal(t, usuarioID, reg.TargetID)
	assert.Contains(t, reg.Detalles, "estado_nuevo")
}

func TestCambiarEstadoUsuario_MismoEstado_NoAudita(t *testing.T) {
	f := newAdminFixture(t)
	f.cuenta(t, usuarioID, "laura@example.com", entity.RolUsuario, true)

	activo := true
	err := f.uc.CambiarEstadoUsuario(adminID, usuarioID, dto.CambiarEstadoUsuarioRequest{Activo: &activo})
	require.NoError(t, err)
	assert.Empty(t, f.auditoria.registros)
}

func TestCambiarEstadoUsuario_NoExiste_ErrUserNotFound(t *testing.T) {
	f := newAdminFixture(t)
	activo := true
	err := f.uc.CambiarEstadoUsuario(adminID, "no-existe", dto.CambiarEstadoUsuarioRequest{Activo: &activo})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCambiarEstadoUsuario_FalloDeAuditoria_NoRevierte(t *testing.T) {
	f := newAdminFixture(t)
	f.cuenta(t, usuarioID, "laura@example.com", entity.RolUsuario, true)
	f.auditoria.errCreate = errors.New("connection refused")

	inactivo := false
	err := f.uc.CambiarEstadoUsuario(adminID, usuarioID, dto.CambiarEstadoUsuarioRequest{Activo: &inactivo})
	require.NoError(t, err)

	u, _ := f.users.GetByID(usuarioID)
	assert.False(t, u.IsActive)
}

func TestCrearUsuarioAdmin_DerivaUsernameDelEmail(t *testing.T) {
	f := newAdminFixture(t)

	out, err := f.uc.CrearUsuario(adminID, dto.CrearUsuarioAdminRequest{
		Email:     "carla.mendez@example.com",
		Password:  "clave-segura-123",
		FirstName: "Carla",
	})
	require.NoError(t, err)

	assert.Equal(t, "carla.mendez", out.Username)
	assert.Equal(t, "usuario", out.Rol)

	u, _ := f.users.GetByID(out.ID)
	assert.True(t, u.IsVerified)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "clave-segura-123", u.PasswordHash)

	require.Len(t, f.auditoria.registros, 1)
	assert.Equal(t, entity.AuditoriaUsuarioCreado, f.auditoria.registros[0].Accion)
}

func TestCrearUsuarioAdmin_EmailDuplicado_ErrEmailAlreadyExists(t *testing.T) {
	f := newAdminFixture(t)
	f.cuenta(t, usuarioID, "carla.mendez@example.com", entity.RolUsuario, true)

	_, err := f.uc.CrearUsuario(adminID, dto.CrearUsuarioAdminRequest{
		Email:     "carla.mendez@example.com",
		Password:  "clave-segura-123",
		FirstName: "Carla",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCrearUsuarioAdmin_RolInvalido_ErrInvalidInput(t *testing.T) {
	f := newAdminFixture(t)
	_, err := f.uc.CrearUsuario(adminID, dto.CrearUsuarioAdminRequest{
		Email:     "carla@example.com",
		Password:  "clave-segura-123",
		FirstName: "Carla",
		RolID:     9,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListarUsuarios_FiltraPorEstadoYBusqueda(t *testing.T) {
	f := newAdminFixture(t)
	f.cuenta(t, "u-1", "laura@example.com", entity.RolUsuario, true)
	f.cuenta(t, "u-2", "marcos@example.com", entity.RolUsuario, true)
	f.cuenta(t, "u-3", "sofia@example.com", entity.RolUsuario, false)
	// Las empresas no entran en el listado de cuentas personales
	f.cuenta(t, empresaID, "acme@example.com", entity.RolEmpresa, true)

	ctx := context.Background()

	todos, err := f.uc.ListarUsuarios(ctx, dto.ListarUsuariosAdminRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, todos.Page.Total)

	inactivos, err := f.uc.ListarUsuarios(ctx, dto.ListarUsuariosAdminRequest{Estado: "inactivo"})
	require.NoError(t, err)
	require.Len(t, inactivos.Usuarios, 1)
	assert.Equal(t, "sofia@example.com", inactivos.Usuarios[0].Email)

	buscados, err := f.uc.ListarUsuarios(ctx, dto.ListarUsuariosAdminRequest{Search: "marcos"})
	require.NoError(t, err)
	require.Len(t, buscados.Usuarios, 1)
	assert.Equal(t, "marcos@example.com", buscados.Usuarios[0].Email)

	_, err = f.uc.ListarUsuarios(ctx, dto.ListarUsuariosAdminRequest{Estado: "suspendido"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEstadisticas_BalanceEsIngresosMenosGastos(t *testing.T) {
	f := newAdminFixture(t)
	f.adminRepo.stats = repository.EstadisticasGlobales{
		TotalUsuarios: 3,
		TotalIngresos: decimal.RequireFromString("500"),
		TotalGastos:   decimal.RequireFromString("120.50"),
	}

	out, err := f.uc.Estadisticas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, out.TotalUsuarios)
	assert.True(t, out.BalanceTotal.Equal(decimal.RequireFromString("379.50")))
}

func TestActividadReciente_ResuelveEmailDelActor(t *testing.T) {
	f := newAdminFixture(t)
	f.cuenta(t, usuarioID, "laura@example.com", entity.RolUsuario, true)

	inactivo := false
	require.NoError(t, f.uc.CambiarEstadoUsuario(adminID, usuarioID, dto.CambiarEstadoUsuarioRequest{Activo: &inactivo}))

	out, err := f.uc.ActividadReciente()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "admin@example.com", out[0].Email)
	assert.Equal(t, entity.AuditoriaEstadoUsuarioCambiado, out[0].Accion)
}

func TestDesvincularEmpleado_QuitaElVinculoYAudita(t *testing.T) {
	f := newAdminFixture(t)
	f.cuenta(t, empresaID, "acme@example.com", entity.RolEmpresa, true)
	eid := empresaID
	require.NoError(t, f.users.Create(&entity.User{
		ID:                 empleadoID,
		Email:              "pedro@example.com",
		Rol:                entity.RolEmpleado,
		CreatedByEmpresaID: &eid,
		IsActive:           true,
	}))

	require.NoError(t, f.uc.DesvincularEmpleado(adminID, empresaID, empleadoID))

	u, _ := f.users.GetByID(empleadoID)
	assert.Nil(t, u.CreatedByEmpresaID)
	assert.True(t, u.IsActive, "la cuenta sobrevive a la desvinculación")

	require.Len(t, f.auditoria.registros, 1)
	assert.Equal(t, entity.AuditoriaEmpleadoDesvinculado, f.auditoria.registros[0].Accion)
}

func TestDesvincularEmpleado_DeOtraEmpresa_ErrUserNotFound(t *testing.T) {
	f := newAdminFixture(t)
	f.cuenta(t, empresaID, "acme@example.com", entity.RolEmpresa, true)
	otra := "empresa-ajena"
	require.NoError(t, f.users.Create(&entity.User{
		ID:                 empleadoID,
		Email:              "pedro@example.com",
		Rol:                entity.RolEmpleado,
		CreatedByEmpresaID: &otra,
		IsActive:           true,
	}))

	err := f.uc.DesvincularEmpleado(adminID, empresaID, empleadoID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	u, _ := f.users.GetByID(empleadoID)
	require.NotNil(t, u.CreatedByEmpresaID)
	assert.Equal(t, otra, *u.CreatedByEmpresaID)
}

func TestDetalleEmpresa_NoEmpresa_ErrNotFound(t *testing.T) {
	f := newAdminFixture(t)
	f.cuenta(t, usuarioID, "laura@example.com", entity.RolUsuario, true)

	_, err := f.uc.DetalleEmpresa(context.Background(), usuarioID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfiguracion_DefaultsYActualizacion(t *testing.T) {
	f := newAdminFixture(t)

	valores, err := f.uc.ObtenerConfiguracion()
	require.NoError(t, err)
	assert.Equal(t, "60", valores["session_timeout_minutes"])
	assert.Equal(t, "true", valores["enable_email_notifications"])

	err = f.uc.ActualizarConfiguracion(adminID, dto.ActualizarConfiguracionRequest{
		Valores: map[string]string{"session_timeout_minutes": "30"},
	})
	require.NoError(t, err)

	valores, err = f.uc.ObtenerConfiguracion()
	require.NoError(t, err)
	assert.Equal(t, "30", valores["session_timeout_minutes"])
	assert.Equal(t, "true", valores["enable_email_notifications"])

	require.Len(t, f.auditoria.registros, 1)
	assert.Equal(t, entity.AuditoriaConfigActualizada, f.auditoria.registros[0].Accion)
}
