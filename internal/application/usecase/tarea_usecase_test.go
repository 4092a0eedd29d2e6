package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
)

type tareaFixture struct {
	uc   *usecase.TareaUseCase
	repo *memTareaRepo
}

func newTareaFixture(t *testing.T) *tareaFixture {
	t.Helper()
	repo := newMemTareaRepo()
	users := newMemUserRepo()
	tx := &memTx{tareaRepo: repo}

	eid := empresaID
	require.NoError(t, users.Create(&entity.User{
		ID:                 empleadoID,
		Rol:                entity.RolEmpleado,
		CreatedByEmpresaID: &eid,
		IsActive:           true,
	}))
	require.NoError(t, users.Create(&entity.User{
		ID:                 "empleado-inactivo",
		Rol:                entity.RolEmpleado,
		CreatedByEmpresaID: &eid,
		IsActive:           false,
	}))
	return &tareaFixture{uc: usecase.NewTareaUseCase(repo, users, tx), repo: repo}
}

func (f *tareaFixture) crear(t *testing.T) string {
	t.Helper()
	out, err := f.uc.CrearTarea(empresaID, dto.CrearTareaRequest{
		EmpleadoID:  empleadoID,
		Titulo:      "inventariar bodega",
		PrioridadID: int(entity.PrioridadAlta),
	})
	require.NoError(t, err)
	return out.ID
}

func cambiarA(estado string) dto.CambiarEstadoTareaRequest {
	return dto.CambiarEstadoTareaRequest{Estado: estado}
}

func TestCrearTarea_NacePendiente(t *testing.T) {
	f := newTareaFixture(t)
	out, err := f.uc.CrearTarea(empresaID, dto.CrearTareaRequest{
		EmpleadoID:  empleadoID,
		Titulo:      "revisar caja",
		PrioridadID: int(entity.PrioridadMedia),
	})
	require.NoError(t, err)
	assert.Equal(t, "pendiente", out.Estado)
	assert.Equal(t, empleadoID, out.EmpleadoID)
}

func TestCrearTarea_EmpleadoInactivo_Forbidden(t *testing.T) {
	f := newTareaFixture(t)
	_, err := f.uc.CrearTarea(empresaID, dto.CrearTareaRequest{
		EmpleadoID:  "empleado-inactivo",
		Titulo:      "no debería asignarse",
		PrioridadID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCrearTarea_EmpleadoDeOtraEmpresa_Forbidden(t *testing.T) {
	f := newTareaFixture(t)
	_, err := f.uc.CrearTarea("empresa-ajena", dto.CrearTareaRequest{
		EmpleadoID:  empleadoID,
		Titulo:      "tarea ajena",
		PrioridadID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCambiarEstado_RegistraHistorial(t *testing.T) {
	f := newTareaFixture(t)
	id := f.crear(t)

	out, err := f.uc.CambiarEstado(context.Background(), empleadoID, id, cambiarA("en_progreso"))
	require.NoError(t, err)
	assert.Equal(t, "en_progreso", out.Estado)

	hist, err := f.uc.Historial(empleadoID, id)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "pendiente", hist[0].EstadoAnterior)
	assert.Equal(t, "en_progreso", hist[0].EstadoNuevo)
	assert.Equal(t, empleadoID, hist[0].CambiadoPor)
}

func TestCambiarEstado_MismoEstado_EsIdempotente(t *testing.T) {
	f := newTareaFixture(t)
	id := f.crear(t)

	out, err := f.uc.CambiarEstado(context.Background(), empleadoID, id, cambiarA("pendiente"))
	require.NoError(t, err)
	assert.Equal(t, "pendiente", out.Estado)

	// Sin transición no hay entrada en el historial
	hist, _ := f.uc.Historial(empleadoID, id)
	assert.Empty(t, hist)
}

func TestCambiarEstado_Completada_EstampaFecha(t *testing.T) {
	f := newTareaFixture(t)
	id := f.crear(t)

	out, err := f.uc.CambiarEstado(context.Background(), empleadoID, id, cambiarA("completada"))
	require.NoError(t, err)
	assert.Equal(t, "completada", out.Estado)
	assert.NotNil(t, out.FechaCompletada)
}

func TestCambiarEstado_DesdeTerminal_ErrConflict(t *testing.T) {
	f := newTareaFixture(t)
	id := f.crear(t)
	_, err := f.uc.CambiarEstado(context.Background(), empleadoID, id, cambiarA("cancelada"))
	require.NoError(t, err)

	_, err = f.uc.CambiarEstado(context.Background(), empleadoID, id, cambiarA("en_progreso"))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCambiarEstado_ActorAjeno_Forbidden(t *testing.T) {
	f := newTareaFixture(t)
	id := f.crear(t)

	_, err := f.uc.CambiarEstado(context.Background(), "intruso", id, cambiarA("en_progreso"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestComentar_InternoSoloEmpresa(t *testing.T) {
	f := newTareaFixture(t)
	id := f.crear(t)

	// El empleado no puede marcar comentarios internos
	_, err := f.uc.Comentar(empleadoID, id, dto.ComentarTareaRequest{
		Comentario: "nota privada",
		EsInterno:  true,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// La empresa sí
	_, err = f.uc.Comentar(empresaID, id, dto.ComentarTareaRequest{
		Comentario: "seguimiento interno",
		EsInterno:  true,
	})
	require.NoError(t, err)
}

func TestComentarios_EmpleadoNoVeInternos(t *testing.T) {
	f := newTareaFixture(t)
	id := f.crear(t)

	_, err := f.uc.Comentar(empresaID, id, dto.ComentarTareaRequest{Comentario: "visible para todos"})
	require.NoError(t, err)
	_, err = f.uc.Comentar(empresaID, id, dto.ComentarTareaRequest{Comentario: "solo empresa", EsInterno: true})
	require.NoError(t, err)

	paraEmpleado, err := f.uc.Comentarios(empleadoID, id)
	require.NoError(t, err)
	assert.Len(t, paraEmpleado, 1)

	paraEmpresa, err := f.uc.Comentarios(empresaID, id)
	require.NoError(t, err)
	assert.Len(t, paraEmpresa, 2)
}

func TestEstadisticasEmpleado_CuentaPorEstado(t *testing.T) {
	f := newTareaFixture(t)
	f.crear(t)
	b := f.crear(t)
	c := f.crear(t)
	_, err := f.uc.CambiarEstado(context.Background(), empleadoID, b, cambiarA("en_progreso"))
	require.NoError(t, err)
	_, err = f.uc.CambiarEstado(context.Background(), empleadoID, c, cambiarA("completada"))
	require.NoError(t, err)

	stats, err := f.uc.EstadisticasEmpleado(empleadoID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pendientes)
	assert.Equal(t, 1, stats.EnProgreso)
	assert.Equal(t, 1, stats.Completadas)
	assert.Zero(t, stats.Canceladas)
}
