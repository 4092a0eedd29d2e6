package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
	"github.com/aureum-app/aureum-api/internal/domain"
)

func nuevoEmpleado(email, username string) dto.CrearEmpleadoRequest {
	return dto.CrearEmpleadoRequest{
		Username:  username,
		Email:     email,
		Password:  "clave-segura-123",
		FirstName: "Pedro",
		LastName:  "Gómez",
	}
}

func TestCrearEmpleado_QuedaLigadoALaEmpresa(t *testing.T) {
	users := newMemUserRepo()
	uc := usecase.NewEmpresaUseCase(users)

	out, err := uc.CrearEmpleado(empresaID, nuevoEmpleado("pedro@example.com", "pedro.gomez"))
	require.NoError(t, err)

	assert.Equal(t, "empleado", out.Rol)
	require.NotNil(t, out.CreatedByEmpresaID)
	assert.Equal(t, empresaID, *out.CreatedByEmpresaID)
	assert.True(t, out.IsActive)

	u, _ := users.GetByID(out.ID)
	assert.NotEqual(t, "clave-segura-123", u.PasswordHash)
}

func TestCrearEmpleado_EmailDuplicado_ErrEmailAlreadyExists(t *testing.T) {
	users := newMemUserRepo()
	uc := usecase.NewEmpresaUseCase(users)
	_, err := uc.CrearEmpleado(empresaID, nuevoEmpleado("pedro@example.com", "pedro.gomez"))
	require.NoError(t, err)

	_, err = uc.CrearEmpleado(empresaID, nuevoEmpleado("pedro@example.com", "otro.username"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestDesactivarEmpleado_EsIdempotente(t *testing.T) {
	users := newMemUserRepo()
	uc := usecase.NewEmpresaUseCase(users)
	creado, err := uc.CrearEmpleado(empresaID, nuevoEmpleado("ana@example.com", "ana.ruiz"))
	require.NoError(t, err)

	require.NoError(t, uc.DesactivarEmpleado(empresaID, creado.ID))
	u, _ := users.GetByID(creado.ID)
	assert.False(t, u.IsActive)

	// Desactivar de nuevo no falla
	require.NoError(t, uc.DesactivarEmpleado(empresaID, creado.ID))
}

func TestReactivarEmpleado_RestauraAcceso(t *testing.T) {
	users := newMemUserRepo()
	uc := usecase.NewEmpresaUseCase(users)
	creado, err := uc.CrearEmpleado(empresaID, nuevoEmpleado("luis@example.com", "luis.mora"))
	require.NoError(t, err)
	require.NoError(t, uc.DesactivarEmpleado(empresaID, creado.ID))

	require.NoError(t, uc.ReactivarEmpleado(empresaID, creado.ID))
	u, _ := users.GetByID(creado.ID)
	assert.True(t, u.IsActive)
}

func TestEmpleado_DeOtraEmpresa_Forbidden(t *testing.T) {
	users := newMemUserRepo()
	uc := usecase.NewEmpresaUseCase(users)
	creado, err := uc.CrearEmpleado(empresaID, nuevoEmpleado("eva@example.com", "eva.diaz"))
	require.NoError(t, err)

	err = uc.DesactivarEmpleado("empresa-ajena", creado.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
