package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aureum-app/aureum-api/internal/application/auth"
	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
)

// EmpresaUseCase gestión de empleados por parte de una cuenta empresa.
type EmpresaUseCase struct {
	userRepo repository.UserRepository
}

// NewEmpresaUseCase construye el caso de uso de empresa.
func NewEmpresaUseCase(userRepo repository.UserRepository) *EmpresaUseCase {
	return &EmpresaUseCase{userRepo: userRepo}
}

// CrearEmpleado da de alta una cuenta de empleado vinculada a la empresa.
// El empleado nace activo y con rol empleado; no puede auto-registrarse.
func (uc *EmpresaUseCase) CrearEmpleado(empresaID string, in dto.CrearEmpleadoRequest) (*dto.UserResponse, error) {
	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, _ := uc.userRepo.GetByUsername(in.Username); existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	empleado := &entity.User{
		ID:                 uuid.New().String(),
		Username:           in.Username,
		Email:              in.Email,
		PasswordHash:       string(hash),
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Phone:              in.Phone,
		Rol:                entity.RolEmpleado,
		CreatedByEmpresaID: &empresaID,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.userRepo.Create(empleado); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(empleado), nil
}

// ListarEmpleados empleados dados de alta por la empresa.
func (uc *EmpresaUseCase) ListarEmpleados(empresaID string, page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	empleados, err := uc.userRepo.ListEmpleados(empresaID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(empleados))
	for _, e := range empleados {
		out = append(out, auth.ToUserResponse(e))
	}
	return out, nil
}

// ObtenerEmpleado detalle de un empleado de la empresa.
func (uc *EmpresaUseCase) ObtenerEmpleado(empresaID, empleadoID string) (*dto.UserResponse, error) {
	empleado, err := uc.empleado(empresaID, empleadoID)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(empleado), nil
}

// DesactivarEmpleado inhabilita la cuenta del empleado. La cuenta conserva
// su historial; solo deja de poder iniciar sesión.
func (uc *EmpresaUseCase) DesactivarEmpleado(empresaID, empleadoID string) error {
	empleado, err := uc.empleado(empresaID, empleadoID)
	if err != nil {
		return err
	}
	if !empleado.IsActive {
		return nil
	}
	empleado.IsActive = false
	empleado.UpdatedAt = time.Now()
	return uc.userRepo.Update(empleado)
}

// ReactivarEmpleado vuelve a habilitar una cuenta de empleado desactivada.
func (uc *EmpresaUseCase) ReactivarEmpleado(empresaID, empleadoID string) error {
	empleado, err := uc.empleado(empresaID, empleadoID)
	if err != nil {
		return err
	}
	if empleado.IsActive {
		return nil
	}
	empleado.IsActive = true
	empleado.UpdatedAt = time.Now()
	return uc.userRepo.Update(empleado)
}

func (uc *EmpresaUseCase) empleado(empresaID, empleadoID string) (*entity.User, error) {
	empleado, err := uc.userRepo.GetByID(empleadoID)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, domain.ErrUserNotFound
	}
	if !empleado.EsEmpleadoDe(empresaID) {
		return nil, domain.ErrForbidden
	}
	return empleado, nil
}
