package repository

import "github.com/aureum-app/aureum-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	// ListEmpleados lista los empleados dados de alta por una empresa.
	ListEmpleados(empresaID string, limit, offset int) ([]*entity.User, error)
	// DesvincularEmpleado quita el vínculo empleado-empresa conservando la
	// cuenta. ok=false si el empleado no existe o no pertenece a la empresa.
	DesvincularEmpleado(empresaID, empleadoID string) (bool, error)
	Delete(id string) error
}
