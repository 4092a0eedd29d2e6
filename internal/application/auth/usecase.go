package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/domain"
	"github.com/aureum-app/aureum-api/internal/domain/entity"
	"github.com/aureum-app/aureum-api/internal/domain/repository"
	"github.com/aureum-app/aureum-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
// Las cuentas de empleado no se registran aquí: las da de alta la empresa.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea una cuenta personal o de empresa: hashea password con bcrypt
// y persiste. Devuelve ErrEmailAlreadyExists si el email o username ya existen.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, _ := uc.userRepo.GetByUsername(in.Username); existing != nil {
		return nil, domain.ErrDuplicate
	}
	rol := entity.RolUsuario
	if in.Rol != "" {
		r, ok := entity.RolDesdeCodigo(in.Rol)
		if !ok || (r != entity.RolUsuario && r != entity.RolEmpresa) {
			return nil, domain.ErrInvalidInput
		}
		rol = r
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Rol:          rol,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, actualiza el último acceso, genera JWT y
// retorna token + usuario. Cuenta inactiva → ErrForbidden.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	user.LastLogin = &now
	user.UpdatedAt = now
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	// Un empleado lleva en el token la empresa que lo dio de alta; una empresa,
	// su propio ID. Usuarios personales sin empresa.
	empresaID := ""
	switch {
	case user.Rol == entity.RolEmpresa:
		empresaID = user.ID
	case user.CreatedByEmpresaID != nil:
		empresaID = *user.CreatedByEmpresaID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, empresaID, user.Rol.Codigo(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// Perfil devuelve los datos del usuario autenticado.
func (uc *AuthUseCase) Perfil(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// ActualizarPerfil modifica los datos editables del perfil propio.
func (uc *AuthUseCase) ActualizarPerfil(userID string, in dto.ActualizarPerfilRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ToUserResponse mapea la entidad a su DTO de salida (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Phone:              u.Phone,
		Rol:                u.Rol.Codigo(),
		CreatedByEmpresaID: u.CreatedByEmpresaID,
		IsActive:           u.IsActive,
		IsVerified:         u.IsVerified,
		LastLogin:          u.LastLogin,
		CreatedAt:          u.CreatedAt,
	}
}
