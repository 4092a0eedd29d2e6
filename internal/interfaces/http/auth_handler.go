package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/auth"
	"github.com/aureum-app/aureum-api/internal/application/dto"
)

// AuthHandler maneja registro, login y perfil.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario personal o empresa
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, email, password, rol"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	user, err := h.uc.Register(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Perfil godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/perfil [get]
func (h *AuthHandler) Perfil(c *fiber.Ctx) error {
	out, err := h.uc.Perfil(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarPerfil godoc
// @Summary      Actualizar el perfil propio
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActualizarPerfilRequest  true  "campos editables"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/perfil [put]
func (h *AuthHandler) ActualizarPerfil(c *fiber.Ctx) error {
	var in dto.ActualizarPerfilRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.ActualizarPerfil(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
