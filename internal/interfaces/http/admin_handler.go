package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// AdminHandler maneja el panel de administración de la plataforma.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Estadisticas godoc
// @Summary      Estadísticas globales de la plataforma
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.EstadisticasAdminResponse
// @Router       /api/v1/admin/stats [get]
func (h *AdminHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActividadReciente godoc
// @Summary      Últimas acciones administrativas auditadas
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.ActividadRecienteResponse
// @Router       /api/v1/admin/actividad-reciente [get]
func (h *AdminHandler) ActividadReciente(c *fiber.Ctx) error {
	out, err := h.uc.ActividadReciente()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListarUsuarios godoc
// @Summary      Listar cuentas personales con búsqueda y filtro de estado
// @Tags         admin
// @Produce      json
// @Param        search  query  string  false  "texto a buscar"
// @Param        estado  query  string  false  "activo | inactivo"
// @Success      200  {object}  dto.UsuariosPaginadosResponse
// @Router       /api/v1/admin/usuarios [get]
func (h *AdminHandler) ListarUsuarios(c *fiber.Ctx) error {
	in := dto.ListarUsuariosAdminRequest{
		Search:      c.Query("search"),
		Estado:      c.Query("estado"),
		PageRequest: queryPage(c),
	}
	out, err := h.uc.ListarUsuarios(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// CrearUsuario godoc
// @Summary      Dar de alta una cuenta desde el panel
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearUsuarioAdminRequest  true  "datos de la cuenta"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/admin/usuarios [post]
func (h *AdminHandler) CrearUsuario(c *fiber.Ctx) error {
	var in dto.CrearUsuarioAdminRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearUsuario(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ObtenerUsuario godoc
// @Summary      Detalle de una cuenta
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/admin/usuarios/{id} [get]
func (h *AdminHandler) ObtenerUsuario(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerUsuario(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarUsuario godoc
// @Summary      Actualizar nombre o rol de una cuenta
// @Tags         admin
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/admin/usuarios/{id} [put]
func (h *AdminHandler) ActualizarUsuario(c *fiber.Ctx) error {
	var in dto.ActualizarUsuarioAdminRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.ActualizarUsuario(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// CambiarEstadoUsuario godoc
// @Summary      Habilitar o inhabilitar una cuenta
// @Tags         admin
// @Accept       json
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/admin/usuarios/{id}/estado [put]
func (h *AdminHandler) CambiarEstadoUsuario(c *fiber.Ctx) error {
	var in dto.CambiarEstadoUsuarioRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	if err := h.uc.CambiarEstadoUsuario(GetUserID(c), c.Params("id"), in); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BalanceUsuario godoc
// @Summary      Balance histórico de una cuenta
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.BalanceUsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/admin/usuarios/{id}/balance [get]
func (h *AdminHandler) BalanceUsuario(c *fiber.Ctx) error {
	out, err := h.uc.BalanceUsuario(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListarEmpresas godoc
// @Summary      Listar cuentas empresa
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.UsuariosPaginadosResponse
// @Router       /api/v1/admin/empresas [get]
func (h *AdminHandler) ListarEmpresas(c *fiber.Ctx) error {
	out, err := h.uc.ListarEmpresas(c.Context(), queryPage(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DetalleEmpresa godoc
// @Summary      Ficha de una empresa con su actividad
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.EmpresaDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/admin/empresas/{id} [get]
func (h *AdminHandler) DetalleEmpresa(c *fiber.Ctx) error {
	out, err := h.uc.DetalleEmpresa(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// EmpleadosEmpresa godoc
// @Summary      Empleados de una empresa
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/v1/admin/empresas/{id}/empleados [get]
func (h *AdminHandler) EmpleadosEmpresa(c *fiber.Ctx) error {
	out, err := h.uc.EmpleadosEmpresa(c.Params("id"), queryPage(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DesvincularEmpleado godoc
// @Summary      Desvincular un empleado de su empresa
// @Tags         admin
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/admin/empresas/{id}/empleados/{empleadoId} [delete]
func (h *AdminHandler) DesvincularEmpleado(c *fiber.Ctx) error {
	err := h.uc.DesvincularEmpleado(GetUserID(c), c.Params("id"), c.Params("empleadoId"))
	if err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// VentasEmpresa godoc
// @Summary      Ventas de una empresa
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.VentaResponse
// @Router       /api/v1/admin/empresas/{id}/ventas [get]
func (h *AdminHandler) VentasEmpresa(c *fiber.Ctx) error {
	out, err := h.uc.VentasEmpresa(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// TareasEmpresa godoc
// @Summary      Tareas asignadas por una empresa
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.TareaResponse
// @Router       /api/v1/admin/empresas/{id}/tareas [get]
func (h *AdminHandler) TareasEmpresa(c *fiber.Ctx) error {
	out, err := h.uc.TareasEmpresa(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ResumenReportes godoc
// @Summary      Resumen mensual de la plataforma
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.ResumenPlataformaResponse
// @Router       /api/v1/admin/reportes/resumen [get]
func (h *AdminHandler) ResumenReportes(c *fiber.Ctx) error {
	out, err := h.uc.ResumenReportes(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ObtenerConfiguracion godoc
// @Summary      Configuración del sistema
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/admin/configuracion [get]
func (h *AdminHandler) ObtenerConfiguracion(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerConfiguracion()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ActualizarConfiguracion godoc
// @Summary      Guardar configuración del sistema
// @Tags         admin
// @Accept       json
// @Success      204
// @Router       /api/v1/admin/configuracion [put]
func (h *AdminHandler) ActualizarConfiguracion(c *fiber.Ctx) error {
	var in dto.ActualizarConfiguracionRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	if err := h.uc.ActualizarConfiguracion(GetUserID(c), in); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
