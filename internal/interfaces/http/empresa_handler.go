package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aureum-app/aureum-api/internal/application/dto"
	"github.com/aureum-app/aureum-api/internal/application/usecase"
)

// EmpresaHandler maneja la gestión de empleados de una cuenta empresa.
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

// NewEmpresaHandler construye el handler de empresa.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// CrearEmpleado godoc
// @Summary      Dar de alta un empleado
// @Tags         empresa
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearEmpleadoRequest  true  "datos del empleado"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empresa/empleados [post]
func (h *EmpresaHandler) CrearEmpleado(c *fiber.Ctx) error {
	var in dto.CrearEmpleadoRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CrearEmpleado(GetEmpresaID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarEmpleados godoc
// @Summary      Listar empleados de la empresa
// @Tags         empresa
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/empresa/empleados [get]
func (h *EmpresaHandler) ListarEmpleados(c *fiber.Ctx) error {
	out, err := h.uc.ListarEmpleados(GetEmpresaID(c), queryPage(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ObtenerEmpleado godoc
// @Summary      Detalle de un empleado
// @Tags         empresa
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresa/empleados/{id} [get]
func (h *EmpresaHandler) ObtenerEmpleado(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerEmpleado(GetEmpresaID(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DesactivarEmpleado godoc
// @Summary      Desactivar la cuenta de un empleado
// @Tags         empresa
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresa/empleados/{id} [delete]
func (h *EmpresaHandler) DesactivarEmpleado(c *fiber.Ctx) error {
	if err := h.uc.DesactivarEmpleado(GetEmpresaID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReactivarEmpleado godoc
// @Summary      Reactivar la cuenta de un empleado
// @Tags         empresa
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresa/empleados/{id}/reactivar [post]
func (h *EmpresaHandler) ReactivarEmpleado(c *fiber.Ctx) error {
	if err := h.uc.ReactivarEmpleado(GetEmpresaID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
